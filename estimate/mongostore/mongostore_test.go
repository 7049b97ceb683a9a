package mongostore

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/pbanos/bayesnet/bitvector"
	"github.com/pbanos/bayesnet/estimate"
	"github.com/pbanos/bayesnet/weighted"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mgo "gopkg.in/mgo.v2"
)

func TestDocumentConversion(t *testing.T) {
	d := weighted.New()
	d.Increment(bitvector.FromUint(2, 3), 0.75)
	d.Increment(bitvector.FromUint(2, 0), 0.25)
	e := &estimate.Estimate{
		ID:           "id",
		Algorithm:    "rejection",
		Variables:    []string{"A", "B"},
		Evidence:     map[string]bool{"C": false},
		Distribution: d,
		Samples:      40,
		Accepted:     4,
	}
	doc := toDocument(e)
	assert.Equal(t, []entry{{"FF", 0.25}, {"TT", 0.75}}, doc.Distribution)
	got, err := fromDocument(doc)
	require.NoError(t, err)
	assert.Equal(t, e, got)

	doc.Distribution = append(doc.Distribution, entry{"?", 1})
	_, err = fromDocument(doc)
	assert.Error(t, err)
}

func TestMongoStore(t *testing.T) {
	url := os.Getenv("BAYESNET_MONGO_URL")
	if url == "" {
		t.Skip("BAYESNET_MONGO_URL not set")
	}
	ctx := context.Background()
	session, err := mgo.Dial(url)
	require.NoError(t, err)
	s, err := Open(ctx, session)
	require.NoError(t, err)
	defer s.Close(ctx)

	d := weighted.New()
	d.Increment(bitvector.True, 1)
	e := &estimate.Estimate{
		Algorithm:    "direct",
		Variables:    []string{},
		Evidence:     map[string]bool{},
		Distribution: d,
		Samples:      1,
		Accepted:     1,
		CreatedAt:    time.Now().UTC().Truncate(time.Millisecond),
	}
	require.NoError(t, s.Create(ctx, e))
	got, err := s.Get(ctx, e.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 1.0, got.Distribution.Weight(bitvector.True))
	require.NoError(t, s.Delete(ctx, e.ID))
	got, err = s.Get(ctx, e.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
