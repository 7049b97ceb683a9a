package redisstore

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/pbanos/bayesnet/bitvector"
	"github.com/pbanos/bayesnet/estimate"
	"github.com/pbanos/bayesnet/estimate/json"
	"github.com/pbanos/bayesnet/weighted"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	redis "gopkg.in/redis.v5"
)

func TestRedisStore(t *testing.T) {
	addr := os.Getenv("BAYESNET_REDIS_ADDR")
	if addr == "" {
		t.Skip("BAYESNET_REDIS_ADDR not set")
	}
	ctx := context.Background()
	rc := redis.NewClient(&redis.Options{Addr: addr})
	s := New(rc, "bayesnet-test", time.Minute, json.New())
	defer s.Close(ctx)

	d := weighted.New()
	d.Increment(bitvector.FromUint(1, 1), 0.66)
	d.Increment(bitvector.FromUint(1, 0), 0.34)
	e := &estimate.Estimate{
		Algorithm:    "direct",
		Variables:    []string{"B"},
		Evidence:     map[string]bool{},
		Distribution: d,
		Samples:      1000,
		Accepted:     1000,
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, s.Create(ctx, e))
	require.NotEmpty(t, e.ID)

	got, err := s.Get(ctx, e.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, e.ID, got.ID)
	assert.Equal(t, 0.66, got.Distribution.Weight(bitvector.FromUint(1, 1)))

	require.NoError(t, s.Delete(ctx, e.ID))
	got, err = s.Get(ctx, e.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
