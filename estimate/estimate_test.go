package estimate

import (
	"context"
	"testing"
	"time"

	"github.com/pbanos/bayesnet/bitvector"
	"github.com/pbanos/bayesnet/weighted"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEstimate() *Estimate {
	d := weighted.New()
	d.Increment(bitvector.FromUint(2, 3), 0.5)
	d.Increment(bitvector.FromUint(2, 1), 0.2)
	d.Increment(bitvector.FromUint(2, 2), 0.2)
	d.Increment(bitvector.FromUint(2, 0), 0.1)
	return &Estimate{
		Algorithm:    "direct",
		Variables:    []string{"A", "B"},
		Evidence:     map[string]bool{},
		Distribution: d,
		Samples:      10,
		Accepted:     10,
		CreatedAt:    time.Unix(0, 0).UTC(),
	}
}

func TestProbability(t *testing.T) {
	e := sampleEstimate()
	p, err := e.Probability(map[string]bool{"A": true, "B": false})
	require.NoError(t, err)
	assert.Equal(t, 0.2, p)
	_, err = e.Probability(map[string]bool{"A": true})
	assert.Error(t, err)
	_, err = e.Probability(map[string]bool{"A": true, "C": false})
	assert.Equal(t, ErrUnknownVariable, errors.Cause(err))
}

func TestMarginal(t *testing.T) {
	e := sampleEstimate()
	p, err := e.Marginal("A")
	require.NoError(t, err)
	assert.InDelta(t, 0.7, p, 1e-12)
	p, err = e.Marginal("B")
	require.NoError(t, err)
	assert.InDelta(t, 0.7, p, 1e-12)
	_, err = e.Marginal("C")
	assert.Equal(t, ErrUnknownVariable, err)
}

func TestString(t *testing.T) {
	e := sampleEstimate()
	assert.Equal(t, "A=true, B=false", e.Label(bitvector.FromUint(2, 1)))
	assert.Contains(t, e.String(), "P(A=false, B=false) = 0.100000")
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	e := sampleEstimate()
	require.NoError(t, s.Create(ctx, e))
	assert.NotEmpty(t, e.ID)
	got, err := s.Get(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, e, got)
	other := sampleEstimate()
	require.NoError(t, s.Create(ctx, other))
	assert.NotEqual(t, e.ID, other.ID)
	require.NoError(t, s.Delete(ctx, e.ID))
	got, err = s.Get(ctx, e.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, s.Close(ctx))
}

func TestMemoryStoreCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := NewMemoryStore()
	assert.Error(t, s.Create(ctx, sampleEstimate()))
}
