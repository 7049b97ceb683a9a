package network

import (
	"math/rand/v2"
	"testing"

	"github.com/pbanos/bayesnet/bitvector"
	"github.com/pbanos/bayesnet/weighted"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func table(t *testing.T, entries map[string]float64) *weighted.Set {
	cpt, err := ParseTable(entries)
	require.NoError(t, err)
	return cpt
}

func chainSpecs(t *testing.T) []NodeSpec {
	return []NodeSpec{
		{Name: "A", CPT: Prior(0.7)},
		{Name: "B", Parents: []string{"A"}, CPT: table(t, map[string]float64{"T": 0.9, "F": 0.1})},
	}
}

func TestNew(t *testing.T) {
	n, err := New(chainSpecs(t))
	require.NoError(t, err)
	assert.Equal(t, 2, n.Len())
	b := n.Node("B")
	require.NotNil(t, b)
	assert.Equal(t, 1, b.Index())
	assert.Equal(t, []int{0}, b.Parents())
	assert.Nil(t, n.Node("C"))
	i, ok := n.Index("A")
	assert.True(t, ok)
	assert.Equal(t, 0, i)
}

func TestNewValidation(t *testing.T) {
	cases := []struct {
		name  string
		specs []NodeSpec
		err   error
	}{
		{"empty name", []NodeSpec{{CPT: Prior(0.5)}}, ErrEmptyName},
		{"duplicate node", []NodeSpec{{Name: "A", CPT: Prior(0.5)}, {Name: "A", CPT: Prior(0.5)}}, ErrDuplicateNode},
		{"unknown parent", []NodeSpec{
			{Name: "B", Parents: []string{"X"}, CPT: table(t, map[string]float64{"T": 1, "F": 0})},
		}, ErrUnknownParent},
		{"parent after child", []NodeSpec{
			{Name: "B", Parents: []string{"A"}, CPT: table(t, map[string]float64{"T": 1, "F": 0})},
			{Name: "A", CPT: Prior(0.5)},
		}, ErrOutOfTopologicalOrder},
		{"self parent", []NodeSpec{
			{Name: "A", Parents: []string{"A"}, CPT: table(t, map[string]float64{"T": 1, "F": 0})},
		}, ErrOutOfTopologicalOrder},
		{"duplicate parent", []NodeSpec{
			{Name: "A", CPT: Prior(0.5)},
			{Name: "B", Parents: []string{"A", "A"}, CPT: table(t, map[string]float64{"TT": 1, "TF": 0, "FT": 0, "FF": 0})},
		}, ErrDuplicateParent},
		{"missing table", []NodeSpec{{Name: "A"}}, ErrIncompleteTable},
		{"incomplete table", []NodeSpec{
			{Name: "A", CPT: Prior(0.5)},
			{Name: "B", Parents: []string{"A"}, CPT: table(t, map[string]float64{"T": 1})},
		}, ErrIncompleteTable},
		{"empty prior", []NodeSpec{{Name: "A", CPT: weighted.New()}}, ErrIncompleteTable},
		{"wrong key size", []NodeSpec{
			{Name: "A", CPT: Prior(0.5)},
			{Name: "B", Parents: []string{"A"}, CPT: table(t, map[string]float64{"T": 1, "F": 0, "TT": 0.5})},
		}, ErrInvalidTable},
		{"probability above 1", []NodeSpec{{Name: "A", CPT: Prior(1.5)}}, ErrInvalidProbability},
		{"negative probability", []NodeSpec{{Name: "A", CPT: Prior(-0.1)}}, ErrInvalidProbability},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			n, err := New(c.specs)
			assert.Nil(t, n)
			require.Error(t, err)
			assert.Equal(t, c.err, errors.Cause(err))
		})
	}
}

func TestTooManyParents(t *testing.T) {
	var specs []NodeSpec
	var names []string
	for i := 0; i <= MaxParents; i++ {
		name := string(rune('a' + i))
		specs = append(specs, NodeSpec{Name: name, CPT: Prior(0.5)})
		names = append(names, name)
	}
	specs = append(specs, NodeSpec{Name: "child", Parents: names, CPT: weighted.New()})
	_, err := New(specs)
	assert.Equal(t, ErrTooManyParents, errors.Cause(err))
}

func TestProbabilityWithoutParents(t *testing.T) {
	n, err := New(chainSpecs(t))
	require.NoError(t, err)
	a := n.NewAssignment()
	root := n.Node("A")
	for i := 0; i < 3; i++ {
		assert.Equal(t, 0.7, root.Probability(a))
	}
	assert.Equal(t, root.CPT().Weight(bitvector.True), root.Probability(a))
}

func TestProbabilityFollowsParents(t *testing.T) {
	specs := []NodeSpec{
		{Name: "A", CPT: Prior(0.5)},
		{Name: "B", CPT: Prior(0.5)},
		{Name: "C", Parents: []string{"A", "B"}, CPT: table(t, map[string]float64{"TT": 0.95, "TF": 0.6, "FT": 0.3, "FF": 0.01})},
	}
	n, err := New(specs)
	require.NoError(t, err)
	c := n.Node("C")
	a := n.NewAssignment()
	n.Node("A").SetValue(a, true)
	n.Node("B").SetValue(a, true)
	assert.Equal(t, c.CPT().Weight(bitvector.New(2)), c.Probability(a))
	assert.Equal(t, 0.95, c.Probability(a))
	n.Node("B").SetValue(a, false)
	assert.Equal(t, 0.6, c.Probability(a))
	n.Node("A").SetValue(a, false)
	n.Node("B").SetValue(a, true)
	assert.Equal(t, 0.3, c.Probability(a))
	n.Node("B").SetValue(a, false)
	assert.Equal(t, 0.01, c.Probability(a))
}

func TestSampleAndSet(t *testing.T) {
	specs := []NodeSpec{
		{Name: "Always", CPT: Prior(1)},
		{Name: "Never", CPT: Prior(0)},
		{Name: "Copy", Parents: []string{"Always"}, CPT: table(t, map[string]float64{"T": 1, "F": 0})},
	}
	n, err := New(specs)
	require.NoError(t, err)
	r := rand.New(rand.NewPCG(1, 2))
	a := n.NewAssignment()
	for i := 0; i < 100; i++ {
		for _, node := range n.Nodes() {
			node.SampleAndSet(a, r)
		}
		assert.True(t, n.Node("Always").Value(a))
		assert.False(t, n.Node("Never").Value(a))
		assert.True(t, n.Node("Copy").Value(a))
	}
}

func TestSampleAndSetFrequency(t *testing.T) {
	n, err := New(chainSpecs(t))
	require.NoError(t, err)
	r := rand.New(rand.NewPCG(7, 7))
	a := n.NewAssignment()
	root := n.Node("A")
	var trues int
	const draws = 50000
	for i := 0; i < draws; i++ {
		if root.SampleAndSet(a, r) {
			trues++
		}
	}
	assert.InDelta(t, 0.7, float64(trues)/draws, 0.01)
}

func TestSpecsRoundTrip(t *testing.T) {
	n, err := New(chainSpecs(t))
	require.NoError(t, err)
	specs := n.Specs()
	require.Len(t, specs, 2)
	assert.Equal(t, "B", specs[1].Name)
	assert.Equal(t, []string{"A"}, specs[1].Parents)
	assert.Equal(t, map[string]float64{"T": 0.9, "F": 0.1}, FormatTable(specs[1].CPT))
	m, err := New(specs)
	require.NoError(t, err)
	assert.Equal(t, n.Len(), m.Len())
}

func TestParseTable(t *testing.T) {
	_, err := ParseTable(map[string]float64{"TX": 0.5})
	assert.Error(t, err)
	_, err = ParseTable(map[string]float64{"T": 0.5, "t": 0.4})
	assert.Error(t, err)
}
