package json

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pbanos/bayesnet/network"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sprinkler = `{
  "nodes": [
    {"name": "Cloudy", "cpt": {"": 0.5}},
    {"name": "Sprinkler", "parents": ["Cloudy"], "cpt": {"T": 0.1, "F": 0.5}},
    {"name": "Rain", "parents": ["Cloudy"], "cpt": {"T": 0.8, "F": 0.2}},
    {"name": "WetGrass", "parents": ["Sprinkler", "Rain"], "cpt": {"TT": 0.99, "TF": 0.9, "FT": 0.9, "FF": 0.0}}
  ]
}`

func TestReadNetwork(t *testing.T) {
	n, err := ReadNetwork(strings.NewReader(sprinkler))
	require.NoError(t, err)
	assert.Equal(t, 4, n.Len())
	wg := n.Node("WetGrass")
	require.NotNil(t, wg)
	assert.Equal(t, []int{1, 2}, wg.Parents())
}

func TestWriteReadNetwork(t *testing.T) {
	n, err := ReadNetwork(strings.NewReader(sprinkler))
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, WriteNetwork(&buf, n))
	m, err := ReadNetwork(&buf)
	require.NoError(t, err)
	assert.Equal(t, n.Specs(), m.Specs())
}

func TestReadNetworkErrors(t *testing.T) {
	_, err := ReadNetwork(strings.NewReader("{"))
	assert.Error(t, err)
	_, err = ReadNetwork(strings.NewReader(`{"nodes": []}`))
	assert.Error(t, err)
	_, err = ReadNetwork(strings.NewReader(`{"nodes": [{"name": "A", "cpt": {"Q": 0.5}}]}`))
	assert.Error(t, err)
	_, err = ReadNetwork(strings.NewReader(`{"nodes": [{"name": "A", "cpt": {}}]}`))
	assert.Equal(t, network.ErrIncompleteTable, errors.Cause(err))
}
