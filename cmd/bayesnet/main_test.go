package main

import (
	"bytes"
	"context"
	"io/ioutil"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/pbanos/bayesnet/bitvector"
	"github.com/pbanos/bayesnet/estimate"
	"github.com/pbanos/bayesnet/query"
	"github.com/pbanos/bayesnet/weighted"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chainYAML = `
nodes:
  - name: A
    prior: 0.7
  - name: B
    parents: [A]
    cpt:
      T: 0.9
      F: 0.1
`

const chainJSON = `{"nodes": [
  {"name": "A", "cpt": {"": 0.7}},
  {"name": "B", "parents": ["A"], "cpt": {"T": 0.9, "F": 0.1}}
]}`

func TestInferValidate(t *testing.T) {
	config := &inferCmdConfig{rootCmdConfig: &rootCmdConfig{}}
	assert.Error(t, config.Validate())
	config.networkInput = "net.yml"
	config.samples = -1
	assert.Error(t, config.Validate())
	config.samples = 0
	assert.Error(t, config.Validate())
	config.samples = 10
	assert.NoError(t, config.Validate())
}

func TestImportValidate(t *testing.T) {
	config := &importCmdConfig{rootCmdConfig: &rootCmdConfig{}}
	assert.Error(t, config.Validate())
	config.networkInput = "net.yml"
	assert.Error(t, config.Validate())
	config.output = "net.db"
	assert.NoError(t, config.Validate())
}

func TestShowValidate(t *testing.T) {
	config := &showCmdConfig{rootCmdConfig: &rootCmdConfig{}}
	assert.Error(t, config.Validate())
	config.storeURL = "redis://localhost:6379"
	assert.Error(t, config.Validate())
	config.id = "some-id"
	assert.NoError(t, config.Validate())
}

func TestRedisOptions(t *testing.T) {
	u, err := url.Parse("redis://:secret@localhost:6379/bn:results")
	require.NoError(t, err)
	opts, prefix := redisOptions(u)
	assert.Equal(t, "localhost:6379", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, "bn:results", prefix)

	u, err = url.Parse("redis://localhost:6379")
	require.NoError(t, err)
	opts, prefix = redisOptions(u)
	assert.Equal(t, "", opts.Password)
	assert.Equal(t, defaultRedisPrefix, prefix)
}

func TestOpenStoreUnsupported(t *testing.T) {
	_, err := openStore(context.Background(), "memcached://localhost", logger(false))
	assert.Error(t, err)
}

func TestSQLAdapterUnsupported(t *testing.T) {
	_, err := sqlAdapter("network.csv", logger(false))
	assert.Error(t, err)
}

func TestLoadNetwork(t *testing.T) {
	dir, err := ioutil.TempDir("", "bayesnet")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	for name, content := range map[string]string{"chain.yml": chainYAML, "chain.json": chainJSON} {
		path := filepath.Join(dir, name)
		require.NoError(t, ioutil.WriteFile(path, []byte(content), 0644))
		n, err := loadNetwork(context.Background(), path, logger(false))
		require.NoError(t, err, name)
		assert.Equal(t, 2, n.Len(), name)
		assert.Equal(t, []int{0}, n.Node("B").Parents(), name)
	}
	_, err = loadNetwork(context.Background(), filepath.Join(dir, "missing.yml"), logger(false))
	assert.Error(t, err)
	_, err = loadNetwork(context.Background(), "network.txt", logger(false))
	assert.Error(t, err)
}

func TestWriteReport(t *testing.T) {
	d := weighted.New()
	d.Increment(bitvector.FromUint(1, 1), 0.75)
	d.Increment(bitvector.FromUint(1, 0), 0.25)
	e := &estimate.Estimate{
		Algorithm:        "likelihood",
		Variables:        []string{"A"},
		Evidence:         map[string]bool{"B": true},
		Distribution:     d,
		Samples:          100,
		Accepted:         100,
		EffectiveSamples: 80,
	}
	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, query.New([]string{"A"}, map[string]bool{"B": true}), e))
	out := buf.String()
	assert.Contains(t, out, "P(A | B=true)")
	assert.Contains(t, out, "P(A=true) = 0.750000")
	assert.Contains(t, out, "effective sample size: 80.0")
}
