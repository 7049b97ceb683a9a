package pgadapter

import (
	"context"
	"os"
	"testing"

	"github.com/pbanos/bayesnet/network"
	"github.com/pbanos/bayesnet/network/sqlnet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceholder(t *testing.T) {
	a := &adapter{}
	assert.Equal(t, "$1", a.Placeholder(1))
	assert.Equal(t, "$12", a.Placeholder(12))
}

func TestWriteRead(t *testing.T) {
	url := os.Getenv("BAYESNET_PG_URL")
	if url == "" {
		t.Skip("BAYESNET_PG_URL not set")
	}
	a, err := New(url)
	require.NoError(t, err)
	defer a.DB().Close()
	cpt, err := network.ParseTable(map[string]float64{"T": 0.9, "F": 0.1})
	require.NoError(t, err)
	n, err := network.New([]network.NodeSpec{
		{Name: "A", CPT: network.Prior(0.7)},
		{Name: "B", Parents: []string{"A"}, CPT: cpt},
	})
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, sqlnet.Write(ctx, a, n))
	m, err := sqlnet.Read(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, n.Specs(), m.Specs())
}
