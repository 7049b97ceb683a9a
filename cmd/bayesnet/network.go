package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pbanos/bayesnet/network"
	"github.com/pbanos/bayesnet/network/json"
	"github.com/pbanos/bayesnet/network/sqlnet"
	"github.com/pbanos/bayesnet/network/sqlnet/pgadapter"
	"github.com/pbanos/bayesnet/network/sqlnet/sqlite3adapter"
	"github.com/pbanos/bayesnet/network/yaml"
)

func isPostgreSQLURL(s string) bool {
	return strings.HasPrefix(s, "postgresql://") || strings.HasPrefix(s, "postgres://")
}

/*
sqlAdapter takes a PostgreSQL DB connection URL or the path to an
SQLite3 (.db) file and returns an adapter for its database.
*/
func sqlAdapter(location string, l logger) (sqlnet.Adapter, error) {
	if isPostgreSQLURL(location) {
		l.Logf("Creating PostgreSQL adapter for url %s...", location)
		return pgadapter.New(location)
	}
	if strings.HasSuffix(location, ".db") {
		l.Logf("Creating SQLite3 adapter for file %s...", location)
		return sqlite3adapter.New(location)
	}
	return nil, fmt.Errorf("%s is neither a PostgreSQL DB connection URL nor an SQLite3 (.db) file", location)
}

/*
loadNetwork takes a context and the location of a network definition
and returns the network defined there. Definitions are read as YAML
(.yml, .yaml) or JSON (.json) files, or from an SQLite3 (.db) file or
PostgreSQL DB.
*/
func loadNetwork(ctx context.Context, location string, l logger) (*network.Network, error) {
	switch {
	case strings.HasSuffix(location, ".yml"), strings.HasSuffix(location, ".yaml"):
		l.Logf("Reading network in YAML from %s...", location)
		n, err := yaml.ReadNetworkFromFile(location)
		if err != nil {
			return nil, fmt.Errorf("reading network in YAML from %s: %v", location, err)
		}
		return n, nil
	case strings.HasSuffix(location, ".json"):
		l.Logf("Reading network in JSON from %s...", location)
		f, err := os.Open(location)
		if err != nil {
			return nil, fmt.Errorf("reading network in JSON from %s: %v", location, err)
		}
		defer f.Close()
		n, err := json.ReadNetwork(f)
		if err != nil {
			return nil, fmt.Errorf("parsing network in JSON from %s: %v", location, err)
		}
		return n, nil
	}
	adapter, err := sqlAdapter(location, l)
	if err != nil {
		return nil, fmt.Errorf("unsupported network location: %v", err)
	}
	defer adapter.DB().Close()
	l.Logf("Reading network from database...")
	n, err := sqlnet.Read(ctx, adapter)
	if err != nil {
		return nil, fmt.Errorf("reading network from %s: %v", location, err)
	}
	return n, nil
}
