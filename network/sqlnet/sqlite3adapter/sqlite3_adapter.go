/*
Package sqlite3adapter provides an implementation of the sqlnet.Adapter
interface that works over an SQLite3 database file.
*/
package sqlite3adapter

import (
	"database/sql"

	// Import of sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
	"github.com/pbanos/bayesnet/network/sqlnet"
)

var createTableStmts = []string{
	`CREATE TABLE IF NOT EXISTS bn_nodes (
		position INTEGER PRIMARY KEY,
		name TEXT UNIQUE NOT NULL)`,
	`CREATE TABLE IF NOT EXISTS bn_parents (
		node TEXT NOT NULL REFERENCES bn_nodes(name),
		position INTEGER NOT NULL,
		parent TEXT NOT NULL REFERENCES bn_nodes(name),
		PRIMARY KEY (node, position))`,
	`CREATE TABLE IF NOT EXISTS bn_cpt (
		node TEXT NOT NULL REFERENCES bn_nodes(name),
		configuration TEXT NOT NULL,
		probability REAL NOT NULL,
		PRIMARY KEY (node, configuration))`,
}

type adapter struct {
	db *sql.DB
}

/*
New takes a path to an SQLite3 database file and returns an Adapter
that works on the file's database or an error if it fails to open as
an sqlite3 database.
*/
func New(path string) (sqlnet.Adapter, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	return &adapter{db}, nil
}

func (a *adapter) DB() *sql.DB {
	return a.db
}

func (a *adapter) CreateTableStmts() []string {
	return createTableStmts
}

func (a *adapter) Placeholder(int) string {
	return "?"
}
