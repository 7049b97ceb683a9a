/*
Package pgadapter provides an implementation of the sqlnet.Adapter
interface that works over a PostgreSQL database.
*/
package pgadapter

import (
	"database/sql"
	"fmt"

	// Import of PostgreSQL driver
	_ "github.com/lib/pq"
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
		probability DOUBLE PRECISION NOT NULL,
		PRIMARY KEY (node, configuration))`,
}

type adapter struct {
	db *sql.DB
}

/*
New takes a PostgreSQL database connection URL and returns an Adapter
that works on the database or an error if it fails to connect to it.
*/
func New(url string) (sqlnet.Adapter, error) {
	db, err := sql.Open("postgres", url)
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

func (a *adapter) Placeholder(i int) string {
	return fmt.Sprintf("$%d", i)
}
