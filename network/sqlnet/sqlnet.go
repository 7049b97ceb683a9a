/*
Package sqlnet stores network.Network definitions in SQL databases and
reads them back. Networks are kept in three tables:
  * bn_nodes holds the position and name of every node
  * bn_parents holds the position and name of every parent of a node
  * bn_cpt holds the probability of a node being true for every
  configuration of its parents, written as one T or F character per
  parent (the empty string for nodes without parents)

Database specifics are left to an Adapter.
*/
package sqlnet

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pbanos/bayesnet/network"
)

/*
Adapter is an interface providing the database specifics
needed to store networks.
*/
type Adapter interface {
	// DB returns the database the adapter works on
	DB() *sql.DB
	// CreateTableStmts returns the statements that create
	// bn_nodes, bn_parents and bn_cpt if they do not exist
	CreateTableStmts() []string
	// Placeholder takes the 1-based position of a statement
	// argument and returns its placeholder
	Placeholder(int) string
}

/*
Write takes a context, an adapter and a network and stores the network
on the adapter's database, replacing any network stored there before.
It returns an error if the tables cannot be created or written.
*/
func Write(ctx context.Context, a Adapter, n *network.Network) error {
	for _, stmt := range a.CreateTableStmts() {
		_, err := a.DB().ExecContext(ctx, stmt)
		if err != nil {
			return fmt.Errorf("creating network tables: %v", err)
		}
	}
	tx, err := a.DB().BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting network write transaction: %v", err)
	}
	err = write(ctx, a, tx, n)
	if err != nil {
		tx.Rollback()
		return err
	}
	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("committing network write transaction: %v", err)
	}
	return nil
}

func write(ctx context.Context, a Adapter, tx *sql.Tx, n *network.Network) error {
	for _, table := range []string{"bn_cpt", "bn_parents", "bn_nodes"} {
		_, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			return fmt.Errorf("clearing %s: %v", table, err)
		}
	}
	nodeStmt := fmt.Sprintf("INSERT INTO bn_nodes(position, name) VALUES (%s, %s)", a.Placeholder(1), a.Placeholder(2))
	parentStmt := fmt.Sprintf("INSERT INTO bn_parents(node, position, parent) VALUES (%s, %s, %s)", a.Placeholder(1), a.Placeholder(2), a.Placeholder(3))
	cptStmt := fmt.Sprintf("INSERT INTO bn_cpt(node, configuration, probability) VALUES (%s, %s, %s)", a.Placeholder(1), a.Placeholder(2), a.Placeholder(3))
	for i, s := range n.Specs() {
		_, err := tx.ExecContext(ctx, nodeStmt, i, s.Name)
		if err != nil {
			return fmt.Errorf("inserting node %s: %v", s.Name, err)
		}
		for j, p := range s.Parents {
			_, err = tx.ExecContext(ctx, parentStmt, s.Name, j, p)
			if err != nil {
				return fmt.Errorf("inserting parent %s of node %s: %v", p, s.Name, err)
			}
		}
		for c, p := range network.FormatTable(s.CPT) {
			_, err = tx.ExecContext(ctx, cptStmt, s.Name, c, p)
			if err != nil {
				return fmt.Errorf("inserting cpt entry %q of node %s: %v", c, s.Name, err)
			}
		}
	}
	return nil
}

/*
Read takes a context and an adapter and returns the network stored on
the adapter's database or an error if it cannot be queried or does not
hold a valid network.
*/
func Read(ctx context.Context, a Adapter) (*network.Network, error) {
	names, err := readNodes(ctx, a)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("database holds no network nodes")
	}
	parents, err := readParents(ctx, a)
	if err != nil {
		return nil, err
	}
	tables, err := readTables(ctx, a)
	if err != nil {
		return nil, err
	}
	known := make(map[string]bool, len(names))
	for _, name := range names {
		known[name] = true
	}
	for node := range parents {
		if !known[node] {
			return nil, fmt.Errorf("bn_parents has rows for node %s missing from bn_nodes", node)
		}
	}
	for node := range tables {
		if !known[node] {
			return nil, fmt.Errorf("bn_cpt has rows for node %s missing from bn_nodes", node)
		}
	}
	specs := make([]network.NodeSpec, 0, len(names))
	for _, name := range names {
		cpt, err := network.ParseTable(tables[name])
		if err != nil {
			return nil, fmt.Errorf("node %s: %v", name, err)
		}
		specs = append(specs, network.NodeSpec{Name: name, Parents: parents[name], CPT: cpt})
	}
	return network.New(specs)
}

func readNodes(ctx context.Context, a Adapter) ([]string, error) {
	rows, err := a.DB().QueryContext(ctx, "SELECT name FROM bn_nodes ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("querying bn_nodes: %v", err)
	}
	defer rows.Close()
	var names []string
	for rows.Next() {
		var name string
		err = rows.Scan(&name)
		if err != nil {
			return nil, fmt.Errorf("scanning bn_nodes: %v", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func readParents(ctx context.Context, a Adapter) (map[string][]string, error) {
	rows, err := a.DB().QueryContext(ctx, "SELECT node, parent FROM bn_parents ORDER BY node, position")
	if err != nil {
		return nil, fmt.Errorf("querying bn_parents: %v", err)
	}
	defer rows.Close()
	parents := make(map[string][]string)
	for rows.Next() {
		var node, parent string
		err = rows.Scan(&node, &parent)
		if err != nil {
			return nil, fmt.Errorf("scanning bn_parents: %v", err)
		}
		parents[node] = append(parents[node], parent)
	}
	return parents, rows.Err()
}

func readTables(ctx context.Context, a Adapter) (map[string]map[string]float64, error) {
	rows, err := a.DB().QueryContext(ctx, "SELECT node, configuration, probability FROM bn_cpt")
	if err != nil {
		return nil, fmt.Errorf("querying bn_cpt: %v", err)
	}
	defer rows.Close()
	tables := make(map[string]map[string]float64)
	for rows.Next() {
		var node, configuration string
		var probability float64
		err = rows.Scan(&node, &configuration, &probability)
		if err != nil {
			return nil, fmt.Errorf("scanning bn_cpt: %v", err)
		}
		if tables[node] == nil {
			tables[node] = make(map[string]float64)
		}
		tables[node][configuration] = probability
	}
	return tables, rows.Err()
}
