/*
Package json reads network.Network definitions from JSON documents and
writes networks as JSON documents.
*/
package json

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pbanos/bayesnet/network"
)

type node struct {
	Name    string             `json:"name"`
	Parents []string           `json:"parents,omitempty"`
	CPT     map[string]float64 `json:"cpt"`
}

type jsonNetwork struct {
	Nodes []node `json:"nodes"`
}

/*
ReadNetwork takes an io.Reader and decodes a network from the JSON
document on it, returning it or an error.
The document is expected to be an object with a "nodes" array listing
the nodes in topological order. Each node is an object with a "name",
an optional array of "parents" names and a "cpt" object with a property
for each configuration of the parents (one T or F character per parent,
the empty string for nodes without parents) holding the probability of
the node being true under it.
*/
func ReadNetwork(r io.Reader) (*network.Network, error) {
	jn := &jsonNetwork{}
	err := json.NewDecoder(r).Decode(jn)
	if err != nil {
		return nil, fmt.Errorf("decoding json network: %v", err)
	}
	if len(jn.Nodes) == 0 {
		return nil, fmt.Errorf("network definition has no nodes")
	}
	specs := make([]network.NodeSpec, 0, len(jn.Nodes))
	for _, n := range jn.Nodes {
		cpt, err := network.ParseTable(n.CPT)
		if err != nil {
			return nil, fmt.Errorf("node %s: %v", n.Name, err)
		}
		specs = append(specs, network.NodeSpec{Name: n.Name, Parents: n.Parents, CPT: cpt})
	}
	return network.New(specs)
}

/*
WriteNetwork takes an io.Writer and a network and writes the network
onto the writer as a JSON document that ReadNetwork can decode. It
returns an error if serialization or writing fails.
*/
func WriteNetwork(w io.Writer, n *network.Network) error {
	jn := &jsonNetwork{Nodes: make([]node, 0, n.Len())}
	for _, s := range n.Specs() {
		jn.Nodes = append(jn.Nodes, node{
			Name:    s.Name,
			Parents: s.Parents,
			CPT:     network.FormatTable(s.CPT),
		})
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	err := encoder.Encode(jn)
	if err != nil {
		return fmt.Errorf("serializing network as JSON: %v", err)
	}
	return nil
}
