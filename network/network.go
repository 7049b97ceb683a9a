/*
Package network defines Bayesian networks of boolean random variables:
their nodes, the specifications loaders hand over to build them and the
assignments samplers fill in while traversing them.
*/
package network

import (
	"math"

	"github.com/pbanos/bayesnet/bitvector"
	"github.com/pbanos/bayesnet/weighted"
	"github.com/pkg/errors"
)

// MaxParents is the maximum number of parents a node can have
const MaxParents = 24

/*
NodeSpec describes a node for New: a name, the ordered names of its
parents and its conditional probability table, which must have an entry
keyed by a BitVector of len(Parents) positions for each of the
2^len(Parents) configurations of the parents. A node without parents has
a single entry keyed by bitvector.True holding its prior probability.
*/
type NodeSpec struct {
	Name    string
	Parents []string
	CPT     *weighted.Set
}

/*
Network is a Bayesian network: an ordered collection of nodes where
every node is listed after its parents. A Network is immutable once
built and can be shared by any number of samplers.
*/
type Network struct {
	nodes   []*Node
	indexes map[string]int
}

/*
New takes a slice of node specifications in topological order and
returns the Network they describe, or an error if they do not describe
a valid one. Errors can be matched with errors.Cause against the Error
constants of this package.
*/
func New(specs []NodeSpec) (*Network, error) {
	n := &Network{
		nodes:   make([]*Node, 0, len(specs)),
		indexes: make(map[string]int, len(specs)),
	}
	defined := make(map[string]bool, len(specs))
	for _, s := range specs {
		defined[s.Name] = true
	}
	for i, s := range specs {
		if s.Name == "" {
			return nil, errors.Wrapf(ErrEmptyName, "node at position %d", i)
		}
		if _, ok := n.indexes[s.Name]; ok {
			return nil, errors.Wrapf(ErrDuplicateNode, "node %s", s.Name)
		}
		node, err := n.newNode(i, s, defined)
		if err != nil {
			return nil, err
		}
		n.nodes = append(n.nodes, node)
		n.indexes[s.Name] = i
	}
	return n, nil
}

func (n *Network) newNode(i int, s NodeSpec, defined map[string]bool) (*Node, error) {
	if len(s.Parents) > MaxParents {
		return nil, errors.Wrapf(ErrTooManyParents, "node %s has %d parents, at most %d allowed", s.Name, len(s.Parents), MaxParents)
	}
	node := &Node{name: s.Name, index: i, parents: make([]int, 0, len(s.Parents))}
	seen := make(map[string]bool, len(s.Parents))
	for _, pn := range s.Parents {
		if seen[pn] {
			return nil, errors.Wrapf(ErrDuplicateParent, "node %s lists parent %s twice", s.Name, pn)
		}
		seen[pn] = true
		pi, ok := n.indexes[pn]
		if !ok {
			if defined[pn] {
				return nil, errors.Wrapf(ErrOutOfTopologicalOrder, "node %s has parent %s", s.Name, pn)
			}
			return nil, errors.Wrapf(ErrUnknownParent, "node %s has parent %s", s.Name, pn)
		}
		node.parents = append(node.parents, pi)
	}
	cpt, err := validateTable(s)
	if err != nil {
		return nil, err
	}
	node.cpt = cpt
	return node, nil
}

func validateTable(s NodeSpec) (*weighted.Set, error) {
	if s.CPT == nil {
		return nil, errors.Wrapf(ErrIncompleteTable, "node %s has no probability table", s.Name)
	}
	k := len(s.Parents)
	cpt := weighted.New()
	var err error
	s.CPT.Each(func(key bitvector.BitVector, p float64) {
		if err != nil {
			return
		}
		if key.Len() != k {
			err = errors.Wrapf(ErrInvalidTable, "node %s: entry %q does not configure %d parents", s.Name, key, k)
			return
		}
		if math.IsNaN(p) || p < 0 || p > 1 {
			err = errors.Wrapf(ErrInvalidProbability, "node %s: entry %q has probability %v", s.Name, key, p)
			return
		}
		cpt.Increment(key, p)
	})
	if err != nil {
		return nil, err
	}
	for c := uint64(0); c < uint64(1)<<uint(k); c++ {
		key := bitvector.FromUint(k, c)
		if !cpt.Contains(key) {
			return nil, errors.Wrapf(ErrIncompleteTable, "node %s: no entry for parent configuration %q", s.Name, key)
		}
	}
	return cpt, nil
}

// Nodes returns the nodes of the network in topological order
func (n *Network) Nodes() []*Node {
	return n.nodes
}

// Len returns the number of nodes in the network
func (n *Network) Len() int {
	return len(n.nodes)
}

// Node returns the node with the given name or nil if there is none
func (n *Network) Node(name string) *Node {
	i, ok := n.indexes[name]
	if !ok {
		return nil
	}
	return n.nodes[i]
}

// Index returns the position of the node with the given name and
// whether it exists.
func (n *Network) Index(name string) (int, bool) {
	i, ok := n.indexes[name]
	return i, ok
}

// NewAssignment returns an assignment with room for every
// variable of the network.
func (n *Network) NewAssignment() Assignment {
	return make(Assignment, len(n.nodes))
}

/*
Specs returns the node specifications that build the network, in
topological order. Writers use it to serialize networks.
*/
func (n *Network) Specs() []NodeSpec {
	specs := make([]NodeSpec, 0, len(n.nodes))
	for _, node := range n.nodes {
		parents := make([]string, 0, len(node.parents))
		for _, p := range node.parents {
			parents = append(parents, n.nodes[p].name)
		}
		cpt := weighted.New()
		node.cpt.Each(cpt.Increment)
		specs = append(specs, NodeSpec{Name: node.name, Parents: parents, CPT: cpt})
	}
	return specs
}
