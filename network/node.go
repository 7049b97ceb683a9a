package network

import (
	"math/rand/v2"

	"github.com/pbanos/bayesnet/bitvector"
	"github.com/pbanos/bayesnet/weighted"
)

/*
Node is a boolean random variable of a Network. Its name, parents and
probability table are fixed when the network is built; the value of
the variable during a sample lives in an Assignment, not in the Node.
*/
type Node struct {
	name    string
	index   int
	parents []int
	cpt     *weighted.Set
}

// Name returns the name of the variable
func (n *Node) Name() string {
	return n.name
}

// Index returns the position of the node in its network
func (n *Node) Index() int {
	return n.index
}

// Parents returns the positions of the node's parents in its network,
// in the order the probability table keys refer to them.
func (n *Node) Parents() []int {
	return n.parents
}

// CPT returns the conditional probability table of the node: the
// probability of the variable being true for each configuration of
// its parents.
func (n *Node) CPT() *weighted.Set {
	return n.cpt
}

/*
Probability takes an assignment and returns the probability of the
variable being true given the values its parents have on the
assignment. Parents must have been assigned before calling it.
*/
func (n *Node) Probability(a Assignment) float64 {
	key := bitvector.New(len(n.parents))
	for i, p := range n.parents {
		if !a[p] {
			key.Set(i, false)
		}
	}
	return n.cpt.Weight(key)
}

/*
SampleAndSet takes an assignment and a random number generator,
draws a value for the variable conditioned on the values of its
parents on the assignment, stores it on the assignment and returns it.
The value is true when a uniform draw in [0, 1) falls below
Probability, so a probability of 0 never yields true and one of 1
always does.
*/
func (n *Node) SampleAndSet(a Assignment, r *rand.Rand) bool {
	v := r.Float64() < n.Probability(a)
	a[n.index] = v
	return v
}

// SetValue clamps the variable to the given value on the assignment
func (n *Node) SetValue(a Assignment, v bool) {
	a[n.index] = v
}

// Value returns the value of the variable on the assignment
func (n *Node) Value(a Assignment) bool {
	return a[n.index]
}

func (n *Node) String() string {
	return n.name
}

/*
Assignment holds a value for every variable of a network, indexed by
node position. It is the scratch space of a single sample.
*/
type Assignment []bool
