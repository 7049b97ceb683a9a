package bayesnet

import (
	"github.com/pbanos/bayesnet/bitvector"
	"github.com/pbanos/bayesnet/network"
	"github.com/pbanos/bayesnet/query"
	"github.com/pkg/errors"
)

type role uint8

const (
	queryRole role = 1 << iota
	evidenceRole
)

// plan is a query resolved against a network: the role and evidence
// value of every node by position, and the query variables in the
// order samples record them.
type plan struct {
	roles     []role
	evidence  []bool
	variables []string
}

func newPlan(n *network.Network, q *query.Query) (*plan, error) {
	p := &plan{
		roles:     make([]role, n.Len()),
		evidence:  make([]bool, n.Len()),
		variables: []string{},
	}
	for _, name := range q.QueryVariables {
		i, ok := n.Index(name)
		if !ok {
			return nil, errors.Wrapf(ErrUnknownVariable, "query variable %s", name)
		}
		p.roles[i] |= queryRole
	}
	for name, v := range q.EvidenceValues {
		i, ok := n.Index(name)
		if !ok {
			return nil, errors.Wrapf(ErrUnknownVariable, "evidence variable %s", name)
		}
		p.roles[i] |= evidenceRole
		p.evidence[i] = v
	}
	for i, node := range n.Nodes() {
		if p.roles[i]&queryRole != 0 {
			p.variables = append(p.variables, node.Name())
		}
	}
	if len(p.variables) > bitvector.MaxSize {
		return nil, errors.Wrapf(ErrTooManyQueryVariables, "%d query variables, at most %d allowed", len(p.variables), bitvector.MaxSize)
	}
	return p, nil
}

func (p *plan) isQuery(i int) bool {
	return p.roles[i]&queryRole != 0
}

func (p *plan) isEvidence(i int) bool {
	return p.roles[i]&evidenceRole != 0
}
