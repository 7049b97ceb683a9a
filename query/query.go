/*
Package query defines the questions asked to a Bayesian network: which
variables to estimate and what values other variables were observed
to take.
*/
package query

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Error represents an error building a query
type Error string

// ErrMalformedEvidence is returned when an evidence string cannot be parsed
const ErrMalformedEvidence = Error("malformed evidence")

func (e Error) Error() string {
	return string(e)
}

/*
Query holds the variables whose posterior distribution is to be
estimated and the observed values of the evidence variables. The
evidence variables are the keys of EvidenceValues.
*/
type Query struct {
	QueryVariables []string
	EvidenceValues map[string]bool
}

/*
New takes a slice of query variable names and a map of evidence
variable names to their observed values and returns a query for them.
Repeated query variables are only kept once.
*/
func New(variables []string, evidence map[string]bool) *Query {
	seen := make(map[string]bool, len(variables))
	q := &Query{
		QueryVariables: make([]string, 0, len(variables)),
		EvidenceValues: make(map[string]bool, len(evidence)),
	}
	for _, v := range variables {
		if !seen[v] {
			seen[v] = true
			q.QueryVariables = append(q.QueryVariables, v)
		}
	}
	for k, v := range evidence {
		q.EvidenceValues[k] = v
	}
	return q
}

/*
Parse takes a slice of query variable names and a slice of evidence
strings of the form name=value, where value is anything strconv.ParseBool
accepts, and returns the query they describe or an error wrapping
ErrMalformedEvidence. A variable given conflicting values is an error too.
*/
func Parse(variables []string, evidence []string) (*Query, error) {
	values := make(map[string]bool, len(evidence))
	for _, e := range evidence {
		parts := strings.SplitN(e, "=", 2)
		if len(parts) != 2 {
			return nil, errors.Wrapf(ErrMalformedEvidence, "%q is not of the form name=value", e)
		}
		name := strings.TrimSpace(parts[0])
		if name == "" {
			return nil, errors.Wrapf(ErrMalformedEvidence, "%q has no variable name", e)
		}
		v, err := strconv.ParseBool(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedEvidence, "%q: %v", e, err)
		}
		if prev, ok := values[name]; ok && prev != v {
			return nil, errors.Wrapf(ErrMalformedEvidence, "%q contradicts a previous value for %s", e, name)
		}
		values[name] = v
	}
	return New(variables, values), nil
}

// EvidenceVariables returns the names of the evidence variables, sorted
func (q *Query) EvidenceVariables() []string {
	names := make([]string, 0, len(q.EvidenceValues))
	for name := range q.EvidenceValues {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsEvidence returns whether the named variable is an evidence variable
func (q *Query) IsEvidence(name string) bool {
	_, ok := q.EvidenceValues[name]
	return ok
}

func (q *Query) String() string {
	evidence := make([]string, 0, len(q.EvidenceValues))
	for _, name := range q.EvidenceVariables() {
		evidence = append(evidence, fmt.Sprintf("%s=%t", name, q.EvidenceValues[name]))
	}
	return fmt.Sprintf("P(%s | %s)", strings.Join(q.QueryVariables, ", "), strings.Join(evidence, ", "))
}
