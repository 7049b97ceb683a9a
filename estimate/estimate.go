/*
Package estimate defines the result of approximate inference on a
Bayesian network and the stores where those results can be kept.
*/
package estimate

import (
	"fmt"
	"strings"
	"time"

	"github.com/pbanos/bayesnet/bitvector"
	"github.com/pbanos/bayesnet/weighted"
	"github.com/pkg/errors"
)

// Error represents an error related with estimates
type Error string

// ErrUnknownVariable is returned when asking an estimate about a
// variable it does not cover.
const ErrUnknownVariable = Error("variable not covered by the estimate")

func (e Error) Error() string {
	return string(e)
}

/*
Estimate is an approximate joint distribution over a set of query
variables. Position j of every BitVector key of Distribution holds the
value of Variables[j].
*/
type Estimate struct {
	// An ID to identify the estimate on a Store
	ID string
	// The name of the algorithm that produced the estimate
	Algorithm string
	// The query variables, in the topological order of the network
	Variables []string
	// The evidence the estimate is conditioned on
	Evidence map[string]bool
	// The normalized distribution over the query variables
	Distribution *weighted.Set
	// The number of samples drawn
	Samples int
	// The number of samples that contributed to the distribution
	Accepted int
	// The effective sample size: (Σw)² / Σw² over the accepted samples
	EffectiveSamples float64
	CreatedAt        time.Time
}

/*
Probability takes a map with a value for every variable of the estimate
and returns the estimated probability of that joint assignment, or an
error if the map misses a variable or names one the estimate does not
cover.
*/
func (e *Estimate) Probability(assignment map[string]bool) (float64, error) {
	if len(assignment) != len(e.Variables) {
		return 0, fmt.Errorf("assignment of %d variables for an estimate over %d", len(assignment), len(e.Variables))
	}
	key := bitvector.New(len(e.Variables))
	for i, v := range e.Variables {
		value, ok := assignment[v]
		if !ok {
			return 0, errors.Wrapf(ErrUnknownVariable, "assignment misses %s", v)
		}
		key.Set(i, value)
	}
	return e.Distribution.Weight(key), nil
}

/*
Marginal takes the name of a variable of the estimate and returns the
estimated probability of it being true, or ErrUnknownVariable.
*/
func (e *Estimate) Marginal(variable string) (float64, error) {
	pos := -1
	for i, v := range e.Variables {
		if v == variable {
			pos = i
			break
		}
	}
	if pos < 0 {
		return 0, ErrUnknownVariable
	}
	var result float64
	e.Distribution.Each(func(k bitvector.BitVector, p float64) {
		if k.Get(pos) {
			result += p
		}
	})
	return result, nil
}

// Label takes a key of the distribution and returns it in terms
// of the estimate's variables, like "A=true, B=false".
func (e *Estimate) Label(key bitvector.BitVector) string {
	parts := make([]string, 0, len(e.Variables))
	for i, v := range e.Variables {
		parts = append(parts, fmt.Sprintf("%s=%t", v, key.Get(i)))
	}
	return strings.Join(parts, ", ")
}

func (e *Estimate) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s estimate over %v (%d/%d samples accepted)\n", e.Algorithm, e.Variables, e.Accepted, e.Samples)
	e.Distribution.Each(func(k bitvector.BitVector, p float64) {
		fmt.Fprintf(&b, "  P(%s) = %.6f\n", e.Label(k), p)
	})
	return b.String()
}
