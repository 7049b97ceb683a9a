package bayesnet

import "github.com/pbanos/bayesnet/weighted"

// Error represents an error running inference on a network
type Error string

const (
	// ErrUnknownVariable is returned when a query names a variable
	// that is not a node of the network
	ErrUnknownVariable = Error("unknown variable")
	// ErrTooManyQueryVariables is returned when a query has more
	// variables than a sample can record
	ErrTooManyQueryVariables = Error("too many query variables")
	// ErrInvalidSampleCount is returned when asked for less than one sample
	ErrInvalidSampleCount = Error("sample count must be positive")
	// ErrUnknownAlgorithm is returned by ParseAlgorithm for unknown names
	ErrUnknownAlgorithm = Error("unknown algorithm")
)

/*
ErrNoSamplesAccepted is returned when no drawn sample contributed any
weight to the estimate: rejection sampling rejected them all, or
likelihood weighting weighted them all with 0 because the evidence is
impossible under the network.
*/
const ErrNoSamplesAccepted = weighted.ErrNoSamplesAccepted

// ErrNotNormalizable is returned when the accumulated sample weights
// cannot be turned into a distribution.
const ErrNotNormalizable = weighted.ErrNotNormalizable

func (e Error) Error() string {
	return string(e)
}
