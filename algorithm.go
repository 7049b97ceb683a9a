package bayesnet

import (
	"strings"

	"github.com/pkg/errors"
)

// Algorithm identifies an approximate inference algorithm
type Algorithm int

const (
	// DirectSampling samples every variable from the prior
	// distribution, ignoring evidence.
	DirectSampling Algorithm = iota
	// RejectionSampling samples like DirectSampling but discards
	// samples that contradict the evidence.
	RejectionSampling
	// LikelihoodWeighting clamps evidence variables and weights
	// every sample by the likelihood of the evidence.
	LikelihoodWeighting
)

var algorithmNames = map[Algorithm]string{
	DirectSampling:      "direct",
	RejectionSampling:   "rejection",
	LikelihoodWeighting: "likelihood",
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return "unknown"
}

/*
ParseAlgorithm takes the name of an algorithm ("direct", "rejection" or
"likelihood", case insensitive) and returns it or ErrUnknownAlgorithm.
*/
func ParseAlgorithm(name string) (Algorithm, error) {
	for a, n := range algorithmNames {
		if strings.EqualFold(n, name) {
			return a, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownAlgorithm, "%q", name)
}
