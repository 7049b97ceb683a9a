/*
Package json encodes estimate.Estimate values as JSON documents and
decodes them back.
*/
package json

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/pbanos/bayesnet/bitvector"
	"github.com/pbanos/bayesnet/estimate"
	"github.com/pbanos/bayesnet/weighted"
)

/*
EncodeDecoder is an interface for objects that allow encoding
estimates into slices of bytes and decoding them back.
*/
type EncodeDecoder interface {
	// Encode receives an *estimate.Estimate and returns a slice
	// of bytes with it encoded or an error.
	Encode(*estimate.Estimate) ([]byte, error)
	// Decode receives a slice of bytes and returns the
	// *estimate.Estimate encoded in it or an error.
	Decode([]byte) (*estimate.Estimate, error)
}

type entry struct {
	Assignment  string  `json:"assignment"`
	Probability float64 `json:"probability"`
}

type jsonEstimate struct {
	ID               string          `json:"id,omitempty"`
	Algorithm        string          `json:"algorithm"`
	Variables        []string        `json:"variables"`
	Evidence         map[string]bool `json:"evidence,omitempty"`
	Distribution     []entry         `json:"distribution"`
	Samples          int             `json:"samples"`
	Accepted         int             `json:"accepted"`
	EffectiveSamples float64         `json:"effectiveSamples"`
	CreatedAt        time.Time       `json:"createdAt"`
}

type encodeDecoder struct{}

// New returns an EncodeDecoder that uses JSON as encoding
func New() EncodeDecoder {
	return encodeDecoder{}
}

func (encodeDecoder) Encode(e *estimate.Estimate) ([]byte, error) {
	return json.Marshal(toJSON(e))
}

func (encodeDecoder) Decode(data []byte) (*estimate.Estimate, error) {
	je := &jsonEstimate{}
	err := json.Unmarshal(data, je)
	if err != nil {
		return nil, fmt.Errorf("decoding json estimate: %v", err)
	}
	return fromJSON(je)
}

/*
WriteEstimate takes an io.Writer and an estimate and writes an indented
JSON representation of the estimate onto the writer. The distribution
is written as an array of objects with an "assignment" field holding
one 'T' or 'F' character per variable and a "probability" field.
*/
func WriteEstimate(w io.Writer, e *estimate.Estimate) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	err := encoder.Encode(toJSON(e))
	if err != nil {
		return fmt.Errorf("serializing estimate as JSON: %v", err)
	}
	return nil
}

// ReadEstimate takes an io.Reader and decodes a JSON estimate from it
func ReadEstimate(r io.Reader) (*estimate.Estimate, error) {
	je := &jsonEstimate{}
	err := json.NewDecoder(r).Decode(je)
	if err != nil {
		return nil, fmt.Errorf("decoding json estimate: %v", err)
	}
	return fromJSON(je)
}

func toJSON(e *estimate.Estimate) *jsonEstimate {
	je := &jsonEstimate{
		ID:               e.ID,
		Algorithm:        e.Algorithm,
		Variables:        e.Variables,
		Evidence:         e.Evidence,
		Distribution:     make([]entry, 0, e.Distribution.Len()),
		Samples:          e.Samples,
		Accepted:         e.Accepted,
		EffectiveSamples: e.EffectiveSamples,
		CreatedAt:        e.CreatedAt,
	}
	e.Distribution.Each(func(k bitvector.BitVector, p float64) {
		je.Distribution = append(je.Distribution, entry{k.String(), p})
	})
	return je
}

func fromJSON(je *jsonEstimate) (*estimate.Estimate, error) {
	d := weighted.New()
	for _, en := range je.Distribution {
		k, err := bitvector.Parse(en.Assignment)
		if err != nil {
			return nil, fmt.Errorf("decoding json estimate: %v", err)
		}
		if k.Len() != len(je.Variables) {
			return nil, fmt.Errorf("decoding json estimate: assignment %q does not cover %d variables", en.Assignment, len(je.Variables))
		}
		d.Increment(k, en.Probability)
	}
	evidence := je.Evidence
	if evidence == nil {
		evidence = map[string]bool{}
	}
	return &estimate.Estimate{
		ID:               je.ID,
		Algorithm:        je.Algorithm,
		Variables:        je.Variables,
		Evidence:         evidence,
		Distribution:     d,
		Samples:          je.Samples,
		Accepted:         je.Accepted,
		EffectiveSamples: je.EffectiveSamples,
		CreatedAt:        je.CreatedAt,
	}, nil
}
