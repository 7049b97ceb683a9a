/*
Package weighted provides a set of weighted observations keyed by
bitvector.BitVector that can be normalized into a probability
distribution.
*/
package weighted

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/pbanos/bayesnet/bitvector"
	"gonum.org/v1/gonum/floats"
)

// Error represents an error related with weighted sets
type Error string

/*
ErrNoSamplesAccepted is the error returned when normalizing a set whose
weights add up to 0, which happens when no sample was accepted (or all
accepted samples carried a weight of 0) while building it.
*/
const ErrNoSamplesAccepted = Error("no samples accepted: total weight is 0")

// ErrNotNormalizable is returned when normalizing a set whose weights
// do not add up to a finite positive number or cannot be scaled to add
// up to 1.
const ErrNotNormalizable = Error("weights cannot be normalized")

func (e Error) Error() string {
	return string(e)
}

const normalizationTolerance = 1e-9

/*
Set maps BitVectors to accumulated non-negative weights. The zero value
is not usable, use New instead.
*/
type Set struct {
	weights map[bitvector.BitVector]float64
}

// New returns an empty Set
func New() *Set {
	return &Set{make(map[bitvector.BitVector]float64)}
}

// Weight returns the weight for the given key or 0.0 if the
// key has never been incremented.
func (s *Set) Weight(key bitvector.BitVector) float64 {
	return s.weights[key]
}

// Contains returns whether the key has an entry on the set
func (s *Set) Contains(key bitvector.BitVector) bool {
	_, ok := s.weights[key]
	return ok
}

/*
Increment takes a key and a non-negative amount and adds the amount
to the weight of the key, creating the entry if needed.
*/
func (s *Set) Increment(key bitvector.BitVector, amount float64) {
	s.weights[key] += amount
}

// Len returns the number of entries in the set
func (s *Set) Len() int {
	return len(s.weights)
}

// Total returns the sum of all weights in the set
func (s *Set) Total() float64 {
	_, values := s.entries()
	return floats.Sum(values)
}

/*
Normalize divides every weight in the set by the sum of all weights,
so that they add up to 1. It returns ErrNoSamplesAccepted and leaves
the set untouched if that sum is 0, and ErrNotNormalizable if the sum
is not finite or the divided weights do not add up to 1.
Each weight is divided by the sum instead of multiplied by its inverse,
which overflows when the sum is subnormal.
*/
func (s *Set) Normalize() error {
	keys, values := s.entries()
	total := floats.Sum(values)
	if total == 0 {
		return ErrNoSamplesAccepted
	}
	if math.IsNaN(total) || math.IsInf(total, 0) || total < 0 {
		return ErrNotNormalizable
	}
	for i := range values {
		values[i] /= total
	}
	if math.Abs(floats.Sum(values)-1) > normalizationTolerance {
		return ErrNotNormalizable
	}
	for i, k := range keys {
		s.weights[k] = values[i]
	}
	return nil
}

/*
Keys returns the keys in the set sorted by size and then by bit
pattern, so that iterations over a set are deterministic.
*/
func (s *Set) Keys() []bitvector.BitVector {
	keys := make([]bitvector.BitVector, 0, len(s.weights))
	for k := range s.weights {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Len() != keys[j].Len() {
			return keys[i].Len() < keys[j].Len()
		}
		return keys[i].Uint() < keys[j].Uint()
	})
	return keys
}

// Each calls f with every key and weight in the set, in Keys order
func (s *Set) Each(f func(bitvector.BitVector, float64)) {
	for _, k := range s.Keys() {
		f(k, s.weights[k])
	}
}

func (s *Set) String() string {
	parts := make([]string, 0, len(s.weights))
	s.Each(func(k bitvector.BitVector, w float64) {
		parts = append(parts, fmt.Sprintf("%s:%v", k, w))
	})
	return fmt.Sprintf("[%s]", strings.Join(parts, " "))
}

func (s *Set) entries() ([]bitvector.BitVector, []float64) {
	keys := s.Keys()
	values := make([]float64, len(keys))
	for i, k := range keys {
		values[i] = s.weights[k]
	}
	return keys, values
}
