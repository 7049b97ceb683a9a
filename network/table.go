package network

import (
	"fmt"

	"github.com/pbanos/bayesnet/bitvector"
	"github.com/pbanos/bayesnet/weighted"
)

// Prior takes a probability and returns the probability table of a
// node without parents that is true with that probability.
func Prior(p float64) *weighted.Set {
	cpt := weighted.New()
	cpt.Increment(bitvector.True, p)
	return cpt
}

/*
ParseTable takes a map of parent configurations in textual form (one
'T' or 'F' character per parent, see bitvector.Parse) to probabilities
and returns the equivalent probability table or an error if some
configuration cannot be parsed.
*/
func ParseTable(entries map[string]float64) (*weighted.Set, error) {
	cpt := weighted.New()
	for c, p := range entries {
		key, err := bitvector.Parse(c)
		if err != nil {
			return nil, fmt.Errorf("parsing probability table: %v", err)
		}
		if cpt.Contains(key) {
			return nil, fmt.Errorf("parsing probability table: configuration %q defined twice", c)
		}
		cpt.Increment(key, p)
	}
	return cpt, nil
}

// FormatTable returns the entries of a probability table keyed by
// their textual configuration, the inverse of ParseTable.
func FormatTable(cpt *weighted.Set) map[string]float64 {
	entries := make(map[string]float64, cpt.Len())
	cpt.Each(func(key bitvector.BitVector, p float64) {
		entries[key.String()] = p
	})
	return entries
}
