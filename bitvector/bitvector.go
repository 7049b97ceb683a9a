/*
Package bitvector provides a fixed-size sequence of boolean positions
that can be used as a map key.
*/
package bitvector

import (
	"fmt"
	"strings"
)

// MaxSize is the maximum number of positions a BitVector can hold
const MaxSize = 64

/*
BitVector is an ordered, fixed-size sequence of boolean positions.
It is a comparable value: two BitVectors are equal (and map to the
same entry when used as a map key) if and only if they have the same
size and the same bit pattern.
*/
type BitVector struct {
	size uint8
	bits uint64
}

// True is the zero-length BitVector. It keys the single entry
// of the probability table of a node without parents.
var True = New(0)

/*
New takes a size and returns a BitVector of that size with all
its positions set to true. It panics if size is negative or greater
than MaxSize.
*/
func New(size int) BitVector {
	if size < 0 || size > MaxSize {
		panic(fmt.Sprintf("bitvector: invalid size %d", size))
	}
	return BitVector{uint8(size), mask(size)}
}

/*
FromUint takes a size and a uint64 and returns a BitVector of that
size whose position j is true if and only if bit j of the given
uint64 is set. Bits beyond size are ignored.
*/
func FromUint(size int, bits uint64) BitVector {
	bv := New(size)
	bv.bits &= bits
	return bv
}

/*
Parse takes a string with one character per position, 'T' for true
and 'F' for false, and returns the BitVector it represents or an error.
The empty string represents True.
*/
func Parse(s string) (BitVector, error) {
	if len(s) > MaxSize {
		return True, fmt.Errorf("parsing bit vector %q: longer than %d positions", s, MaxSize)
	}
	bv := New(len(s))
	for i, c := range s {
		switch c {
		case 'T', 't':
		case 'F', 'f':
			bv.Set(i, false)
		default:
			return True, fmt.Errorf("parsing bit vector %q: invalid character %q at position %d", s, c, i)
		}
	}
	return bv, nil
}

// Len returns the number of positions in the BitVector
func (bv BitVector) Len() int {
	return int(bv.size)
}

// Get returns the value at position i. It panics if i is out of range.
func (bv BitVector) Get(i int) bool {
	bv.check(i)
	return bv.bits&(1<<uint(i)) != 0
}

// Set sets position i to v. It panics if i is out of range.
func (bv *BitVector) Set(i int, v bool) {
	bv.check(i)
	if v {
		bv.bits |= 1 << uint(i)
	} else {
		bv.bits &^= 1 << uint(i)
	}
}

// Uint returns the bit pattern of the BitVector, position j being bit j.
func (bv BitVector) Uint() uint64 {
	return bv.bits
}

func (bv BitVector) String() string {
	var b strings.Builder
	for i := 0; i < bv.Len(); i++ {
		if bv.Get(i) {
			b.WriteByte('T')
		} else {
			b.WriteByte('F')
		}
	}
	return b.String()
}

func (bv BitVector) check(i int) {
	if i < 0 || i >= int(bv.size) {
		panic(fmt.Sprintf("bitvector: index %d out of range [0,%d)", i, bv.size))
	}
}

func mask(size int) uint64 {
	if size == MaxSize {
		return ^uint64(0)
	}
	return (uint64(1) << uint(size)) - 1
}
