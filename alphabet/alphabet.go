// Package alphabet defines the candidate alphabet and the mixed-radix codec
// between fixed-length candidate strings and integer indices.
//
// An Alphabet is an ordered, duplicate-free sequence of symbols. With base
// B = Len() and candidate length L, candidates map bijectively onto the
// index range [0, B^L): the first symbol of a candidate is the most
// significant digit. The codec is the single source of truth for how search
// indices relate to candidate strings; both the classical scan and the
// quantum result decoding go through it.
package alphabet

import "math/bits"

// Alphabet is an ordered set of distinct symbols.
//
// Alphabet is immutable after construction and safe for concurrent use.
type Alphabet struct {
	symbols []rune
	pos     map[rune]int
}

// New creates an Alphabet from the given symbols, preserving order.
// It fails with *DuplicateSymbolError if a symbol occurs more than once.
func New(symbols string) (*Alphabet, error) {
	runes := []rune(symbols)
	pos := make(map[rune]int, len(runes))
	for i, r := range runes {
		if _, ok := pos[r]; ok {
			return nil, &DuplicateSymbolError{Symbol: r, Position: i}
		}
		pos[r] = i
	}
	return &Alphabet{symbols: runes, pos: pos}, nil
}

// MustNew is like New but panics on error. Intended for package-level
// defaults and tests.
func MustNew(symbols string) *Alphabet {
	a, err := New(symbols)
	if err != nil {
		panic(err)
	}
	return a
}

// Default returns the full demo charset: a-z, A-Z, 0-9 (62 symbols).
func Default() *Alphabet {
	return MustNew("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
}

// Len returns the number of symbols (the mixed-radix base B).
func (a *Alphabet) Len() int { return len(a.symbols) }

// String returns the symbols in order.
func (a *Alphabet) String() string { return string(a.symbols) }

// Contains reports whether r is a member of the alphabet.
func (a *Alphabet) Contains(r rune) bool {
	_, ok := a.pos[r]
	return ok
}

// Encode maps a candidate string to its index: for each symbol from most
// significant to least significant, index = index*B + position(symbol).
// It fails with *InvalidSymbolError if a symbol is not in the alphabet.
func (a *Alphabet) Encode(candidate string) (uint64, error) {
	base := uint64(len(a.symbols))
	var index uint64
	for i, r := range []rune(candidate) {
		p, ok := a.pos[r]
		if !ok {
			return 0, &InvalidSymbolError{Symbol: r, Position: i}
		}
		index = index*base + uint64(p)
	}
	return index, nil
}

// Decode maps an index back to the candidate string of the given length.
// It fails with *IndexOutOfRangeError if index >= B^length.
func (a *Alphabet) Decode(index uint64, length int) (string, error) {
	limit, ok := a.limit(length)
	if ok && index >= limit {
		return "", &IndexOutOfRangeError{Index: index, Limit: limit}
	}
	base := uint64(len(a.symbols))
	out := make([]rune, length)
	rem := index
	for i := length - 1; i >= 0; i-- {
		out[i] = a.symbols[rem%base]
		rem /= base
	}
	return string(out), nil
}

// limit returns B^length and whether it fits in a uint64. When B^length
// overflows, every uint64 index decodes to a candidate of that length, so
// no range check applies.
func (a *Alphabet) limit(length int) (uint64, bool) {
	base := uint64(len(a.symbols))
	limit := uint64(1)
	for i := 0; i < length; i++ {
		hi, lo := bits.Mul64(limit, base)
		if hi != 0 {
			return 0, false
		}
		limit = lo
	}
	return limit, true
}
