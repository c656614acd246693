package alphabet

import "fmt"

// DuplicateSymbolError indicates a symbol occurring more than once in the
// alphabet definition.
type DuplicateSymbolError struct {
	Symbol   rune
	Position int
}

func (e *DuplicateSymbolError) Error() string {
	return fmt.Sprintf("duplicate symbol %q at position %d", e.Symbol, e.Position)
}

// InvalidSymbolError indicates a candidate character outside the alphabet.
type InvalidSymbolError struct {
	Symbol   rune
	Position int
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("invalid symbol %q at position %d: not in alphabet", e.Symbol, e.Position)
}

// IndexOutOfRangeError indicates a decode index at or beyond the size of the
// search space for the requested length.
type IndexOutOfRangeError struct {
	Index uint64
	Limit uint64
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range: search space has %d states", e.Index, e.Limit)
}
