package grovergo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/grovergo/alphabet"
	"github.com/hupe1980/grovergo/classical"
	"github.com/hupe1980/grovergo/space"
)

var (
	// ErrInvalidLength is returned when the password length is not positive.
	ErrInvalidLength = errors.New("length must be positive")

	// ErrNotFound is returned when no candidate in the search space matches
	// the target digest.
	ErrNotFound = errors.New("not found")
)

// ErrSpaceTooLarge indicates a search space beyond what a state-vector
// register can represent.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrSpaceTooLarge struct {
	Base   int
	Length int
	cause  error
}

func (e *ErrSpaceTooLarge) Error() string {
	return fmt.Sprintf("search space too large: %d^%d states", e.Base, e.Length)
}

func (e *ErrSpaceTooLarge) Unwrap() error { return e.cause }

// ErrInvalidCandidate indicates a password containing symbols outside the
// configured alphabet.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidCandidate struct {
	Symbol rune
	cause  error
}

func (e *ErrInvalidCandidate) Error() string {
	return fmt.Sprintf("invalid candidate: symbol %q not in alphabet", e.Symbol)
}

func (e *ErrInvalidCandidate) Unwrap() error { return e.cause }

func translateError(base, length int, err error) error {
	if err == nil {
		return nil
	}

	// Not found unification.
	if errors.Is(err, classical.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	var of *space.OverflowError
	if errors.As(err, &of) {
		return &ErrSpaceTooLarge{Base: base, Length: length, cause: err}
	}

	var is *alphabet.InvalidSymbolError
	if errors.As(err, &is) {
		return &ErrInvalidCandidate{Symbol: is.Symbol, cause: err}
	}

	return err
}
