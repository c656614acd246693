// Package space models the Grover search space: its size, the qubit register
// width needed to address it, and the optimal number of Grover iterations.
//
// All functions are pure. Size and QubitCount use exact integer arithmetic;
// only the iteration count goes through a floating-point square root, per
// the standard pi/4*sqrt(N) analysis.
package space

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

// ErrDegenerateSpace is returned when the search space has at most one
// state; there is nothing to search and no qubit register to size.
var ErrDegenerateSpace = errors.New("degenerate search space: need at least 2 states")

// OverflowError indicates that base^length does not fit in a uint64.
type OverflowError struct {
	Base   int
	Length int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("search space %d^%d overflows uint64", e.Base, e.Length)
}

// Size returns base^length, the number of candidate strings.
func Size(base, length int) (uint64, error) {
	if base < 1 || length < 0 {
		return 0, fmt.Errorf("invalid search space %d^%d", base, length)
	}
	size := uint64(1)
	for i := 0; i < length; i++ {
		hi, lo := bits.Mul64(size, uint64(base))
		if hi != 0 {
			return 0, &OverflowError{Base: base, Length: length}
		}
		size = lo
	}
	return size, nil
}

// QubitCount returns ceil(log2(size)), the minimum register width able to
// address every index below size. It fails with ErrDegenerateSpace for
// size <= 1.
//
// When size is not a power of two the register addresses more states than
// the space holds; indices at or beyond size are never marked but can show
// up as spurious measurement outcomes.
func QubitCount(size uint64) (int, error) {
	if size <= 1 {
		return 0, ErrDegenerateSpace
	}
	return bits.Len64(size - 1), nil
}

// Iterations returns max(1, floor(pi/4 * sqrt(size))), the iteration count
// that maximizes the marked state's amplitude for a single marked state.
func Iterations(size uint64) int {
	n := int(math.Pi / 4 * math.Sqrt(float64(size)))
	if n < 1 {
		return 1
	}
	return n
}

// SuccessProbability returns the chance that measuring a register of
// 2^qubits states after iterations Grover rounds yields the single marked
// state: sin^2((2k+1) * asin(2^(-qubits/2))). Closed form, so it is safe
// for registers far beyond anything a simulator could materialize.
func SuccessProbability(qubits, iterations int) float64 {
	theta := math.Asin(math.Sqrt(math.Ldexp(1, -qubits)))
	a := math.Sin(float64(2*iterations+1) * theta)
	return a * a
}
