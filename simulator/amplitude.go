package simulator

import (
	"fmt"
	"math"

	"github.com/hupe1980/grovergo/circuit"
	"github.com/hupe1980/grovergo/space"
)

// Estimate is the outcome of an amplitude-domain Grover evaluation.
type Estimate struct {
	Index       uint64
	Probability float64
	Iterations  int
}

// Amplitudes runs the Grover reflections directly on a real amplitude
// vector of the given size: start uniform, then per iteration flip the sign
// of every marked amplitude and invert all amplitudes about their mean.
//
// This skips gates and registers, so it works on exact candidate counts
// rather than padded 2^n registers, and it serves as an independent
// cross-check of the gate-level circuit. It still allocates one float64
// per state; for registers too wide to materialize at all, use the closed
// form in space.SuccessProbability.
func Amplitudes(size uint64, marked *circuit.MarkedSet, iterations int) ([]float64, error) {
	if size < 2 {
		return nil, space.ErrDegenerateSpace
	}
	if marked == nil || marked.Cardinality() == 0 {
		return nil, fmt.Errorf("no marked indices")
	}
	if iterations < 1 {
		return nil, fmt.Errorf("iteration count %d: must be positive", iterations)
	}

	n := int(size)
	amps := make([]float64, n)
	initial := 1 / math.Sqrt(float64(n))
	for i := range amps {
		amps[i] = initial
	}

	for iter := 0; iter < iterations; iter++ {
		marked.Iterate(func(index uint64) bool {
			if index < size {
				amps[index] = -amps[index]
			}
			return true
		})

		mean := 0.0
		for _, a := range amps {
			mean += a
		}
		mean /= float64(n)
		for i := range amps {
			amps[i] = 2*mean - amps[i]
		}
	}

	probs := make([]float64, n)
	for i, a := range amps {
		probs[i] = a * a
	}
	return probs, nil
}

// Evaluate returns the most probable index after iterations Grover rounds
// over a space of the given size.
func Evaluate(size uint64, marked *circuit.MarkedSet, iterations int) (Estimate, error) {
	probs, err := Amplitudes(size, marked, iterations)
	if err != nil {
		return Estimate{}, err
	}

	best := 0
	for i, p := range probs {
		if p > probs[best] {
			best = i
		}
	}
	return Estimate{
		Index:       uint64(best),
		Probability: probs[best],
		Iterations:  iterations,
	}, nil
}
