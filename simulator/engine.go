package simulator

import (
	"context"
	"fmt"
	"math/rand"
	"sort"

	"github.com/hupe1980/grovergo/circuit"
	"github.com/hupe1980/grovergo/result"
)

// UnsupportedGateError indicates a gate the engine cannot apply.
type UnsupportedGateError struct {
	Op circuit.Op
}

func (e *UnsupportedGateError) Error() string {
	return fmt.Sprintf("unsupported gate %q", e.Op)
}

type options struct {
	seed   int64
	seeded bool
}

// Option configures the engine.
type Option func(*options)

// WithSeed fixes the sampling RNG seed. Without it each engine draws a
// random seed, matching real shot noise.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// Engine runs circuits by exact state-vector evolution followed by
// multinomial shot sampling.
//
// Engines are cheap; build one per execution context. The RNG is not
// synchronized, so a single Engine must not be shared across goroutines.
type Engine struct {
	rng *rand.Rand
}

// New creates a local simulation engine.
func New(optFns ...Option) *Engine {
	var o options
	for _, fn := range optFns {
		fn(&o)
	}
	if !o.seeded {
		o.seed = rand.Int63()
	}
	return &Engine{rng: rand.New(rand.NewSource(o.seed))}
}

// Simulate applies every gate of c to a fresh |0...0> register and returns
// the final state. Measurement gates are ignored at this level.
func (e *Engine) Simulate(c circuit.Circuit) (*StateVector, error) {
	if c.Qubits < 1 {
		return nil, &circuit.InvalidCircuitError{Reason: fmt.Sprintf("register width %d", c.Qubits)}
	}
	state := NewStateVector(c.Qubits)
	for _, g := range c.Gates {
		if err := state.Apply(g); err != nil {
			return nil, err
		}
	}
	return state, nil
}

// Execute implements the execution-engine contract: run the circuit and
// sample shots measurement outcomes from the exact final distribution.
// The context is checked once up front; local simulation is fast enough
// that mid-flight cancellation buys nothing.
func (e *Engine) Execute(ctx context.Context, c circuit.Circuit, shots int) (result.Distribution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if shots < 1 {
		return nil, fmt.Errorf("shot count %d: must be positive", shots)
	}

	state, err := e.Simulate(c)
	if err != nil {
		return nil, err
	}
	probs := state.Probabilities()

	// Cumulative distribution for inverse-transform sampling.
	cdf := make([]float64, len(probs))
	sum := 0.0
	for i, p := range probs {
		sum += p
		cdf[i] = sum
	}

	dist := make(result.Distribution)
	for s := 0; s < shots; s++ {
		r := e.rng.Float64() * sum
		i := sort.SearchFloat64s(cdf, r)
		if i >= len(cdf) {
			i = len(cdf) - 1
		}
		dist[bitstring(uint64(i), c.Qubits)]++
	}
	return dist, nil
}

// Name identifies the backend in reports.
func (e *Engine) Name() string { return "statevector-simulator" }

func bitstring(i uint64, n int) string {
	return fmt.Sprintf("%0*b", n, i)
}
