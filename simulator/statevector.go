// Package simulator executes circuits on a local state-vector engine.
//
// The state vector holds one complex128 amplitude per basis state, so the
// register is limited to what 2^n amplitudes fit in memory. The
// amplitude-domain evaluator in this package performs the Grover
// reflection arithmetic directly on exact candidate counts without
// materializing gates, at the same O(size) memory cost.
package simulator

import (
	"math"
	"math/cmplx"

	"github.com/hupe1980/grovergo/circuit"
)

// StateVector is the full quantum state of an n-qubit register.
//
// Basis-state index i assigns qubit q the bit value (i >> (n-1-q)) & 1:
// qubit 0 is the most significant bit, matching the circuit package's
// bitstring convention.
type StateVector struct {
	qubits int
	amps   []complex128
}

// NewStateVector returns the |0...0> state of an n-qubit register.
func NewStateVector(n int) *StateVector {
	amps := make([]complex128, 1<<n)
	amps[0] = 1
	return &StateVector{qubits: n, amps: amps}
}

// NewStateVectorFrom builds a state from explicit amplitudes, copying them.
// len(amps) must be a power of two matching the register size 2^n.
func NewStateVectorFrom(n int, amps []complex128) *StateVector {
	s := &StateVector{qubits: n, amps: make([]complex128, 1<<n)}
	copy(s.amps, amps)
	return s
}

// Qubits returns the register width.
func (s *StateVector) Qubits() int { return s.qubits }

// Amplitude returns the amplitude of basis state i.
func (s *StateVector) Amplitude(i uint64) complex128 { return s.amps[i] }

// Probabilities returns |amp|^2 for every basis state.
func (s *StateVector) Probabilities() []float64 {
	probs := make([]float64, len(s.amps))
	for i, a := range s.amps {
		probs[i] = real(a)*real(a) + imag(a)*imag(a)
	}
	return probs
}

func (s *StateVector) mask(q int) uint64 {
	return uint64(1) << (s.qubits - 1 - q)
}

// ApplyH applies a Hadamard gate to qubit q.
func (s *StateVector) ApplyH(q int) {
	h := complex(1/math.Sqrt2, 0)
	bit := s.mask(q)
	for i := uint64(0); i < uint64(len(s.amps)); i++ {
		if i&bit == 0 {
			j := i | bit
			a, b := s.amps[i], s.amps[j]
			s.amps[i] = h * (a + b)
			s.amps[j] = h * (a - b)
		}
	}
}

// ApplyX applies a Pauli-X gate to qubit q.
func (s *StateVector) ApplyX(q int) {
	bit := s.mask(q)
	for i := uint64(0); i < uint64(len(s.amps)); i++ {
		if i&bit == 0 {
			j := i | bit
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
}

// ApplyY applies a Pauli-Y gate to qubit q.
func (s *StateVector) ApplyY(q int) {
	bit := s.mask(q)
	for i := uint64(0); i < uint64(len(s.amps)); i++ {
		if i&bit == 0 {
			j := i | bit
			s.amps[i], s.amps[j] = -1i*s.amps[j], 1i*s.amps[i]
		}
	}
}

// ApplyZ applies a Pauli-Z gate to qubit q.
func (s *StateVector) ApplyZ(q int) {
	bit := s.mask(q)
	for i := uint64(0); i < uint64(len(s.amps)); i++ {
		if i&bit != 0 {
			s.amps[i] = -s.amps[i]
		}
	}
}

// ApplyMCX applies an X on target conditioned on every control qubit
// being 1. A single control is an ordinary CNOT.
func (s *StateVector) ApplyMCX(controls []int, target int) {
	var cmask uint64
	for _, c := range controls {
		cmask |= s.mask(c)
	}
	tbit := s.mask(target)
	for i := uint64(0); i < uint64(len(s.amps)); i++ {
		if i&cmask == cmask && i&tbit == 0 {
			j := i | tbit
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
}

// Apply applies a single gate. OpMeasure is a no-op at the state level;
// sampling happens in the engine.
func (s *StateVector) Apply(g circuit.Gate) error {
	switch g.Op {
	case circuit.OpH:
		s.ApplyH(g.Target)
	case circuit.OpX:
		s.ApplyX(g.Target)
	case circuit.OpY:
		s.ApplyY(g.Target)
	case circuit.OpZ:
		s.ApplyZ(g.Target)
	case circuit.OpCX, circuit.OpMCX:
		s.ApplyMCX(g.Controls, g.Target)
	case circuit.OpMeasure:
	default:
		return &UnsupportedGateError{Op: g.Op}
	}
	return nil
}

// Fidelity returns |<s|o>|^2, useful in tests for comparing states up to
// global phase.
func (s *StateVector) Fidelity(o *StateVector) float64 {
	var inner complex128
	for i, a := range s.amps {
		inner += cmplx.Conj(a) * o.amps[i]
	}
	m := cmplx.Abs(inner)
	return m * m
}
