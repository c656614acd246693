package simulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/grovergo/circuit"
)

func TestHadamardSuperposition(t *testing.T) {
	s := NewStateVector(1)
	s.ApplyH(0)

	probs := s.Probabilities()
	assert.InDelta(t, 0.5, probs[0], 1e-12)
	assert.InDelta(t, 0.5, probs[1], 1e-12)

	// H is self-inverse.
	s.ApplyH(0)
	probs = s.Probabilities()
	assert.InDelta(t, 1.0, probs[0], 1e-12)
	assert.InDelta(t, 0.0, probs[1], 1e-12)
}

func TestPauliX(t *testing.T) {
	s := NewStateVector(2)
	s.ApplyX(0) // qubit 0 is the MSB

	probs := s.Probabilities()
	assert.InDelta(t, 1.0, probs[0b10], 1e-12)
}

func TestPauliY(t *testing.T) {
	s := NewStateVector(1)
	s.ApplyY(0)

	// Y|0> = i|1>
	assert.InDelta(t, 0.0, real(s.Amplitude(1)), 1e-12)
	assert.InDelta(t, 1.0, imag(s.Amplitude(1)), 1e-12)
	assert.InDelta(t, 1.0, s.Probabilities()[1], 1e-12)
}

func TestPauliZPhase(t *testing.T) {
	// X, H, Z, H interference: |0> -> |1> -> (|0>-|1>)/sqrt2 -> (|0>+|1>)/sqrt2 -> |0>
	s := NewStateVector(1)
	s.ApplyX(0)
	s.ApplyH(0)
	s.ApplyZ(0)
	s.ApplyH(0)

	assert.InDelta(t, 1.0, s.Probabilities()[0], 1e-12)
}

func TestCNOTEntanglement(t *testing.T) {
	s := NewStateVector(2)
	s.ApplyH(0)
	s.ApplyMCX([]int{0}, 1)

	probs := s.Probabilities()
	assert.InDelta(t, 0.5, probs[0b00], 1e-12)
	assert.InDelta(t, 0.5, probs[0b11], 1e-12)
	assert.InDelta(t, 0.0, probs[0b01], 1e-12)
	assert.InDelta(t, 0.0, probs[0b10], 1e-12)
}

func TestMCXAllControls(t *testing.T) {
	s := NewStateVector(3)
	s.ApplyX(0)
	s.ApplyX(1)
	s.ApplyMCX([]int{0, 1}, 2)

	assert.InDelta(t, 1.0, s.Probabilities()[0b111], 1e-12)
}

func uniform(n int) *StateVector {
	s := NewStateVector(n)
	for q := 0; q < n; q++ {
		s.ApplyH(q)
	}
	return s
}

func applyGates(t *testing.T, s *StateVector, gates []circuit.Gate) {
	t.Helper()
	for _, g := range gates {
		require.NoError(t, s.Apply(g))
	}
}

func TestOracleFlipsOnlyTarget(t *testing.T) {
	for n := 1; n <= 4; n++ {
		states := uint64(1) << n
		for target := uint64(0); target < states; target++ {
			s := uniform(n)
			before := make([]complex128, states)
			for i := uint64(0); i < states; i++ {
				before[i] = s.Amplitude(i)
			}

			gates, err := circuit.Oracle(n, target)
			require.NoError(t, err)
			applyGates(t, s, gates)

			for i := uint64(0); i < states; i++ {
				want := before[i]
				if i == target {
					want = -want
				}
				require.InDelta(t, real(want), real(s.Amplitude(i)), 1e-10,
					"n=%d target=%d state=%d", n, target, i)
				require.InDelta(t, imag(want), imag(s.Amplitude(i)), 1e-10,
					"n=%d target=%d state=%d", n, target, i)
			}
		}
	}
}

func TestDiffusionFixedPoint(t *testing.T) {
	// The uniform superposition is a fixed point of inversion about the
	// mean. The gate construction carries a global -1 phase, which no
	// measurement can see; fidelity is the phase-blind comparison.
	for n := 1; n <= 4; n++ {
		s := uniform(n)
		gates, err := circuit.Diffusion(n)
		require.NoError(t, err)
		applyGates(t, s, gates)

		require.InDelta(t, 1.0, s.Fidelity(uniform(n)), 1e-10, "n=%d", n)

		want := 1 / float64(uint64(1)<<n)
		for _, p := range s.Probabilities() {
			require.InDelta(t, want, p, 1e-10)
		}
	}
}

func TestDiffusionInvertsAboutMean(t *testing.T) {
	// Arbitrary real amplitude vector over 2 qubits. The circuit applies
	// -(2*mean - a_i): inversion about the mean times the global -1 phase.
	amps := []complex128{0.5, -0.5, 0.5, 0.5}
	s := NewStateVectorFrom(2, amps)

	gates, err := circuit.Diffusion(2)
	require.NoError(t, err)
	applyGates(t, s, gates)

	mean := complex128(0.25)
	for i, a := range amps {
		want := -(2*mean - a)
		require.InDelta(t, real(want), real(s.Amplitude(uint64(i))), 1e-10)
		require.InDelta(t, 0.0, imag(s.Amplitude(uint64(i))), 1e-10)
	}
}

func TestFidelity(t *testing.T) {
	a := uniform(2)
	b := uniform(2)
	assert.InDelta(t, 1.0, a.Fidelity(b), 1e-12)

	c := NewStateVector(2)
	assert.InDelta(t, 0.25, a.Fidelity(c), 1e-12)
}
