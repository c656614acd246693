package circuit

import "fmt"

// Oracle returns the gate sequence that flips the sign of exactly the basis
// state |target> in an n-qubit register.
//
// The construction maps the target onto the all-ones state by applying X to
// every qubit whose target bit is 0, phase-flips the all-ones state, then
// undoes the X gates. The net effect is a diagonal phase flip on |target>
// alone.
func Oracle(n int, target uint64) ([]Gate, error) {
	if n < 1 {
		return nil, &InvalidCircuitError{Reason: fmt.Sprintf("register width %d", n)}
	}
	if n < 64 && target >= uint64(1)<<n {
		return nil, &InvalidCircuitError{Reason: fmt.Sprintf("target %d exceeds %d-qubit register", target, n)}
	}

	flips := zeroBitFlips(n, target)
	gates := make([]Gate, 0, 2*len(flips)+3)
	gates = append(gates, flips...)
	gates = append(gates, phaseFlipAllOnes(n)...)
	gates = append(gates, flips...)
	return gates, nil
}

// Diffusion returns the inversion-about-the-mean operator for n qubits.
//
// Structurally it is the oracle fixed at target 0, conjugated by a Hadamard
// on every qubit: H^n maps the uniform superposition onto |0...0>, the X
// layer maps |0...0> onto the all-ones state, and the shared phase flip does
// the reflection.
func Diffusion(n int) ([]Gate, error) {
	if n < 1 {
		return nil, &InvalidCircuitError{Reason: fmt.Sprintf("register width %d", n)}
	}

	gates := make([]Gate, 0, 4*n+3)
	for q := 0; q < n; q++ {
		gates = append(gates, Gate{Op: OpH, Target: q}, Gate{Op: OpX, Target: q})
	}
	gates = append(gates, phaseFlipAllOnes(n)...)
	for q := n - 1; q >= 0; q-- {
		gates = append(gates, Gate{Op: OpX, Target: q}, Gate{Op: OpH, Target: q})
	}
	return gates, nil
}

// Grover assembles the full search circuit: uniform superposition, then
// iterations (oracle, diffusion) pairs, then a full-register measurement.
func Grover(n int, target uint64, iterations int) (Circuit, error) {
	if iterations < 1 {
		return Circuit{}, &InvalidCircuitError{Reason: fmt.Sprintf("iteration count %d", iterations)}
	}
	oracle, err := Oracle(n, target)
	if err != nil {
		return Circuit{}, err
	}
	diffusion, err := Diffusion(n)
	if err != nil {
		return Circuit{}, err
	}

	gates := make([]Gate, 0, n+iterations*(len(oracle)+len(diffusion))+1)
	for q := 0; q < n; q++ {
		gates = append(gates, Gate{Op: OpH, Target: q})
	}
	for i := 0; i < iterations; i++ {
		gates = append(gates, oracle...)
		gates = append(gates, diffusion...)
	}
	gates = append(gates, Gate{Op: OpMeasure})

	return Circuit{Qubits: n, Gates: gates}, nil
}

// zeroBitFlips returns the X layer that maps |target> onto the all-ones
// state. Qubit q holds bit n-1-q of the index, so qubit 0 is the most
// significant bit.
func zeroBitFlips(n int, target uint64) []Gate {
	var gates []Gate
	for q := 0; q < n; q++ {
		if target&(uint64(1)<<(n-1-q)) == 0 {
			gates = append(gates, Gate{Op: OpX, Target: q})
		}
	}
	return gates
}

// phaseFlipAllOnes flips the sign of the all-ones basis state via the
// Hadamard sandwich: H on the last qubit turns a multi-controlled X into a
// multi-controlled Z.
//
// n == 1 has no control qubits at all and degenerates to a plain Z; emitting
// a controlled gate with an empty control list would be ill-defined.
func phaseFlipAllOnes(n int) []Gate {
	if n == 1 {
		return []Gate{{Op: OpZ, Target: 0}}
	}

	controls := make([]int, n-1)
	for q := 0; q < n-1; q++ {
		controls[q] = q
	}
	flip := Gate{Op: OpMCX, Target: n - 1, Controls: controls}
	if n == 2 {
		flip = Gate{Op: OpCX, Target: 1, Controls: []int{0}}
	}

	return []Gate{
		{Op: OpH, Target: n - 1},
		flip,
		{Op: OpH, Target: n - 1},
	}
}
