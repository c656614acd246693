// Package circuit describes quantum gate circuits as pure data and builds
// the Grover oracle, diffusion and full search circuits.
//
// A Circuit is an ordered gate sequence over a fixed qubit register. Qubit 0
// corresponds to the most significant bit of a basis-state index, so the
// measured bitstring reads left to right as qubit 0..n-1 and parses directly
// as the binary representation of the measured index.
//
// Circuits are values: building one has no side effects, and building twice
// with the same arguments yields identical circuits.
package circuit

import "fmt"

// Op identifies a gate operation.
type Op uint8

const (
	// OpH is the Hadamard gate.
	OpH Op = iota
	// OpX is the Pauli-X (NOT) gate.
	OpX
	// OpY is the Pauli-Y gate.
	OpY
	// OpZ is the Pauli-Z (phase flip) gate.
	OpZ
	// OpCX is the controlled-NOT gate with a single control.
	OpCX
	// OpMCX is the multi-controlled NOT gate (>= 2 controls).
	OpMCX
	// OpMeasure measures the full register into a classical bitstring.
	OpMeasure
)

// String returns the conventional lowercase gate name.
func (o Op) String() string {
	switch o {
	case OpH:
		return "h"
	case OpX:
		return "x"
	case OpY:
		return "y"
	case OpZ:
		return "z"
	case OpCX:
		return "cx"
	case OpMCX:
		return "mcx"
	case OpMeasure:
		return "measure"
	default:
		return fmt.Sprintf("op(%d)", uint8(o))
	}
}

// Gate is one operation in a circuit. Controls is nil for single-qubit
// gates, holds one qubit for OpCX and two or more for OpMCX. Target is
// ignored for OpMeasure.
type Gate struct {
	Op       Op
	Target   int
	Controls []int
}

// Circuit is an immutable gate sequence over Qubits qubits.
type Circuit struct {
	Qubits int
	Gates  []Gate
}

// InvalidCircuitError reports a structurally invalid circuit request.
type InvalidCircuitError struct {
	Reason string
}

func (e *InvalidCircuitError) Error() string {
	return "invalid circuit: " + e.Reason
}

// Depth returns the number of gates, measurement included.
func (c Circuit) Depth() int { return len(c.Gates) }
