package circuit

import (
	"fmt"
	"strings"
)

// QASM renders the circuit as OpenQASM 2.0 source. Multi-controlled NOT
// gates use the mcx extension understood by Qiskit-compatible toolchains;
// everything else is plain qelib1.
//
// This is the wire format the remote backend submits: the executing side
// owns transpilation to its native gate set.
func (c Circuit) QASM() string {
	var b strings.Builder
	b.WriteString("OPENQASM 2.0;\n")
	b.WriteString("include \"qelib1.inc\";\n\n")
	fmt.Fprintf(&b, "qreg q[%d];\n", c.Qubits)
	fmt.Fprintf(&b, "creg c[%d];\n\n", c.Qubits)

	for _, g := range c.Gates {
		switch g.Op {
		case OpH, OpX, OpY, OpZ:
			fmt.Fprintf(&b, "%s q[%d];\n", g.Op, g.Target)
		case OpCX:
			fmt.Fprintf(&b, "cx q[%d],q[%d];\n", g.Controls[0], g.Target)
		case OpMCX:
			args := make([]string, 0, len(g.Controls)+1)
			for _, ctrl := range g.Controls {
				args = append(args, fmt.Sprintf("q[%d]", ctrl))
			}
			args = append(args, fmt.Sprintf("q[%d]", g.Target))
			fmt.Fprintf(&b, "mcx %s;\n", strings.Join(args, ","))
		case OpMeasure:
			for q := 0; q < c.Qubits; q++ {
				fmt.Fprintf(&b, "measure q[%d] -> c[%d];\n", q, q)
			}
		}
	}

	return b.String()
}
