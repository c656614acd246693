package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/grovergo/circuit"
	"github.com/hupe1980/grovergo/result"
)

// gateDemo is one single-concept circuit with the behavior it teaches.
type gateDemo struct {
	name    string
	lesson  string
	circuit circuit.Circuit
}

func gateDemos() []gateDemo {
	return []gateDemo{
		{
			name:   "superposition (H)",
			lesson: "a Hadamard splits |0> evenly, shots land 50/50",
			circuit: circuit.Circuit{
				Qubits: 1,
				Gates: []circuit.Gate{
					{Op: circuit.OpH, Target: 0},
					{Op: circuit.OpMeasure},
				},
			},
		},
		{
			name:   "bit flip (X)",
			lesson: "Pauli-X maps |0> to |1>, every shot reads 1",
			circuit: circuit.Circuit{
				Qubits: 1,
				Gates: []circuit.Gate{
					{Op: circuit.OpX, Target: 0},
					{Op: circuit.OpMeasure},
				},
			},
		},
		{
			name:   "bit and phase flip (Y)",
			lesson: "Pauli-Y flips the bit too, the phase is invisible alone",
			circuit: circuit.Circuit{
				Qubits: 1,
				Gates: []circuit.Gate{
					{Op: circuit.OpY, Target: 0},
					{Op: circuit.OpMeasure},
				},
			},
		},
		{
			name:   "phase interference (Z)",
			lesson: "X H Z H makes the Z phase observable, every shot reads 0",
			circuit: circuit.Circuit{
				Qubits: 1,
				Gates: []circuit.Gate{
					{Op: circuit.OpX, Target: 0},
					{Op: circuit.OpH, Target: 0},
					{Op: circuit.OpZ, Target: 0},
					{Op: circuit.OpH, Target: 0},
					{Op: circuit.OpMeasure},
				},
			},
		},
		{
			name:   "entanglement (CNOT)",
			lesson: "H then CNOT yields a Bell pair, only 00 and 11 appear",
			circuit: circuit.Circuit{
				Qubits: 2,
				Gates: []circuit.Gate{
					{Op: circuit.OpH, Target: 0},
					{Op: circuit.OpCX, Target: 1, Controls: []int{0}},
					{Op: circuit.OpMeasure},
				},
			},
		},
	}
}

func newGatesCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "gates",
		Short: "Run single-gate demo circuits and print their measurement distributions",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine := flags.engine()

			for _, demo := range gateDemos() {
				dist, err := engine.Execute(cmd.Context(), demo.circuit, flags.shots)
				if err != nil {
					return err
				}

				cmd.Println(styleTitle.Render(demo.name))
				cmd.Println(styleMuted.Render(demo.lesson))
				cmd.Println(renderDistribution(dist))
			}

			return nil
		},
	}
}

func renderDistribution(d result.Distribution) string {
	total := d.TotalShots()

	outcomes := make([]string, 0, len(d))
	for bs := range d {
		outcomes = append(outcomes, bs)
	}
	sort.Strings(outcomes)

	var b strings.Builder
	for _, bs := range outcomes {
		frac := float64(d[bs]) / float64(total)
		bar := strings.Repeat("█", int(frac*40))
		fmt.Fprintf(&b, "  %s %6d %s\n", bs, d[bs], styleSuccess.Render(bar))
	}

	return strings.TrimRight(b.String(), "\n")
}
