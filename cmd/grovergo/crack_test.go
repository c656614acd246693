package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/grovergo"
	"github.com/hupe1980/grovergo/alphabet"
	"github.com/hupe1980/grovergo/backend"
	"github.com/hupe1980/grovergo/simulator"
)

func TestRenderReport(t *testing.T) {
	cr, err := grovergo.New(alphabet.MustNew("ab"))
	require.NoError(t, err)

	local := backend.NewLocal(simulator.New(simulator.WithSeed(3)))

	report, err := cr.Compare(context.Background(), "ba", local)
	require.NoError(t, err)

	out := renderReport(report)
	assert.Contains(t, out, report.Digest)
	assert.Contains(t, out, "classical")
	assert.Contains(t, out, "statevector-simulator")
	assert.Contains(t, out, "ba")
}

func TestRenderPlan(t *testing.T) {
	cr, err := grovergo.New(nil)
	require.NoError(t, err)

	plan, err := cr.Plan(context.Background(), 2)
	require.NoError(t, err)

	out := renderPlan(plan)
	assert.Contains(t, out, "3844 candidates")
	assert.Contains(t, out, "12 qubits")
}
