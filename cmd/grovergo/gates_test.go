package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/grovergo/simulator"
)

func TestGateDemos(t *testing.T) {
	engine := simulator.New(simulator.WithSeed(1))

	demos := gateDemos()
	require.Len(t, demos, 5)

	results := make(map[string]map[string]uint64)
	for _, demo := range demos {
		dist, err := engine.Execute(context.Background(), demo.circuit, 1000)
		require.NoError(t, err)
		assert.Equal(t, uint64(1000), dist.TotalShots())
		results[demo.name] = dist
	}

	// X is deterministic
	assert.Equal(t, uint64(1000), results["bit flip (X)"]["1"])

	// Y flips the bit, its phase never shows alone
	assert.Equal(t, uint64(1000), results["bit and phase flip (Y)"]["1"])

	// the interference sandwich makes the Z phase observable
	assert.Equal(t, uint64(1000), results["phase interference (Z)"]["0"])

	// Bell pair: only correlated outcomes
	bell := results["entanglement (CNOT)"]
	assert.Equal(t, uint64(1000), bell["00"]+bell["11"])
	assert.Zero(t, bell["01"])
	assert.Zero(t, bell["10"])

	// superposition stays within shot noise of a fair coin
	h := results["superposition (H)"]
	assert.InDelta(t, 500, float64(h["0"]), 100)
	assert.InDelta(t, 500, float64(h["1"]), 100)
}
