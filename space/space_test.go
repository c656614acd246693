package space

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSize(t *testing.T) {
	tests := []struct {
		base, length int
		want         uint64
	}{
		{2, 1, 2},
		{4, 1, 4},
		{62, 2, 3844},
		{62, 0, 1},
		{10, 3, 1000},
	}

	for _, tt := range tests {
		got, err := Size(tt.base, tt.length)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestSizeOverflow(t *testing.T) {
	_, err := Size(62, 20)
	require.Error(t, err)

	var of *OverflowError
	require.ErrorAs(t, err, &of)
	assert.Equal(t, 62, of.Base)
	assert.Equal(t, 20, of.Length)
}

func TestQubitCount(t *testing.T) {
	tests := []struct {
		size uint64
		want int
	}{
		{2, 1},
		{3, 2},
		{4, 2},
		{5, 3},
		{62, 6},
		{64, 6},
		{65, 7},
		{3844, 12},
	}

	for _, tt := range tests {
		got, err := QubitCount(tt.size)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "size=%d", tt.size)
	}
}

func TestQubitCountDegenerate(t *testing.T) {
	for _, size := range []uint64{0, 1} {
		_, err := QubitCount(size)
		assert.ErrorIs(t, err, ErrDegenerateSpace)
	}
}

func TestQubitCountMonotonic(t *testing.T) {
	prev := 0
	for size := uint64(2); size <= 4096; size++ {
		n, err := QubitCount(size)
		require.NoError(t, err)
		require.GreaterOrEqual(t, n, prev)
		require.GreaterOrEqual(t, uint64(1)<<n, size)
		prev = n
	}
}

func TestSuccessProbability(t *testing.T) {
	// Two qubits, one round: Grover finds the marked state with certainty.
	assert.InDelta(t, 1.0, SuccessProbability(2, 1), 1e-12)

	// One qubit, one round: the rotation overshoots back to 50/50.
	assert.InDelta(t, 0.5, SuccessProbability(1, 1), 1e-12)

	// Wide registers never allocate, and the optimal round count still
	// lands close to certainty.
	assert.Greater(t, SuccessProbability(48, Iterations(1<<48)), 0.9)
}

func TestIterations(t *testing.T) {
	assert.Equal(t, 1, Iterations(2))
	assert.Equal(t, 1, Iterations(4))
	assert.Equal(t, 2, Iterations(8))
	assert.Equal(t, 6, Iterations(62))
	assert.Equal(t, 48, Iterations(3844))

	for size := uint64(2); size < 1000; size++ {
		require.GreaterOrEqual(t, Iterations(size), 1)
	}
}
