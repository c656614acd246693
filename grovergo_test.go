package grovergo_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/grovergo"
	"github.com/hupe1980/grovergo/alphabet"
	"github.com/hupe1980/grovergo/backend"
	"github.com/hupe1980/grovergo/circuit"
	"github.com/hupe1980/grovergo/digest"
	"github.com/hupe1980/grovergo/result"
	"github.com/hupe1980/grovergo/simulator"
)

func TestPlan(t *testing.T) {
	t.Run("two symbol alphabet", func(t *testing.T) {
		cr, err := grovergo.New(alphabet.MustNew("ab"))
		require.NoError(t, err)

		plan, err := cr.Plan(context.Background(), 2)
		require.NoError(t, err)

		assert.Equal(t, uint64(4), plan.Size)
		assert.Equal(t, 2, plan.Qubits)
		assert.Equal(t, 1, plan.Iterations)
		// one Grover iteration on four states is exact
		assert.InDelta(t, 1.0, plan.SuccessProbability, 1e-9)
	})

	t.Run("default alphabet", func(t *testing.T) {
		cr, err := grovergo.New(nil)
		require.NoError(t, err)

		plan, err := cr.Plan(context.Background(), 1)
		require.NoError(t, err)

		assert.Equal(t, 62, plan.Base)
		assert.Equal(t, uint64(62), plan.Size)
		assert.Equal(t, 6, plan.Qubits)
		assert.Equal(t, 6, plan.Iterations)
		assert.Greater(t, plan.SuccessProbability, 0.9)
	})

	t.Run("wide space", func(t *testing.T) {
		// 62^8 candidates need 48 qubits. Planning must stay in the
		// closed form and never materialize an amplitude vector.
		cr, err := grovergo.New(nil)
		require.NoError(t, err)

		plan, err := cr.Plan(context.Background(), 8)
		require.NoError(t, err)

		assert.Equal(t, 48, plan.Qubits)
		assert.Greater(t, plan.SuccessProbability, 0.9)
	})

	t.Run("invalid length", func(t *testing.T) {
		cr, err := grovergo.New(nil)
		require.NoError(t, err)

		_, err = cr.Plan(context.Background(), 0)
		assert.ErrorIs(t, err, grovergo.ErrInvalidLength)
	})

	t.Run("overflowing space", func(t *testing.T) {
		cr, err := grovergo.New(nil)
		require.NoError(t, err)

		_, err = cr.Plan(context.Background(), 64)
		require.Error(t, err)

		var tooLarge *grovergo.ErrSpaceTooLarge
		require.ErrorAs(t, err, &tooLarge)
		assert.Equal(t, 64, tooLarge.Length)
	})
}

func TestClassical(t *testing.T) {
	cr, err := grovergo.New(alphabet.MustNew("ab"))
	require.NoError(t, err)

	target := digest.NewTruncatedMD5().Sum("ba")

	res, err := cr.Classical(context.Background(), target, 2)
	require.NoError(t, err)

	assert.Equal(t, "ba", res.Candidate)
	assert.Equal(t, uint64(2), res.Index)
	assert.Equal(t, uint64(3), res.Attempts)
}

func TestClassicalNotFound(t *testing.T) {
	cr, err := grovergo.New(alphabet.MustNew("ab"))
	require.NoError(t, err)

	_, err = cr.Classical(context.Background(), "ffffffff", 2)
	assert.ErrorIs(t, err, grovergo.ErrNotFound)
}

func TestQuantum(t *testing.T) {
	cr, err := grovergo.New(alphabet.MustNew("ab"))
	require.NoError(t, err)

	local := backend.NewLocal(simulator.New(simulator.WithSeed(42)))
	target := digest.NewTruncatedMD5().Sum("ab")

	res, err := cr.Quantum(context.Background(), local, target, 2)
	require.NoError(t, err)

	assert.Equal(t, uint64(1), res.TargetIndex)
	assert.True(t, res.Outcome.Matched)
	assert.Equal(t, "ab", res.Outcome.Candidate)
	// four states, one iteration: every shot lands on the target
	assert.InDelta(t, 1.0, res.Outcome.Confidence, 1e-9)
	assert.Equal(t, uint64(grovergo.DefaultShots), res.Distribution.TotalShots())
}

func TestQuantumLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := grovergo.NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cr, err := grovergo.New(alphabet.MustNew("ab"), grovergo.WithLogger(logger))
	require.NoError(t, err)

	local := backend.NewLocal(simulator.New(simulator.WithSeed(42)))
	target := digest.NewTruncatedMD5().Sum("ab")

	_, err = cr.Quantum(context.Background(), local, target, 2)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "backend=statevector-simulator")
	assert.Contains(t, out, "shots=1024")
	assert.Contains(t, out, "target recovered")
}

func TestClassicalLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := grovergo.NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cr, err := grovergo.New(alphabet.MustNew("ab"), grovergo.WithLogger(logger))
	require.NoError(t, err)

	target := digest.NewTruncatedMD5().Sum("ba")

	_, err = cr.Classical(context.Background(), target, 2)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "classical search completed")
	assert.Contains(t, out, "length=2")
}

func TestCompare(t *testing.T) {
	metrics := &grovergo.BasicMetricsCollector{}

	cr, err := grovergo.New(alphabet.MustNew("ab"),
		grovergo.WithMetricsCollector(metrics),
		grovergo.WithShots(512),
	)
	require.NoError(t, err)

	local := backend.NewLocal(simulator.New(simulator.WithSeed(7)))

	report, err := cr.Compare(context.Background(), "ba", local)
	require.NoError(t, err)

	assert.True(t, report.Recovered())
	assert.Equal(t, "ba", report.Classical.Result.Candidate)

	require.Len(t, report.Quantum, 1)
	row := report.Quantum[0]
	assert.False(t, row.Failed())
	assert.Equal(t, "ba", row.Result.Outcome.Candidate)
	assert.Equal(t, uint64(512), row.Result.Distribution.TotalShots())

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats.ClassicalCount)
	assert.Equal(t, int64(1), stats.ExecutionCount)
	assert.Equal(t, int64(1), stats.OutcomeMatched)
}

func TestCompareInvalidPassword(t *testing.T) {
	cr, err := grovergo.New(alphabet.MustNew("ab"))
	require.NoError(t, err)

	_, err = cr.Compare(context.Background(), "xy")
	require.Error(t, err)

	var invalid *grovergo.ErrInvalidCandidate
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 'x', invalid.Symbol)
}

func TestCompareBackendFailure(t *testing.T) {
	cr, err := grovergo.New(alphabet.MustNew("ab"))
	require.NoError(t, err)

	report, err := cr.Compare(context.Background(), "ab", failingExecutor{})
	require.NoError(t, err)

	require.Len(t, report.Quantum, 1)
	assert.True(t, report.Quantum[0].Failed())
	assert.False(t, report.Recovered())
	assert.Equal(t, uint64(3), report.Quantum[0].PartialShots())
}

func TestWithTimeout(t *testing.T) {
	cr, err := grovergo.New(alphabet.MustNew("ab"), grovergo.WithTimeout(time.Nanosecond))
	require.NoError(t, err)

	target := digest.NewTruncatedMD5().Sum("bb")

	_, err = cr.Classical(context.Background(), target, 2)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

type failingExecutor struct{}

func (failingExecutor) Execute(context.Context, circuit.Circuit, int) (result.Distribution, error) {
	return nil, backend.NewExecutionError("broken", result.Distribution{"00": 3}, context.DeadlineExceeded)
}

func (failingExecutor) Name() string { return "broken" }
