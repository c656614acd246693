package grovergo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordClassicalSearch is called after each brute-force run.
	// attempts is the number of digests computed, err is nil if a match
	// was found.
	RecordClassicalSearch(attempts uint64, duration time.Duration, err error)

	// RecordCircuitBuild is called after each circuit construction.
	RecordCircuitBuild(qubits, gates int, err error)

	// RecordExecution is called after each backend execution.
	RecordExecution(backend string, shots int, duration time.Duration, err error)

	// RecordOutcome is called after each interpreted result.
	RecordOutcome(matched bool)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordClassicalSearch(uint64, time.Duration, error) {}
func (NoopMetricsCollector) RecordCircuitBuild(int, int, error)                 {}
func (NoopMetricsCollector) RecordExecution(string, int, time.Duration, error)  {}
func (NoopMetricsCollector) RecordOutcome(bool)                                 {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ClassicalCount      atomic.Int64
	ClassicalErrors     atomic.Int64
	ClassicalAttempts   atomic.Uint64
	ClassicalTotalNanos atomic.Int64
	CircuitCount        atomic.Int64
	CircuitErrors       atomic.Int64
	CircuitGates        atomic.Int64
	ExecutionCount      atomic.Int64
	ExecutionErrors     atomic.Int64
	ExecutionShots      atomic.Int64
	ExecutionTotalNanos atomic.Int64
	OutcomeCount        atomic.Int64
	OutcomeMatched      atomic.Int64
}

// RecordClassicalSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordClassicalSearch(attempts uint64, duration time.Duration, err error) {
	b.ClassicalCount.Add(1)
	b.ClassicalAttempts.Add(attempts)
	b.ClassicalTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ClassicalErrors.Add(1)
	}
}

// RecordCircuitBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCircuitBuild(qubits, gates int, err error) {
	b.CircuitCount.Add(1)
	b.CircuitGates.Add(int64(gates))
	if err != nil {
		b.CircuitErrors.Add(1)
	}
}

// RecordExecution implements MetricsCollector.
func (b *BasicMetricsCollector) RecordExecution(backend string, shots int, duration time.Duration, err error) {
	b.ExecutionCount.Add(1)
	b.ExecutionShots.Add(int64(shots))
	b.ExecutionTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ExecutionErrors.Add(1)
	}
}

// RecordOutcome implements MetricsCollector.
func (b *BasicMetricsCollector) RecordOutcome(matched bool) {
	b.OutcomeCount.Add(1)
	if matched {
		b.OutcomeMatched.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ClassicalCount:    b.ClassicalCount.Load(),
		ClassicalErrors:   b.ClassicalErrors.Load(),
		ClassicalAttempts: b.ClassicalAttempts.Load(),
		ClassicalAvgNanos: b.getAvgClassicalNanos(),
		CircuitCount:      b.CircuitCount.Load(),
		CircuitErrors:     b.CircuitErrors.Load(),
		CircuitGates:      b.CircuitGates.Load(),
		ExecutionCount:    b.ExecutionCount.Load(),
		ExecutionErrors:   b.ExecutionErrors.Load(),
		ExecutionShots:    b.ExecutionShots.Load(),
		ExecutionAvgNanos: b.getAvgExecutionNanos(),
		OutcomeCount:      b.OutcomeCount.Load(),
		OutcomeMatched:    b.OutcomeMatched.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgClassicalNanos() int64 {
	count := b.ClassicalCount.Load()
	if count == 0 {
		return 0
	}
	return b.ClassicalTotalNanos.Load() / count
}

func (b *BasicMetricsCollector) getAvgExecutionNanos() int64 {
	count := b.ExecutionCount.Load()
	if count == 0 {
		return 0
	}
	return b.ExecutionTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ClassicalCount    int64
	ClassicalErrors   int64
	ClassicalAttempts uint64
	ClassicalAvgNanos int64
	CircuitCount      int64
	CircuitErrors     int64
	CircuitGates      int64
	ExecutionCount    int64
	ExecutionErrors   int64
	ExecutionShots    int64
	ExecutionAvgNanos int64
	OutcomeCount      int64
	OutcomeMatched    int64
}
