// Package backend defines the circuit execution boundary and its
// implementations: the in-process simulator and a remote hardware gateway.
//
// Execution is the one unbounded-latency operation in the system. Every
// backend takes a context and must come back with either a measurement
// distribution or a typed failure; a stalled remote queue surfaces as an
// ExecutionError, never as a hang.
package backend

import (
	"context"
	"fmt"

	"github.com/hupe1980/grovergo/circuit"
	"github.com/hupe1980/grovergo/result"
)

// Executor runs a circuit for a number of shots and returns the observed
// measurement distribution.
type Executor interface {
	// Execute runs the circuit. The returned distribution sums to shots on
	// success. Cancellation and deadlines on ctx abort the wait, not the
	// remote job itself.
	Execute(ctx context.Context, c circuit.Circuit, shots int) (result.Distribution, error)

	// Name identifies the backend in reports.
	Name() string
}

// ExecutionError is a failed or aborted execution. Partial holds whatever
// distribution was obtained before the failure and may be empty. Callers
// get the truth, never a fabricated result.
type ExecutionError struct {
	Backend string
	Partial result.Distribution
	cause   error
}

// NewExecutionError wraps cause as an execution failure of the named
// backend.
func NewExecutionError(backend string, partial result.Distribution, cause error) *ExecutionError {
	return &ExecutionError{Backend: backend, Partial: partial, cause: cause}
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("execution on %q failed: %v", e.Backend, e.cause)
}

func (e *ExecutionError) Unwrap() error { return e.cause }

// Logger is the minimal logging surface backends need.
type Logger interface {
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Infof(string, ...any)  {}
func (noopLogger) Errorf(string, ...any) {}
