package grovergo

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with grovergo-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithBackend adds a backend field to the logger.
func (l *Logger) WithBackend(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("backend", name),
	}
}

// WithLength adds a password length field to the logger.
func (l *Logger) WithLength(length int) *Logger {
	return &Logger{
		Logger: l.Logger.With("length", length),
	}
}

// WithShots adds a shots field to the logger.
func (l *Logger) WithShots(shots int) *Logger {
	return &Logger{
		Logger: l.Logger.With("shots", shots),
	}
}

// Infof implements the printf-style surface the backend package logs
// through.
func (l *Logger) Infof(format string, args ...any) {
	l.Info(fmt.Sprintf(format, args...))
}

// Errorf implements the printf-style surface the backend package logs
// through.
func (l *Logger) Errorf(format string, args ...any) {
	l.Error(fmt.Sprintf(format, args...))
}

// LogPlan logs a search space analysis.
func (l *Logger) LogPlan(ctx context.Context, p Plan) {
	l.InfoContext(ctx, "search space analyzed",
		"size", p.Size,
		"qubits", p.Qubits,
		"iterations", p.Iterations,
		"success_probability", p.SuccessProbability,
	)
}

// LogClassicalSearch logs a classical brute-force run.
func (l *Logger) LogClassicalSearch(ctx context.Context, attempts uint64, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "classical search failed",
			"attempts", attempts,
			"elapsed", elapsed,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "classical search completed",
			"attempts", attempts,
			"elapsed", elapsed,
		)
	}
}

// LogExecution logs a circuit execution. Backend and shot count are
// expected as attached fields, see WithBackend and WithShots.
func (l *Logger) LogExecution(ctx context.Context, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "execution failed",
			"elapsed", elapsed,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "execution completed",
			"elapsed", elapsed,
		)
	}
}

// LogOutcome logs an interpreted measurement outcome.
func (l *Logger) LogOutcome(ctx context.Context, matched, spurious bool, confidence float64) {
	if matched {
		l.InfoContext(ctx, "target recovered",
			"confidence", confidence,
		)
	} else {
		l.WarnContext(ctx, "target not recovered",
			"spurious", spurious,
			"confidence", confidence,
		)
	}
}
