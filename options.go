package grovergo

import (
	"log/slog"
	"time"

	"github.com/hupe1980/grovergo/digest"
)

// DefaultShots is the number of measurement shots per execution.
const DefaultShots = 1024

type options struct {
	shots            int
	shards           int
	digest           digest.Digest
	timeout          time.Duration
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Cracker behavior.
type Option func(*options)

// WithShots configures the number of measurement shots per execution.
// Values below 1 fall back to DefaultShots.
func WithShots(shots int) Option {
	return func(o *options) {
		if shots >= 1 {
			o.shots = shots
		}
	}
}

// WithClassicalShards configures the number of goroutines used by the
// brute-force scan. If n <= 1, the scan is sequential.
func WithClassicalShards(n int) Option {
	return func(o *options) {
		o.shards = n
	}
}

// WithDigest configures the digest function candidates are hashed with.
//
// If nil is passed, the truncated MD5 default is used.
func WithDigest(d digest.Digest) Option {
	return func(o *options) {
		if d == nil {
			d = digest.NewTruncatedMD5()
		}
		o.digest = d
	}
}

// WithTimeout bounds every Classical, Quantum and Compare call. Zero
// disables the bound; callers can still pass their own context deadline.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &grovergo.BasicMetricsCollector{}
//	cr, _ := grovergo.New(alphabet.Default(), grovergo.WithMetricsCollector(metrics))
//	// ... use cr ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
//
// Example with JSON logging:
//
//	logger := grovergo.NewJSONLogger(slog.LevelInfo)
//	cr, _ := grovergo.New(alphabet.Default(), grovergo.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		shots:            DefaultShots,
		digest:           digest.NewTruncatedMD5(),
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
