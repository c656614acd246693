package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/hupe1980/grovergo/artifact"
	"github.com/hupe1980/grovergo/circuit"
	"github.com/hupe1980/grovergo/result"
)

// Practical limits for current hardware; beyond these the transpiled
// circuit drowns in noise and results are mostly decoherence.
const (
	hardwareQubitWarn = 20
	hardwareGateWarn  = 100_000
)

// RemoteOption configures a Remote backend.
type RemoteOption func(*remoteOptions)

type remoteOptions struct {
	pollRate   rate.Limit
	compressor artifact.Compressor
	logger     Logger
}

// WithPollRate caps how often the job table is polled. Default: once per
// second.
func WithPollRate(r rate.Limit) RemoteOption {
	return func(o *remoteOptions) {
		o.pollRate = r
	}
}

// WithCompressor frames job payloads with the given compressor. Default:
// artifact.Default. Both sides of the gateway must agree.
func WithCompressor(c artifact.Compressor) RemoteOption {
	return func(o *remoteOptions) {
		o.compressor = c
	}
}

// WithLogger sets the backend logger.
func WithLogger(l Logger) RemoteOption {
	return func(o *remoteOptions) {
		o.logger = l
	}
}

// Remote executes circuits through a hardware gateway: the circuit source
// goes into the artifact store, the job is registered in the job table,
// and the gateway writes measurement counts back next to the circuit.
//
// Layout per job:
//
//	jobs/<id>/circuit.qasm
//	jobs/<id>/counts.json
//
// Remote never fabricates results: a failed or timed-out job comes back as
// an *ExecutionError carrying whatever counts the gateway managed to
// deposit.
type Remote struct {
	name    string
	store   artifact.Store
	jobs    JobTable
	limiter *rate.Limiter
	logger  Logger
}

// NewRemote creates a gateway-backed executor. name is the hardware
// backend identifier used in reports and logs.
func NewRemote(name string, store artifact.Store, jobs JobTable, optFns ...RemoteOption) *Remote {
	o := remoteOptions{
		pollRate: rate.Limit(1),
		logger:   noopLogger{},
	}
	for _, fn := range optFns {
		fn(&o)
	}
	if o.compressor != nil {
		store = artifact.NewCompressedStore(store, o.compressor)
	}
	return &Remote{
		name:    name,
		store:   store,
		jobs:    jobs,
		limiter: rate.NewLimiter(o.pollRate, 1),
		logger:  o.logger,
	}
}

// Name implements Executor.
func (r *Remote) Name() string { return r.name }

// Execute implements Executor. It submits the job and polls until the
// gateway completes, fails, or ctx expires.
func (r *Remote) Execute(ctx context.Context, c circuit.Circuit, shots int) (result.Distribution, error) {
	if c.Qubits > hardwareQubitWarn || c.Depth() > hardwareGateWarn {
		r.logger.Infof("circuit may be too large for reliable hardware results: qubits=%d gates=%d", c.Qubits, c.Depth())
	}

	job := Job{
		ID:          uuid.NewString(),
		Status:      StatusPending,
		Shots:       shots,
		Qubits:      c.Qubits,
		SubmittedAt: time.Now(),
	}

	if err := r.store.Put(ctx, r.circuitKey(job.ID), []byte(c.QASM())); err != nil {
		return nil, NewExecutionError(r.name, nil, fmt.Errorf("submit circuit: %w", err))
	}
	if err := r.jobs.Create(ctx, job); err != nil {
		return nil, NewExecutionError(r.name, nil, fmt.Errorf("register job: %w", err))
	}
	r.logger.Infof("job %s submitted to %s (qubits=%d shots=%d)", job.ID, r.name, c.Qubits, shots)

	for {
		if err := r.limiter.Wait(ctx); err != nil {
			// The limiter reports deadline overruns with its own error type,
			// so surface the context error when one is set and callers can
			// keep matching on context.DeadlineExceeded and context.Canceled.
			if ctxErr := ctx.Err(); ctxErr != nil {
				err = ctxErr
			}

			return nil, NewExecutionError(r.name, r.partialCounts(job.ID), err)
		}

		current, err := r.jobs.Get(ctx, job.ID)
		if err != nil {
			return nil, NewExecutionError(r.name, r.partialCounts(job.ID), err)
		}

		switch current.Status {
		case StatusCompleted:
			dist, err := r.counts(ctx, job.ID)
			if err != nil {
				return nil, NewExecutionError(r.name, nil, err)
			}
			return dist, nil
		case StatusFailed:
			msg := current.Error
			if msg == "" {
				msg = "gateway reported failure without detail"
			}

			r.logger.Errorf("job %s failed on %s: %s", job.ID, r.name, msg)

			return nil, NewExecutionError(r.name, r.partialCounts(job.ID), errors.New(msg))
		case StatusPending, StatusRunning:
			// keep polling
		default:
			return nil, NewExecutionError(r.name, nil, fmt.Errorf("unknown job status %q", current.Status))
		}
	}
}

func (r *Remote) circuitKey(id string) string {
	return path.Join("jobs", id, "circuit.qasm")
}

func (r *Remote) countsKey(id string) string {
	return path.Join("jobs", id, "counts.json")
}

func (r *Remote) counts(ctx context.Context, id string) (result.Distribution, error) {
	data, err := r.store.Get(ctx, r.countsKey(id))
	if err != nil {
		return nil, fmt.Errorf("fetch counts: %w", err)
	}
	var dist result.Distribution
	if err := json.Unmarshal(data, &dist); err != nil {
		return nil, fmt.Errorf("decode counts: %w", err)
	}
	return dist, nil
}

// partialCounts best-effort fetches whatever the gateway deposited before
// the failure. A fresh context decouples the fetch from the already-dead
// execution context.
func (r *Remote) partialCounts(id string) result.Distribution {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	dist, err := r.counts(ctx, id)
	if err != nil {
		return nil
	}
	return dist
}
