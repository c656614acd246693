package grovergo

import (
	"context"
	"time"

	"github.com/hupe1980/grovergo/alphabet"
	"github.com/hupe1980/grovergo/backend"
	"github.com/hupe1980/grovergo/circuit"
	"github.com/hupe1980/grovergo/classical"
	"github.com/hupe1980/grovergo/result"
	"github.com/hupe1980/grovergo/space"
)

// Cracker recovers short passwords from truncated digests, classically by
// brute force and quantum-mechanically via Grover's search.
type Cracker struct {
	alphabet *alphabet.Alphabet
	searcher *classical.Searcher
	opts     options
}

// New creates a Cracker over the given alphabet. If a is nil, the default
// alphanumeric alphabet is used.
func New(a *alphabet.Alphabet, optFns ...Option) (*Cracker, error) {
	if a == nil {
		a = alphabet.Default()
	}

	o := applyOptions(optFns)

	return &Cracker{
		alphabet: a,
		searcher: classical.New(a, o.digest, classical.WithShards(o.shards)),
		opts:     o,
	}, nil
}

// Alphabet returns the configured alphabet.
func (c *Cracker) Alphabet() *alphabet.Alphabet { return c.alphabet }

// Plan is the pre-run analysis of a search space.
type Plan struct {
	// Base is the alphabet size.
	Base int
	// Length is the password length.
	Length int
	// Size is Base^Length, the number of candidates.
	Size uint64
	// Qubits is the register width needed to address every candidate.
	Qubits int
	// Iterations is the Grover iteration count for this space.
	Iterations int
	// SuccessProbability is the theoretical chance that measuring the
	// register after Iterations rounds yields the target.
	SuccessProbability float64
}

// Plan analyzes the search space for passwords of the given length without
// running anything.
func (c *Cracker) Plan(ctx context.Context, length int) (Plan, error) {
	if length < 1 {
		return Plan{}, ErrInvalidLength
	}

	size, err := space.Size(c.alphabet.Len(), length)
	if err != nil {
		return Plan{}, translateError(c.alphabet.Len(), length, err)
	}

	qubits, err := space.QubitCount(size)
	if err != nil {
		return Plan{}, translateError(c.alphabet.Len(), length, err)
	}

	iterations := space.Iterations(size)

	p := Plan{
		Base:       c.alphabet.Len(),
		Length:     length,
		Size:       size,
		Qubits:     qubits,
		Iterations: iterations,
		// The circuit acts on the full 2^n register, so the achievable
		// probability is evaluated there, not on the bare candidate count.
		SuccessProbability: space.SuccessProbability(qubits, iterations),
	}

	c.opts.logger.LogPlan(ctx, p)

	return p, nil
}

// Classical brute-forces the target digest over all candidates of the
// given length.
func (c *Cracker) Classical(ctx context.Context, targetDigest string, length int) (classical.Result, error) {
	if length < 1 {
		return classical.Result{}, ErrInvalidLength
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	start := time.Now()

	res, err := c.searcher.Search(ctx, targetDigest, length)

	c.opts.logger.WithLength(length).LogClassicalSearch(ctx, res.Attempts, res.Elapsed, err)
	c.opts.metricsCollector.RecordClassicalSearch(res.Attempts, time.Since(start), err)

	if err != nil {
		return classical.Result{}, translateError(c.alphabet.Len(), length, err)
	}

	return res, nil
}

// QuantumResult is the outcome of one Grover run against a backend.
type QuantumResult struct {
	// Backend names the executor that ran the circuit.
	Backend string
	// Plan is the space analysis the circuit was built from.
	Plan Plan
	// TargetIndex is the index the oracle marks.
	TargetIndex uint64
	// Distribution holds the raw measurement counts.
	Distribution result.Distribution
	// Outcome is the interpreted winner.
	Outcome result.Outcome
	// Elapsed is the wall time of the execution alone.
	Elapsed time.Duration
}

// Quantum runs Grover's search for the target digest on the given backend.
//
// The oracle needs the index it is supposed to mark, so the digest is
// first resolved to an index by classical scan. The quantum run then
// demonstrates recovery of that index from an unstructured space.
func (c *Cracker) Quantum(ctx context.Context, exec backend.Executor, targetDigest string, length int) (*QuantumResult, error) {
	plan, err := c.Plan(ctx, length)
	if err != nil {
		return nil, err
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	target, err := c.searcher.Search(ctx, targetDigest, length)
	if err != nil {
		return nil, translateError(c.alphabet.Len(), length, err)
	}

	circ, err := circuit.Grover(plan.Qubits, target.Index, plan.Iterations)
	c.opts.metricsCollector.RecordCircuitBuild(plan.Qubits, circ.Depth(), err)
	if err != nil {
		return nil, err
	}

	log := c.opts.logger.WithBackend(exec.Name()).WithShots(c.opts.shots)

	start := time.Now()
	dist, err := exec.Execute(ctx, circ, c.opts.shots)
	elapsed := time.Since(start)

	log.LogExecution(ctx, elapsed, err)
	c.opts.metricsCollector.RecordExecution(exec.Name(), c.opts.shots, elapsed, err)

	if err != nil {
		return nil, err
	}

	outcome, err := result.Interpret(dist, target.Index, length, c.alphabet)
	if err != nil {
		return nil, err
	}

	log.LogOutcome(ctx, outcome.Matched, outcome.Spurious, outcome.Confidence)
	c.opts.metricsCollector.RecordOutcome(outcome.Matched)

	return &QuantumResult{
		Backend:      exec.Name(),
		Plan:         plan,
		TargetIndex:  target.Index,
		Distribution: dist,
		Outcome:      outcome,
		Elapsed:      elapsed,
	}, nil
}

// Compare hashes the given password, then recovers it classically and on
// every given backend. Backend failures do not abort the comparison; they
// show up as failed report rows.
func (c *Cracker) Compare(ctx context.Context, password string, executors ...backend.Executor) (*Report, error) {
	if _, err := c.alphabet.Encode(password); err != nil {
		return nil, translateError(c.alphabet.Len(), len([]rune(password)), err)
	}

	length := len([]rune(password))

	targetDigest := c.opts.digest.Sum(password)

	plan, err := c.Plan(ctx, length)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Password: password,
		Digest:   targetDigest,
		Plan:     plan,
	}

	classicalRes, err := c.Classical(ctx, targetDigest, length)
	if err != nil {
		report.Classical = ClassicalRow{Err: err}
	} else {
		report.Classical = ClassicalRow{Result: classicalRes}
	}

	for _, exec := range executors {
		res, err := c.Quantum(ctx, exec, targetDigest, length)
		if err != nil {
			report.Quantum = append(report.Quantum, QuantumRow{Backend: exec.Name(), Err: err})
			continue
		}
		report.Quantum = append(report.Quantum, QuantumRow{Backend: exec.Name(), Result: res})
	}

	return report, nil
}

func (c *Cracker) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.opts.timeout > 0 {
		return context.WithTimeout(ctx, c.opts.timeout)
	}
	return ctx, func() {}
}
