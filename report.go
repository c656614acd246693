package grovergo

import (
	"errors"

	"github.com/hupe1980/grovergo/backend"
	"github.com/hupe1980/grovergo/classical"
)

// Report is the outcome of a Compare run: one classical row and one
// quantum row per backend.
type Report struct {
	// Password is the plaintext the comparison was seeded with.
	Password string
	// Digest is the truncated hash the searches raced to invert.
	Digest string
	// Plan is the shared search space analysis.
	Plan Plan

	Classical ClassicalRow
	Quantum   []QuantumRow
}

// ClassicalRow is the brute-force leg of a comparison.
type ClassicalRow struct {
	Result classical.Result
	Err    error
}

// QuantumRow is one backend leg of a comparison.
type QuantumRow struct {
	Backend string
	Result  *QuantumResult
	Err     error
}

// Failed reports whether this leg errored out.
func (r QuantumRow) Failed() bool { return r.Err != nil }

// PartialShots returns the number of shots salvaged from a failed
// execution, zero when none.
func (r QuantumRow) PartialShots() uint64 {
	var execErr *backend.ExecutionError
	if errors.As(r.Err, &execErr) && execErr.Partial != nil {
		return execErr.Partial.TotalShots()
	}
	return 0
}

// Recovered reports whether every successful leg of the comparison found
// the password.
func (r *Report) Recovered() bool {
	if r.Classical.Err != nil {
		return false
	}
	for _, q := range r.Quantum {
		if q.Failed() || !q.Result.Outcome.Matched {
			return false
		}
	}
	return true
}
