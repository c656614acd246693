// Package result interprets measurement distributions back into candidate
// strings.
//
// A Distribution is the empirical outcome of repeated circuit execution:
// bitstring to observation count. Interpretation selects the mode, decodes
// it to an index and then to a candidate via the alphabet codec, and checks
// it against the classically known target.
package result

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/hupe1980/grovergo/alphabet"
	"github.com/hupe1980/grovergo/space"
)

// ErrEmptyDistribution is returned when interpretation is attempted on a
// zero-shot distribution.
var ErrEmptyDistribution = errors.New("empty measurement distribution")

// Distribution maps measured bitstrings to observation counts.
type Distribution map[string]uint64

// TotalShots returns the sum of all observation counts.
func (d Distribution) TotalShots() uint64 {
	var total uint64
	for _, c := range d {
		total += c
	}
	return total
}

// Mode returns the bitstring with the highest count. Ties resolve to the
// lexicographically smallest bitstring, so repeated calls on the same
// distribution always agree.
func (d Distribution) Mode() (string, uint64, error) {
	if len(d) == 0 {
		return "", 0, ErrEmptyDistribution
	}
	var best string
	var bestCount uint64
	first := true
	for bs, count := range d {
		switch {
		case first, count > bestCount:
			best, bestCount = bs, count
			first = false
		case count == bestCount && bs < best:
			best = bs
		}
	}
	if bestCount == 0 {
		return "", 0, ErrEmptyDistribution
	}
	return best, bestCount, nil
}

// Outcome is the interpreted result of one execution.
type Outcome struct {
	// Matched is true iff the decoded index equals the target index.
	Matched bool
	// Candidate is the decoded string; empty when Spurious.
	Candidate string
	// Index is the measured basis-state index.
	Index uint64
	// Bitstring is the winning measurement outcome.
	Bitstring string
	// Confidence is the winning count divided by total shots.
	Confidence float64
	// Spurious is true when the measured index falls outside the search
	// space. Registers wider than log2(B^L) can produce such outcomes;
	// they are non-matches, not errors.
	Spurious bool
}

// Interpret decodes a distribution against the known target index for
// candidates of the given length over a.
func Interpret(d Distribution, target uint64, length int, a *alphabet.Alphabet) (Outcome, error) {
	bs, count, err := d.Mode()
	if err != nil {
		return Outcome{}, err
	}

	index, err := strconv.ParseUint(bs, 2, 64)
	if err != nil {
		return Outcome{}, fmt.Errorf("malformed bitstring %q: %w", bs, err)
	}

	out := Outcome{
		Index:      index,
		Bitstring:  bs,
		Confidence: float64(count) / float64(d.TotalShots()),
	}

	size, err := space.Size(a.Len(), length)
	if err != nil {
		return Outcome{}, err
	}
	if index >= size {
		out.Spurious = true
		return out, nil
	}

	candidate, err := a.Decode(index, length)
	if err != nil {
		return Outcome{}, err
	}
	out.Candidate = candidate
	out.Matched = index == target
	return out, nil
}
