package circuit

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// MarkedSet is the set of basis-state indices an oracle marks.
//
// The single-target search of the demo is the one-element case; the set form
// exists for experiments with several valid preimages (e.g. truncated
// digests colliding). Backed by a roaring bitmap so sparse marks over wide
// index ranges stay cheap.
type MarkedSet struct {
	rb *roaring64.Bitmap
}

// NewMarkedSet creates an empty marked set.
func NewMarkedSet() *MarkedSet {
	return &MarkedSet{rb: roaring64.New()}
}

// Singleton creates a marked set holding exactly one index.
func Singleton(index uint64) *MarkedSet {
	s := NewMarkedSet()
	s.Add(index)
	return s
}

// Add marks an index.
func (s *MarkedSet) Add(index uint64) { s.rb.Add(index) }

// Contains reports whether index is marked.
func (s *MarkedSet) Contains(index uint64) bool { return s.rb.Contains(index) }

// Cardinality returns the number of marked indices.
func (s *MarkedSet) Cardinality() uint64 { return s.rb.GetCardinality() }

// Iterate calls fn for each marked index in ascending order until fn
// returns false.
func (s *MarkedSet) Iterate(fn func(index uint64) bool) {
	it := s.rb.Iterator()
	for it.HasNext() {
		if !fn(it.Next()) {
			return
		}
	}
}

// OracleSet returns a gate sequence that phase-flips every marked basis
// state. Marked states are distinct, so the per-target phase flips commute
// and concatenate.
func OracleSet(n int, marked *MarkedSet) ([]Gate, error) {
	if marked == nil || marked.Cardinality() == 0 {
		return nil, &InvalidCircuitError{Reason: "empty marked set"}
	}

	var gates []Gate
	var buildErr error
	marked.Iterate(func(index uint64) bool {
		g, err := Oracle(n, index)
		if err != nil {
			buildErr = fmt.Errorf("marked index %d: %w", index, err)
			return false
		}
		gates = append(gates, g...)
		return true
	})
	if buildErr != nil {
		return nil, buildErr
	}
	return gates, nil
}
