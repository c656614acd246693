// Package classical implements the brute-force reference search.
//
// The scan walks the index range [0, B^L), decodes each index to its
// candidate and compares digests. It doubles as the correctness oracle for
// the quantum side: the index it finds is what the Grover oracle marks.
package classical

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/grovergo/alphabet"
	"github.com/hupe1980/grovergo/digest"
	"github.com/hupe1980/grovergo/space"
)

// ErrNotFound is returned when no candidate in the space produces the
// target digest.
var ErrNotFound = errors.New("no candidate matches the target digest")

// Result reports a finished scan. Attempts counts digest evaluations
// across all shards, including the ones in flight when the match landed.
type Result struct {
	Candidate string
	Index     uint64
	Attempts  uint64
	Elapsed   time.Duration
}

type options struct {
	shards int
}

// Option configures a Searcher.
type Option func(*options)

// WithShards splits the index range across the given number of parallel
// scan goroutines. A value <= 1 scans sequentially.
func WithShards(n int) Option {
	return func(o *options) {
		o.shards = n
	}
}

// Searcher scans a candidate space for a digest preimage.
type Searcher struct {
	alphabet *alphabet.Alphabet
	digest   digest.Digest
	shards   int
}

// New creates a Searcher over the given alphabet and digest function.
func New(a *alphabet.Alphabet, d digest.Digest, optFns ...Option) *Searcher {
	o := options{shards: 1}
	for _, fn := range optFns {
		fn(&o)
	}
	if o.shards < 1 {
		o.shards = 1
	}
	return &Searcher{alphabet: a, digest: d, shards: o.shards}
}

// Search scans every candidate of the given length until one matches
// targetDigest. It honors ctx cancellation between candidates.
func (s *Searcher) Search(ctx context.Context, targetDigest string, length int) (Result, error) {
	size, err := space.Size(s.alphabet.Len(), length)
	if err != nil {
		return Result{}, err
	}

	start := time.Now()

	var attempts atomic.Uint64
	if s.shards == 1 {
		idx, err := s.scan(ctx, targetDigest, length, 0, size, &attempts)
		if err != nil {
			return Result{Attempts: attempts.Load(), Elapsed: time.Since(start)}, err
		}
		return s.found(idx, length, attempts.Load(), start)
	}

	// Partition [0, size) evenly across shards; the first hit cancels the
	// rest. With multiple preimages the lowest-index match is not
	// guaranteed, matching the unordered nature of a parallel scan.
	found := make([]uint64, s.shards)
	ok := make([]bool, s.shards)
	g, gctx := errgroup.WithContext(ctx)
	for shard := 0; shard < s.shards; shard++ {
		lo := size / uint64(s.shards) * uint64(shard)
		hi := size / uint64(s.shards) * uint64(shard+1)
		if shard == s.shards-1 {
			hi = size
		}
		g.Go(func() error {
			idx, err := s.scan(gctx, targetDigest, length, lo, hi, &attempts)
			if err != nil {
				if errors.Is(err, ErrNotFound) {
					return nil
				}
				return err
			}
			found[shard] = idx
			ok[shard] = true
			return errFoundSentinel
		})
	}
	err = g.Wait()
	if err != nil && !errors.Is(err, errFoundSentinel) {
		return Result{Attempts: attempts.Load(), Elapsed: time.Since(start)}, err
	}
	for shard := range ok {
		if ok[shard] {
			return s.found(found[shard], length, attempts.Load(), start)
		}
	}
	return Result{Attempts: attempts.Load(), Elapsed: time.Since(start)}, ErrNotFound
}

// errFoundSentinel aborts the errgroup early on the first match.
var errFoundSentinel = errors.New("match found")

func (s *Searcher) scan(ctx context.Context, targetDigest string, length int, lo, hi uint64, attempts *atomic.Uint64) (uint64, error) {
	for i := lo; i < hi; i++ {
		if i%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
		candidate, err := s.alphabet.Decode(i, length)
		if err != nil {
			return 0, err
		}
		attempts.Add(1)
		if s.digest.Sum(candidate) == targetDigest {
			return i, nil
		}
	}
	return 0, ErrNotFound
}

func (s *Searcher) found(idx uint64, length int, attempts uint64, start time.Time) (Result, error) {
	candidate, err := s.alphabet.Decode(idx, length)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Candidate: candidate,
		Index:     idx,
		Attempts:  attempts,
		Elapsed:   time.Since(start),
	}, nil
}
