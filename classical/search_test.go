package classical

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/grovergo/alphabet"
	"github.com/hupe1980/grovergo/digest"
)

func TestSearchFindsCandidate(t *testing.T) {
	a := alphabet.Default()
	d := digest.NewTruncatedMD5()
	s := New(a, d)

	res, err := s.Search(context.Background(), d.Sum("Go"), 2)
	require.NoError(t, err)

	assert.Equal(t, "Go", res.Candidate)
	wantIdx, err := a.Encode("Go")
	require.NoError(t, err)
	assert.Equal(t, wantIdx, res.Index)
	assert.Greater(t, res.Attempts, uint64(0))
	assert.Greater(t, res.Elapsed.Nanoseconds(), int64(0))
}

func TestSearchAttemptsCountsToMatch(t *testing.T) {
	a := alphabet.MustNew("abcd")
	d := digest.NewTruncatedMD5()
	s := New(a, d)

	// "ba" is index 4; a sequential scan tries indices 0..4.
	res, err := s.Search(context.Background(), d.Sum("ba"), 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), res.Attempts)
	assert.Equal(t, uint64(4), res.Index)
}

func TestSearchNotFound(t *testing.T) {
	a := alphabet.MustNew("ab")
	d := digest.NewTruncatedMD5()
	s := New(a, d)

	_, err := s.Search(context.Background(), "ffffffff", 2)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSearchSharded(t *testing.T) {
	a := alphabet.Default()
	d := digest.NewTruncatedMD5()

	sequential := New(a, d)
	sharded := New(a, d, WithShards(4))

	target := d.Sum("zZ")
	seqRes, err := sequential.Search(context.Background(), target, 2)
	require.NoError(t, err)
	parRes, err := sharded.Search(context.Background(), target, 2)
	require.NoError(t, err)

	// Unique preimage in this space: both scans land on the same index.
	assert.Equal(t, seqRes.Candidate, parRes.Candidate)
	assert.Equal(t, seqRes.Index, parRes.Index)
}

func TestSearchShardedNotFound(t *testing.T) {
	a := alphabet.MustNew("abcd")
	d := digest.NewTruncatedMD5()
	s := New(a, d, WithShards(3))

	_, err := s.Search(context.Background(), "0000000000", 2)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSearchCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := alphabet.Default()
	d := digest.NewTruncatedMD5()
	s := New(a, d)

	_, err := s.Search(ctx, d.Sum("xx"), 2)
	assert.ErrorIs(t, err, context.Canceled)
}
