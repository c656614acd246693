// Package digest provides the hash collaborator for the cracking demo.
//
// The comparison only needs a digest that is deterministic and stable
// across runs; the default truncated MD5 mirrors the usual "toy target"
// setup for brute-force demos. The search space, not the hash, is the
// point of the exercise.
package digest

import (
	"crypto/md5"
	"encoding/hex"
)

// Digest computes a fixed-length digest string for a candidate.
// Implementations must be deterministic and safe for concurrent use.
type Digest interface {
	Sum(candidate string) string
}

// TruncatedMD5 is the demo digest: the first Chars hex characters of the
// MD5 of the candidate.
type TruncatedMD5 struct {
	Chars int
}

// NewTruncatedMD5 returns the default 8-character truncated MD5.
func NewTruncatedMD5() TruncatedMD5 {
	return TruncatedMD5{Chars: 8}
}

// Sum implements Digest.
func (d TruncatedMD5) Sum(candidate string) string {
	sum := md5.Sum([]byte(candidate))
	out := hex.EncodeToString(sum[:])
	if d.Chars > 0 && d.Chars < len(out) {
		return out[:d.Chars]
	}
	return out
}
