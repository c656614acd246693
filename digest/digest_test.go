package digest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncatedMD5(t *testing.T) {
	d := NewTruncatedMD5()

	// md5("abc") = 900150983cd24fb0d6963f7d28e17f72
	assert.Equal(t, "90015098", d.Sum("abc"))

	// Deterministic across calls.
	assert.Equal(t, d.Sum("xyz"), d.Sum("xyz"))
	assert.NotEqual(t, d.Sum("a"), d.Sum("b"))
}

func TestTruncationBounds(t *testing.T) {
	full := TruncatedMD5{Chars: 0}
	assert.Len(t, full.Sum("abc"), 32)

	wide := TruncatedMD5{Chars: 100}
	assert.Len(t, wide.Sum("abc"), 32)

	narrow := TruncatedMD5{Chars: 4}
	assert.Equal(t, "9001", narrow.Sum("abc"))
}
