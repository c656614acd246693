// Package artifact stores job payloads for remote circuit execution.
//
// The remote protocol is file-shaped: the client uploads the circuit
// source, the executing side writes the measurement counts next to it.
// Store abstracts where those files live; implementations cover the local
// filesystem, S3 and MinIO. Payloads are small (a QASM file, a counts
// JSON), so stores move whole byte slices rather than streams.
package artifact

import (
	"context"
	"os"
)

// ErrNotFound is returned when an artifact does not exist.
//
// Implementations should return an error satisfying
// errors.Is(err, ErrNotFound). The default maps to os.ErrNotExist.
var ErrNotFound = os.ErrNotExist

// Store reads and writes named artifacts. Names use forward slashes as
// separators regardless of the backing store.
type Store interface {
	// Put writes an artifact, replacing any previous content.
	Put(ctx context.Context, name string, data []byte) error

	// Get reads an artifact in full.
	Get(ctx context.Context, name string) ([]byte, error)

	// Delete removes an artifact. Deleting a missing artifact is not an
	// error.
	Delete(ctx context.Context, name string) error

	// List returns the names of artifacts under the given prefix.
	List(ctx context.Context, prefix string) ([]string, error)
}
