package artifact

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compressor frames artifact payloads. Implementations must be safe for
// concurrent use.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
	Name() string
}

// ByName returns a built-in compressor by its stable name. The name is
// what a deployment records in its job configuration, so both sides of the
// remote protocol agree on framing.
func ByName(name string) (Compressor, bool) {
	switch name {
	case "zstd":
		return Zstd{}, true
	case "lz4":
		return LZ4{}, true
	default:
		return nil, false
	}
}

// Default is the compressor used when none is configured.
var Default Compressor = Zstd{}

// Zstd frames payloads with zstandard.
type Zstd struct{}

// Name implements Compressor.
func (Zstd) Name() string { return "zstd" }

// Compress implements Compressor.
func (Zstd) Compress(data []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("zstd encoder: %w", err)
	}
	out := enc.EncodeAll(data, make([]byte, 0, len(data)/2))
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return out, nil
}

// Decompress implements Compressor.
func (Zstd) Decompress(data []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decoder: %w", err)
	}
	defer dec.Close()
	return dec.DecodeAll(data, nil)
}

// LZ4 frames payloads with the lz4 frame format.
type LZ4 struct{}

// Name implements Compressor.
func (LZ4) Name() string { return "lz4" }

// Compress implements Compressor.
func (LZ4) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decompress implements Compressor.
func (LZ4) Decompress(data []byte) ([]byte, error) {
	r := lz4.NewReader(bytes.NewReader(data))
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("lz4 decompress: %w", err)
	}
	return out, nil
}

// CompressedStore wraps a Store, framing every payload with a Compressor.
type CompressedStore struct {
	inner Store
	comp  Compressor
}

// NewCompressedStore wraps inner with the given compressor; nil selects
// Default.
func NewCompressedStore(inner Store, comp Compressor) *CompressedStore {
	if comp == nil {
		comp = Default
	}
	return &CompressedStore{inner: inner, comp: comp}
}

// Put implements Store.
func (s *CompressedStore) Put(ctx context.Context, name string, data []byte) error {
	framed, err := s.comp.Compress(data)
	if err != nil {
		return err
	}
	return s.inner.Put(ctx, name, framed)
}

// Get implements Store.
func (s *CompressedStore) Get(ctx context.Context, name string) ([]byte, error) {
	framed, err := s.inner.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	return s.comp.Decompress(framed)
}

// Delete implements Store.
func (s *CompressedStore) Delete(ctx context.Context, name string) error {
	return s.inner.Delete(ctx, name)
}

// List implements Store.
func (s *CompressedStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}
