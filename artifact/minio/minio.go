// Package minio implements artifact.Store on MinIO and other S3-compatible
// object stores.
package minio

import (
	"bytes"
	"context"
	"io"
	"path"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/hupe1980/grovergo/artifact"
)

// Store implements artifact.Store for MinIO.
type Store struct {
	client *minio.Client
	bucket string
	prefix string
}

type options struct {
	prefix string
	secure bool
}

// Option configures a Store.
type Option func(*options)

// WithPrefix prepends a key prefix to every artifact name.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithTLS enables TLS for the endpoint connection.
func WithTLS() Option {
	return func(o *options) {
		o.secure = true
	}
}

// New creates a Store connected to the given endpoint with static
// credentials.
func New(endpoint, accessKey, secretKey, bucket string, optFns ...Option) (*Store, error) {
	var o options
	for _, fn := range optFns {
		fn(&o)
	}
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: o.secure,
	})
	if err != nil {
		return nil, err
	}
	return &Store{client: client, bucket: bucket, prefix: o.prefix}, nil
}

// NewFromClient creates a Store from an existing client.
func NewFromClient(client *minio.Client, bucket string, optFns ...Option) *Store {
	var o options
	for _, fn := range optFns {
		fn(&o)
	}
	return &Store{client: client, bucket: bucket, prefix: o.prefix}
}

func (s *Store) key(name string) string {
	return path.Join(s.prefix, name)
}

// Put implements artifact.Store.
func (s *Store) Put(ctx context.Context, name string, data []byte) error {
	_, err := s.client.PutObject(ctx, s.bucket, s.key(name),
		bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{})
	return err
}

// Get implements artifact.Store.
func (s *Store) Get(ctx context.Context, name string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.key(name), minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" || resp.Code == "NotFound" {
			return nil, artifact.ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

// Delete implements artifact.Store.
func (s *Store) Delete(ctx context.Context, name string) error {
	return s.client.RemoveObject(ctx, s.bucket, s.key(name), minio.RemoveObjectOptions{})
}

// List implements artifact.Store.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	var names []string
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    s.key(prefix),
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, obj.Err
		}
		name := obj.Key
		if s.prefix != "" && len(name) > len(s.prefix) {
			name = name[len(s.prefix)+1:]
		}
		names = append(names, name)
	}
	return names, nil
}
