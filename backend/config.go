package backend

import (
	"context"
	"fmt"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/hupe1980/grovergo/artifact"
	"github.com/hupe1980/grovergo/artifact/minio"
	"github.com/hupe1980/grovergo/artifact/s3"
)

// Environment variables for FromEnv. AWS credentials and region come from
// the standard AWS variables and shared config files.
const (
	EnvStore       = "GROVERGO_STORE"        // "s3" or "minio", default "s3"
	EnvBucket      = "GROVERGO_BUCKET"       // artifact bucket, required
	EnvJobTable    = "GROVERGO_JOB_TABLE"    // DynamoDB table name, required
	EnvBackendName = "GROVERGO_BACKEND_NAME" // reported backend name

	EnvMinioEndpoint  = "MINIO_ENDPOINT"
	EnvMinioAccessKey = "MINIO_ACCESS_KEY"
	EnvMinioSecretKey = "MINIO_SECRET_KEY"
)

const defaultBackendName = "remote-gateway"

// MissingEnvError is returned by FromEnv when a required variable is unset.
type MissingEnvError struct {
	Key string
}

func (e *MissingEnvError) Error() string {
	return fmt.Sprintf("missing environment variable %s", e.Key)
}

// FromEnv wires a Remote backend from the process environment: an S3 or
// MinIO artifact store for circuit payloads and a DynamoDB table for job
// status.
func FromEnv(ctx context.Context, optFns ...RemoteOption) (*Remote, error) {
	bucket := os.Getenv(EnvBucket)
	if bucket == "" {
		return nil, &MissingEnvError{Key: EnvBucket}
	}

	table := os.Getenv(EnvJobTable)
	if table == "" {
		return nil, &MissingEnvError{Key: EnvJobTable}
	}

	store, err := storeFromEnv(ctx, bucket)
	if err != nil {
		return nil, err
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	jobs := NewDynamoJobTable(dynamodb.NewFromConfig(cfg), table)

	name := os.Getenv(EnvBackendName)
	if name == "" {
		name = defaultBackendName
	}

	return NewRemote(name, store, jobs, optFns...), nil
}

func storeFromEnv(ctx context.Context, bucket string) (artifact.Store, error) {
	switch kind := os.Getenv(EnvStore); kind {
	case "", "s3":
		return s3.New(ctx, bucket)
	case "minio":
		endpoint := os.Getenv(EnvMinioEndpoint)
		if endpoint == "" {
			return nil, &MissingEnvError{Key: EnvMinioEndpoint}
		}

		accessKey := os.Getenv(EnvMinioAccessKey)
		if accessKey == "" {
			return nil, &MissingEnvError{Key: EnvMinioAccessKey}
		}

		secretKey := os.Getenv(EnvMinioSecretKey)
		if secretKey == "" {
			return nil, &MissingEnvError{Key: EnvMinioSecretKey}
		}

		return minio.New(endpoint, accessKey, secretKey, bucket)
	default:
		return nil, fmt.Errorf("unknown store kind %q", kind)
	}
}
