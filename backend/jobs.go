package backend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// JobStatus is the lifecycle state of a remote job.
type JobStatus string

const (
	// StatusPending means the job is queued and not yet running.
	StatusPending JobStatus = "pending"
	// StatusRunning means the gateway picked the job up.
	StatusRunning JobStatus = "running"
	// StatusCompleted means counts are available in the artifact store.
	StatusCompleted JobStatus = "completed"
	// StatusFailed means the gateway gave up; Job.Error carries the reason.
	StatusFailed JobStatus = "failed"
)

// Job is one submitted circuit execution.
type Job struct {
	ID          string
	Status      JobStatus
	Error       string
	Shots       int
	Qubits      int
	SubmittedAt time.Time
}

// ErrJobNotFound is returned when a job ID has no table entry.
var ErrJobNotFound = errors.New("job not found")

// ErrJobExists is returned when a job ID is submitted twice.
var ErrJobExists = errors.New("job already exists")

// JobTable tracks remote job status. The artifact store carries the
// payloads; the table carries only the small, mutable state.
type JobTable interface {
	Create(ctx context.Context, job Job) error
	Get(ctx context.Context, id string) (Job, error)
}

// DDBClient is the DynamoDB surface the job table needs.
type DDBClient interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

// DynamoJobTable implements JobTable on DynamoDB. The conditional put
// gives job submission the create-once semantics S3 alone cannot.
//
// Table schema:
//   - Partition key: job_id (string)
//
// Create table with:
//
//	aws dynamodb create-table \
//	  --table-name grovergo-jobs \
//	  --attribute-definitions AttributeName=job_id,AttributeType=S \
//	  --key-schema AttributeName=job_id,KeyType=HASH \
//	  --billing-mode PAY_PER_REQUEST
type DynamoJobTable struct {
	client    DDBClient
	tableName string
}

// NewDynamoJobTable creates a job table backed by the named DynamoDB table.
func NewDynamoJobTable(client DDBClient, tableName string) *DynamoJobTable {
	return &DynamoJobTable{client: client, tableName: tableName}
}

// Create implements JobTable.
func (t *DynamoJobTable) Create(ctx context.Context, job Job) error {
	_, err := t.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(t.tableName),
		Item: map[string]types.AttributeValue{
			"job_id":       &types.AttributeValueMemberS{Value: job.ID},
			"status":       &types.AttributeValueMemberS{Value: string(job.Status)},
			"shots":        &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", job.Shots)},
			"qubits":       &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", job.Qubits)},
			"submitted_at": &types.AttributeValueMemberS{Value: job.SubmittedAt.UTC().Format(time.RFC3339Nano)},
		},
		ConditionExpression: aws.String("attribute_not_exists(job_id)"),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return ErrJobExists
		}
		return err
	}
	return nil
}

// Get implements JobTable.
func (t *DynamoJobTable) Get(ctx context.Context, id string) (Job, error) {
	out, err := t.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(t.tableName),
		Key: map[string]types.AttributeValue{
			"job_id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return Job{}, err
	}
	if len(out.Item) == 0 {
		return Job{}, ErrJobNotFound
	}

	job := Job{ID: id}
	if attr, ok := out.Item["status"].(*types.AttributeValueMemberS); ok {
		job.Status = JobStatus(attr.Value)
	}
	if attr, ok := out.Item["error"].(*types.AttributeValueMemberS); ok {
		job.Error = attr.Value
	}
	if attr, ok := out.Item["shots"].(*types.AttributeValueMemberN); ok {
		fmt.Sscanf(attr.Value, "%d", &job.Shots)
	}
	if attr, ok := out.Item["qubits"].(*types.AttributeValueMemberN); ok {
		fmt.Sscanf(attr.Value, "%d", &job.Qubits)
	}
	if attr, ok := out.Item["submitted_at"].(*types.AttributeValueMemberS); ok {
		if ts, err := time.Parse(time.RFC3339Nano, attr.Value); err == nil {
			job.SubmittedAt = ts
		}
	}
	return job, nil
}

// MemoryJobTable implements JobTable in memory for tests and local runs.
type MemoryJobTable struct {
	jobs map[string]Job
}

// NewMemoryJobTable creates an empty in-memory job table.
func NewMemoryJobTable() *MemoryJobTable {
	return &MemoryJobTable{jobs: make(map[string]Job)}
}

// Create implements JobTable.
func (t *MemoryJobTable) Create(_ context.Context, job Job) error {
	if _, ok := t.jobs[job.ID]; ok {
		return ErrJobExists
	}
	t.jobs[job.ID] = job
	return nil
}

// Get implements JobTable.
func (t *MemoryJobTable) Get(_ context.Context, id string) (Job, error) {
	job, ok := t.jobs[id]
	if !ok {
		return Job{}, ErrJobNotFound
	}
	return job, nil
}

// Set updates a job, for tests driving the gateway side.
func (t *MemoryJobTable) Set(job Job) {
	t.jobs[job.ID] = job
}
