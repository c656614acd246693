package backend

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDDB implements DDBClient over a map, honoring the
// attribute_not_exists condition the job table relies on.
type fakeDDB struct {
	items map[string]map[string]types.AttributeValue
}

func newFakeDDB() *fakeDDB {
	return &fakeDDB{items: make(map[string]map[string]types.AttributeValue)}
}

func (f *fakeDDB) PutItem(_ context.Context, params *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	id := params.Item["job_id"].(*types.AttributeValueMemberS).Value
	if params.ConditionExpression != nil && *params.ConditionExpression == "attribute_not_exists(job_id)" {
		if _, ok := f.items[id]; ok {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("conditional request failed")}
		}
	}
	f.items[id] = params.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDDB) GetItem(_ context.Context, params *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	id := params.Key["job_id"].(*types.AttributeValueMemberS).Value
	item, ok := f.items[id]
	if !ok {
		return &dynamodb.GetItemOutput{}, nil
	}
	return &dynamodb.GetItemOutput{Item: item}, nil
}

func TestDynamoJobTable(t *testing.T) {
	table := NewDynamoJobTable(newFakeDDB(), "grovergo-jobs")

	submitted := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	job := Job{ID: "j1", Status: StatusPending, Shots: 1024, Qubits: 12, SubmittedAt: submitted}

	require.NoError(t, table.Create(context.Background(), job))

	got, err := table.Get(context.Background(), "j1")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, got.Status)
	assert.Equal(t, 1024, got.Shots)
	assert.Equal(t, 12, got.Qubits)
	assert.True(t, got.SubmittedAt.Equal(submitted))
}

func TestDynamoJobTableDuplicate(t *testing.T) {
	table := NewDynamoJobTable(newFakeDDB(), "grovergo-jobs")

	job := Job{ID: "j1", Status: StatusPending, SubmittedAt: time.Now()}
	require.NoError(t, table.Create(context.Background(), job))

	err := table.Create(context.Background(), job)
	assert.ErrorIs(t, err, ErrJobExists)
}

func TestDynamoJobTableNotFound(t *testing.T) {
	table := NewDynamoJobTable(newFakeDDB(), "grovergo-jobs")

	_, err := table.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrJobNotFound)
}
