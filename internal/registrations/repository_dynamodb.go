package registrations

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/communityday/registrations/internal/models"
)

// PutItemAPI is the slice of the DynamoDB client used by DynamoRepository.
type PutItemAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// DynamoRepository stores registrations as items in a DynamoDB table keyed by id.
type DynamoRepository struct {
	client PutItemAPI
	table  string
}

// NewDynamoRepository creates a DynamoDB-backed store for table.
func NewDynamoRepository(client PutItemAPI, table string) *DynamoRepository {
	return &DynamoRepository{client: client, table: table}
}

// Put writes the registration as a new item. PutItem replaces any item with the same id.
func (r *DynamoRepository) Put(ctx context.Context, reg *models.Registration) error {
	item, err := attributevalue.MarshalMap(reg)
	if err != nil {
		return fmt.Errorf("marshal item: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("put item: %w", err)
	}
	return nil
}
