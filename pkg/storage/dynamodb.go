package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// tableWaitTimeout bounds EnsureTable's wait for a new table to become ACTIVE.
const tableWaitTimeout = 2 * time.Minute

// DynamoDBConfig holds DynamoDB client configuration.
type DynamoDBConfig struct {
	Credentials
	Endpoint string // optional, e.g. DynamoDB Local
}

// DynamoDB wraps the SDK client.
type DynamoDB struct {
	*dynamodb.Client
	logger *zap.Logger
}

// NewDynamoDB creates a DynamoDB client. Endpoint overrides the regional endpoint when set.
func NewDynamoDB(ctx context.Context, cfg DynamoDBConfig, logger *zap.Logger) (*DynamoDB, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	awsCfg, err := loadAWSConfig(ctx, cfg.Credentials, "DynamoDB", logger)
	if err != nil {
		return nil, err
	}
	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	if cfg.Endpoint != "" {
		logger.Info("DynamoDB endpoint override", zap.String("endpoint", cfg.Endpoint))
	}
	return &DynamoDB{Client: client, logger: logger}, nil
}

// EnsureTable creates table with string hash key "id" and on-demand billing
// if it does not exist, then waits for it to become active.
func (d *DynamoDB) EnsureTable(ctx context.Context, table string) error {
	_, err := d.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(table)})
	if err == nil {
		return nil
	}
	var notFound *types.ResourceNotFoundException
	if !errors.As(err, &notFound) {
		return fmt.Errorf("describe table: %w", err)
	}

	_, err = d.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName: aws.String(table),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
		BillingMode: types.BillingModePayPerRequest,
	})
	if err != nil {
		return fmt.Errorf("create table: %w", err)
	}
	d.logger.Info("DynamoDB table created", zap.String("table", table))

	waiter := dynamodb.NewTableExistsWaiter(d.Client)
	if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(table)}, tableWaitTimeout); err != nil {
		return fmt.Errorf("wait for table: %w", err)
	}
	return nil
}
