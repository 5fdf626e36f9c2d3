package store

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// orderKeyAttr is the partition key attribute of the purchase-order table.
const orderKeyAttr = "purchaseOrderNumber"

// DynamoAPI is the subset of the DynamoDB client the store depends on.
type DynamoAPI interface {
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// Ensure the real client satisfies the interface.
var _ DynamoAPI = (*dynamodb.Client)(nil)

// DynamoStore implements Store on a DynamoDB table keyed by order number.
type DynamoStore struct {
	client DynamoAPI
	table  string
}

// NewDynamoStore creates a DynamoStore from configuration. Credentials are
// resolved through the default AWS provider chain unless static keys are
// configured.
func NewDynamoStore(ctx context.Context, cfg Config) (*DynamoStore, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var clientOpts []func(*dynamodb.Options)
	if cfg.Endpoint != "" {
		clientOpts = append(clientOpts, func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		})
	}

	return &DynamoStore{
		client: dynamodb.NewFromConfig(awsCfg, clientOpts...),
		table:  cfg.Table,
	}, nil
}

// NewDynamoStoreWithClient wires an existing client, used by tests.
func NewDynamoStoreWithClient(client DynamoAPI, table string) *DynamoStore {
	return &DynamoStore{client: client, table: table}
}

// Scan returns every tracked purchase order, following pagination until the
// table is exhausted.
func (s *DynamoStore) Scan(ctx context.Context) ([]PurchaseOrder, error) {
	var (
		orders  []PurchaseOrder
		lastKey map[string]types.AttributeValue
	)

	for {
		out, err := s.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(s.table),
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to scan table %s: %w", s.table, err)
		}

		var page []PurchaseOrder
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("failed to unmarshal scan page: %w", err)
		}
		orders = append(orders, page...)

		if len(out.LastEvaluatedKey) == 0 {
			return orders, nil
		}
		lastKey = out.LastEvaluatedKey
	}
}

// Put inserts or replaces the record keyed by po.Number.
func (s *DynamoStore) Put(ctx context.Context, po PurchaseOrder) error {
	item, err := attributevalue.MarshalMap(po)
	if err != nil {
		return fmt.Errorf("failed to marshal order %s: %w", po.Number, err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to put order %s: %w", po.Number, err)
	}
	return nil
}

// Delete removes the record for the given order number.
func (s *DynamoStore) Delete(ctx context.Context, number string) error {
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.table),
		Key: map[string]types.AttributeValue{
			orderKeyAttr: &types.AttributeValueMemberS{Value: number},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to delete order %s: %w", number, err)
	}
	return nil
}
