package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/jpendyala/money-management-expense-tracker/internal/domain"
)

// Table location is fixed configuration, not a runtime input.
const (
	TableName = "TransactionsTable"
	Region    = "us-east-1"
)

// Store persists transactions in a single DynamoDB table keyed by id. It holds
// a shared client to avoid creating a new connection per operation.
type Store struct {
	client    *dynamodb.Client
	tableName string
}

// NewStore creates a Store using the default AWS credential chain, pinned to
// the fixed region.
func NewStore(ctx context.Context) (*Store, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(Region))
	if err != nil {
		return nil, fmt.Errorf("dynamo.NewStore: loading AWS config: %w", err)
	}
	return &Store{
		client:    dynamodb.NewFromConfig(cfg),
		tableName: TableName,
	}, nil
}

// NewStoreWithClient wires an existing client, mainly for local endpoints.
func NewStoreWithClient(client *dynamodb.Client, tableName string) *Store {
	return &Store{client: client, tableName: tableName}
}

// PutTransaction writes one record unconditionally. Ids are always freshly
// generated upstream, so last-write-wins semantics never overwrite in practice.
func (s *Store) PutTransaction(ctx context.Context, tx *domain.Transaction) error {
	item, err := attributevalue.MarshalMap(tx)
	if err != nil {
		return fmt.Errorf("dynamo.PutTransaction: marshaling item: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("dynamo.PutTransaction: putting item: %w", err)
	}
	return nil
}

// ListTransactions enumerates the whole table with a single unfiltered scan,
// in the store's native order.
func (s *Store) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	out, err := s.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(s.tableName),
	})
	if err != nil {
		return nil, fmt.Errorf("dynamo.ListTransactions: scanning table: %w", err)
	}

	var txs []domain.Transaction
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &txs); err != nil {
		return nil, fmt.Errorf("dynamo.ListTransactions: unmarshaling items: %w", err)
	}
	return txs, nil
}
