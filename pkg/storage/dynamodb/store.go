package dynamodb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chris/statement-ledger/pkg/storage"
)

// DynamoDBAPI defines the subset of the DynamoDB client used by the Store.
// Depending on this interface instead of *dynamodb.Client keeps the store
// testable with a mocked client.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// Store implements the Storage interface using AWS DynamoDB.
// Users are keyed by id with an email GSI; statements are keyed by id with a
// user_id/created_at GSI for ordered per-user listings.
type Store struct {
	Client              DynamoDBAPI
	UsersTableName      string
	StatementsTableName string
}

// New creates a new Store.
func New(client DynamoDBAPI, usersTable, statementsTable string) *Store {
	return &Store{
		Client:              client,
		UsersTableName:      usersTable,
		StatementsTableName: statementsTable,
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)
