package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/statement-ledger/pkg/models"
	"github.com/chris/statement-ledger/pkg/storage"
	"github.com/google/uuid"
)

const userStatementsIndex = "user_id-created_at-index"

// CreateStatement appends a new statement record to DynamoDB.
// The conditional put guards against id collisions; statements are never
// updated or deleted after this write.
func (s *Store) CreateStatement(ctx context.Context, statement *models.Statement) (*models.Statement, error) {
	now := time.Now()
	statement.ID = uuid.New().String()
	statement.CreatedAt = now
	statement.UpdatedAt = now

	statementAV, err := attributevalue.MarshalMap(statement)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal statement: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.StatementsTableName),
		Item:                statementAV,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	}

	if _, err := s.Client.PutItem(ctx, input); err != nil {
		return nil, fmt.Errorf("failed to create statement in DynamoDB: %w", err)
	}

	return statement, nil
}

// ListStatementsByUserID retrieves all statements for a user in creation
// order, via the user_id/created_at GSI.
func (s *Store) ListStatementsByUserID(ctx context.Context, userID string) ([]models.Statement, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.StatementsTableName),
		IndexName:              aws.String(userStatementsIndex),
		KeyConditionExpression: aws.String("user_id = :user_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user_id": &types.AttributeValueMemberS{Value: userID},
		},
		// Ascending by the created_at sort key, i.e. creation order.
		ScanIndexForward: aws.Bool(true),
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query statements: %w", err)
	}

	var statements []models.Statement
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &statements); err != nil {
		return nil, fmt.Errorf("failed to unmarshal statements: %w", err)
	}

	return statements, nil
}

// GetStatementByUserID retrieves a single statement scoped to its owning user.
// A statement that exists under a different owner reports ErrStatementNotFound.
func (s *Store) GetStatementByUserID(ctx context.Context, userID, statementID string) (*models.Statement, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": statementID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal statement ID: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.StatementsTableName),
		Key:       key,
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get statement from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("statement with ID %s: %w", statementID, storage.ErrStatementNotFound)
	}

	var statement models.Statement
	if err := attributevalue.UnmarshalMap(result.Item, &statement); err != nil {
		return nil, fmt.Errorf("failed to unmarshal statement: %w", err)
	}

	if statement.UserID != userID {
		return nil, fmt.Errorf("statement with ID %s: %w", statementID, storage.ErrStatementNotFound)
	}

	return &statement, nil
}
