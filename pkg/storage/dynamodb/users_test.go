package dynamodb

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/statement-ledger/pkg/models"
	"github.com/chris/statement-ledger/pkg/storage"
	"github.com/chris/statement-ledger/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateUser(t *testing.T) {
	user := &models.User{Name: "Test", Email: "test@example.com", PasswordHash: "hash"}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, "users", "statements")

		// Email uniqueness check comes back empty.
		mockClient.On("Query", mock.Anything, mock.Anything).Return(&dynamodb.QueryOutput{}, nil)
		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(&dynamodb.PutItemOutput{}, nil)

		created, err := store.CreateUser(context.Background(), &models.User{Name: user.Name, Email: user.Email, PasswordHash: user.PasswordHash})

		assert.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.False(t, created.CreatedAt.IsZero())
		mockClient.AssertExpectations(t)
	})

	t.Run("Email Taken", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, "users", "statements")

		existingAV, _ := attributevalue.MarshalMap(&models.User{ID: "existing", Email: user.Email})
		mockClient.On("Query", mock.Anything, mock.Anything).Return(&dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{existingAV}}, nil)

		_, err := store.CreateUser(context.Background(), &models.User{Name: user.Name, Email: user.Email})

		assert.ErrorIs(t, err, storage.ErrEmailTaken)
		mockClient.AssertExpectations(t)
	})

	t.Run("Put Fails", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, "users", "statements")

		mockClient.On("Query", mock.Anything, mock.Anything).Return(&dynamodb.QueryOutput{}, nil)
		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(nil, errors.New("put failed"))

		_, err := store.CreateUser(context.Background(), &models.User{Name: user.Name, Email: user.Email})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create user")
		mockClient.AssertExpectations(t)
	})
}

func TestGetUser(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, "users", "statements")

		userAV, _ := attributevalue.MarshalMap(&models.User{ID: "user-1", Email: "test@example.com"})
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: userAV}, nil)

		user, err := store.GetUser(context.Background(), "user-1")

		assert.NoError(t, err)
		assert.Equal(t, "user-1", user.ID)
		mockClient.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, "users", "statements")

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{}, nil)

		_, err := store.GetUser(context.Background(), "missing")

		assert.ErrorIs(t, err, storage.ErrUserNotFound)
		mockClient.AssertExpectations(t)
	})

	t.Run("Client Fails", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, "users", "statements")

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(nil, errors.New("get failed"))

		_, err := store.GetUser(context.Background(), "user-1")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get user")
		mockClient.AssertExpectations(t)
	})
}

func TestGetUserByEmail(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, "users", "statements")

		userAV, _ := attributevalue.MarshalMap(&models.User{ID: "user-1", Email: "test@example.com"})
		mockClient.On("Query", mock.Anything, mock.Anything).Return(&dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{userAV}}, nil)

		user, err := store.GetUserByEmail(context.Background(), "test@example.com")

		assert.NoError(t, err)
		assert.Equal(t, "user-1", user.ID)
		mockClient.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, "users", "statements")

		mockClient.On("Query", mock.Anything, mock.Anything).Return(&dynamodb.QueryOutput{}, nil)

		_, err := store.GetUserByEmail(context.Background(), "missing@example.com")

		assert.ErrorIs(t, err, storage.ErrUserNotFound)
		mockClient.AssertExpectations(t)
	})
}
