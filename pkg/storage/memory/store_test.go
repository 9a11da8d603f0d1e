package memory

import (
	"context"
	"fmt"
	"testing"

	"github.com/chris/statement-ledger/pkg/models"
	"github.com/chris/statement-ledger/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsers(t *testing.T) {
	t.Run("Create Assigns Id And Timestamps", func(t *testing.T) {
		s := New()

		user, err := s.CreateUser(context.Background(), &models.User{Name: "Test", Email: "test@example.com"})

		require.NoError(t, err)
		assert.NotEmpty(t, user.ID)
		assert.False(t, user.CreatedAt.IsZero())
		assert.False(t, user.UpdatedAt.IsZero())
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		s := New()

		_, err := s.CreateUser(context.Background(), &models.User{Name: "Test", Email: "test@example.com"})
		require.NoError(t, err)

		_, err = s.CreateUser(context.Background(), &models.User{Name: "Other", Email: "test@example.com"})
		assert.ErrorIs(t, err, storage.ErrEmailTaken)
	})

	t.Run("Lookup By Id And Email", func(t *testing.T) {
		s := New()

		created, err := s.CreateUser(context.Background(), &models.User{Name: "Test", Email: "test@example.com"})
		require.NoError(t, err)

		byID, err := s.GetUser(context.Background(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, byID.ID)

		byEmail, err := s.GetUserByEmail(context.Background(), "test@example.com")
		require.NoError(t, err)
		assert.Equal(t, created.ID, byEmail.ID)
	})

	t.Run("Not Found", func(t *testing.T) {
		s := New()

		_, err := s.GetUser(context.Background(), "missing")
		assert.ErrorIs(t, err, storage.ErrUserNotFound)

		_, err = s.GetUserByEmail(context.Background(), "missing@example.com")
		assert.ErrorIs(t, err, storage.ErrUserNotFound)
	})
}

func TestStatements(t *testing.T) {
	t.Run("List Preserves Creation Order", func(t *testing.T) {
		s := New()

		for i := 0; i < 5; i++ {
			_, err := s.CreateStatement(context.Background(), &models.Statement{
				UserID:      "user-1",
				Type:        models.DEPOSIT,
				Amount:      int64(i + 1),
				Description: fmt.Sprintf("deposit %d", i+1),
			})
			require.NoError(t, err)
		}

		statements, err := s.ListStatementsByUserID(context.Background(), "user-1")
		require.NoError(t, err)
		require.Len(t, statements, 5)
		for i, st := range statements {
			assert.Equal(t, int64(i+1), st.Amount)
		}
	})

	t.Run("List Is Scoped To User", func(t *testing.T) {
		s := New()

		_, err := s.CreateStatement(context.Background(), &models.Statement{UserID: "user-1", Type: models.DEPOSIT, Amount: 100})
		require.NoError(t, err)
		_, err = s.CreateStatement(context.Background(), &models.Statement{UserID: "user-2", Type: models.DEPOSIT, Amount: 200})
		require.NoError(t, err)

		statements, err := s.ListStatementsByUserID(context.Background(), "user-1")
		require.NoError(t, err)
		require.Len(t, statements, 1)
		assert.Equal(t, int64(100), statements[0].Amount)
	})

	t.Run("Get Is Scoped To User", func(t *testing.T) {
		s := New()

		created, err := s.CreateStatement(context.Background(), &models.Statement{UserID: "user-1", Type: models.DEPOSIT, Amount: 100})
		require.NoError(t, err)

		found, err := s.GetStatementByUserID(context.Background(), "user-1", created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)

		_, err = s.GetStatementByUserID(context.Background(), "user-2", created.ID)
		assert.ErrorIs(t, err, storage.ErrStatementNotFound)

		_, err = s.GetStatementByUserID(context.Background(), "user-1", "missing")
		assert.ErrorIs(t, err, storage.ErrStatementNotFound)
	})

	t.Run("Stored Statement Is A Copy", func(t *testing.T) {
		s := New()

		input := &models.Statement{UserID: "user-1", Type: models.DEPOSIT, Amount: 100}
		created, err := s.CreateStatement(context.Background(), input)
		require.NoError(t, err)

		// Mutating the caller's struct must not affect the stored record.
		input.Amount = 999

		found, err := s.GetStatementByUserID(context.Background(), "user-1", created.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(100), found.Amount)
	})
}
