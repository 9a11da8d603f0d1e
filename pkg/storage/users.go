package storage

import (
	"context"

	"github.com/chris/statement-ledger/pkg/models"
)

// UserStore defines the interface for managing account holders.
type UserStore interface {
	// CreateUser persists a new user, assigning its id and timestamps.
	// It fails with ErrEmailTaken when the email is already registered.
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)

	// GetUser retrieves a user by id. It fails with ErrUserNotFound when the
	// id does not resolve.
	GetUser(ctx context.Context, userID string) (*models.User, error)

	// GetUserByEmail retrieves a user by email. It fails with ErrUserNotFound
	// when no user is registered under the email.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}
