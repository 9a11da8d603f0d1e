// Package users implements account-holder registration, credential
// authentication, and profile lookup. It issues the identity tokens consumed
// by the statement routes.
package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/chris/statement-ledger/pkg/models"
	"github.com/chris/statement-ledger/pkg/storage"
	"golang.org/x/crypto/bcrypt"
)

// ErrIncorrectCredentials is returned for both an unknown email and a wrong
// password, so callers cannot tell which part of the pair failed.
var ErrIncorrectCredentials = errors.New("incorrect email or password")

// Service holds the dependencies for user management.
type Service struct {
	store  storage.UserStore
	tokens *TokenIssuer
}

// NewService creates a new Service.
func NewService(store storage.UserStore, tokens *TokenIssuer) *Service {
	return &Service{store: store, tokens: tokens}
}

// Register creates a new user with a bcrypt-hashed password.
// It fails with storage.ErrEmailTaken when the email is already registered.
func (s *Service) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.store.CreateUser(ctx, &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate verifies the email/password pair and returns the user together
// with a signed identity token.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, "", ErrIncorrectCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrIncorrectCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	return user, token, nil
}

// Profile retrieves a user's profile by id.
func (s *Service) Profile(ctx context.Context, userID string) (*models.User, error) {
	return s.store.GetUser(ctx, userID)
}
