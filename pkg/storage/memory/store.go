// Package memory provides a mutex-guarded in-memory implementation of the
// storage interfaces. It backs the unit tests and local development runs
// where no DynamoDB tables are configured.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/chris/statement-ledger/pkg/models"
	"github.com/chris/statement-ledger/pkg/storage"
	"github.com/google/uuid"
)

// Store keeps users and statements in process memory. Statements are held in
// a single append-only slice, so per-user listings come back in creation order.
type Store struct {
	mu         sync.Mutex
	users      map[string]models.User
	emails     map[string]string // email -> user id
	statements []models.Statement
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		users:  make(map[string]models.User),
		emails: make(map[string]string),
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)

// CreateUser persists a new user, assigning its id and timestamps.
func (s *Store) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.emails[user.Email]; exists {
		return nil, storage.ErrEmailTaken
	}

	now := time.Now()
	stored := *user
	stored.ID = uuid.New().String()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	s.users[stored.ID] = stored
	s.emails[stored.Email] = stored.ID
	return &stored, nil
}

// GetUser retrieves a user by id.
func (s *Store) GetUser(ctx context.Context, userID string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by email.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.emails[email]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	user := s.users[id]
	return &user, nil
}

// CreateStatement appends a new statement, assigning its id and timestamps.
func (s *Store) CreateStatement(ctx context.Context, statement *models.Statement) (*models.Statement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	stored := *statement
	stored.ID = uuid.New().String()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	s.statements = append(s.statements, stored)
	return &stored, nil
}

// ListStatementsByUserID retrieves all statements for a user in creation order.
func (s *Store) ListStatementsByUserID(ctx context.Context, userID string) ([]models.Statement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []models.Statement
	for _, st := range s.statements {
		if st.UserID == userID {
			result = append(result, st)
		}
	}
	return result, nil
}

// GetStatementByUserID retrieves a single statement scoped to its owning user.
func (s *Store) GetStatementByUserID(ctx context.Context, userID, statementID string) (*models.Statement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, st := range s.statements {
		if st.ID == statementID && st.UserID == userID {
			found := st
			return &found, nil
		}
	}
	return nil, storage.ErrStatementNotFound
}
