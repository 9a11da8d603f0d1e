package storage

import (
	"context"

	"github.com/chris/statement-ledger/pkg/models"
)

// StatementReader defines the interface for reading statement data.
type StatementReader interface {
	// ListStatementsByUserID retrieves all statements for a user in creation order.
	ListStatementsByUserID(ctx context.Context, userID string) ([]models.Statement, error)

	// GetStatementByUserID retrieves a single statement scoped to its owning
	// user. It fails with ErrStatementNotFound when the id does not resolve
	// for that user, including when the statement belongs to someone else.
	GetStatementByUserID(ctx context.Context, userID, statementID string) (*models.Statement, error)
}

// StatementWriter defines the interface for appending statements.
// Statements are append-only: there is no update or delete.
type StatementWriter interface {
	// CreateStatement appends a new statement, assigning its id and
	// timestamps, and returns the stored record.
	CreateStatement(ctx context.Context, statement *models.Statement) (*models.Statement, error)
}

// StatementStore combines the reader and writer interfaces.
type StatementStore interface {
	StatementReader
	StatementWriter
}
