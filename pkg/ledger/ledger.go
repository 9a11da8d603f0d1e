// Package ledger implements the statement ledger engine: it validates and
// records deposits and withdrawals, derives balances from the statement
// history, and retrieves individual statements scoped to their owner.
package ledger

import (
	"context"
	"sync"

	"github.com/chris/statement-ledger/pkg/models"
	"github.com/chris/statement-ledger/pkg/storage"
)

// Service defines the ledger operations exposed to transport handlers.
type Service interface {
	// CreateStatement validates and records a deposit or withdrawal for a user.
	CreateStatement(ctx context.Context, userID string, opType models.OperationType, amount int64, description string) (*models.Statement, error)

	// GetBalance derives the user's current balance and full statement history.
	GetBalance(ctx context.Context, userID string) (*models.Balance, error)

	// GetStatementOperation retrieves a single statement owned by the user.
	GetStatementOperation(ctx context.Context, userID, statementID string) (*models.Statement, error)
}

// Ledger enforces the insufficient-funds invariant at write time. The store
// only ever sees statements that passed validation, so the derived balance of
// any user can never have gone negative at the moment a withdrawal was
// accepted.
type Ledger struct {
	users      storage.UserStore
	statements storage.StatementStore

	// Per-user locks serialize the balance read and the subsequent append
	// inside CreateStatement, so two concurrent withdrawals cannot both
	// observe a sufficient balance and jointly overdraw the account.
	muMap map[string]*sync.Mutex
	mapMu sync.Mutex
}

// New creates a Ledger on top of the given user and statement stores.
func New(users storage.UserStore, statements storage.StatementStore) *Ledger {
	return &Ledger{
		users:      users,
		statements: statements,
		muMap:      make(map[string]*sync.Mutex),
	}
}

// Make sure we conform to the interface
var _ Service = (*Ledger)(nil)

func (l *Ledger) userLock(userID string) *sync.Mutex {
	l.mapMu.Lock()
	defer l.mapMu.Unlock()

	if _, exists := l.muMap[userID]; !exists {
		l.muMap[userID] = &sync.Mutex{}
	}
	return l.muMap[userID]
}

// CreateStatement validates and records a new statement for a user.
// The user must exist, the amount must be positive, and a withdrawal must not
// exceed the balance derived from the user's statement history. On any
// failure the store is left unchanged.
func (l *Ledger) CreateStatement(ctx context.Context, userID string, opType models.OperationType, amount int64, description string) (*models.Statement, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	if _, err := l.users.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	mu := l.userLock(userID)
	mu.Lock()
	defer mu.Unlock()

	if opType == models.WITHDRAW {
		balance, err := l.balance(ctx, userID)
		if err != nil {
			return nil, err
		}
		if amount > balance {
			return nil, ErrInsufficientFunds
		}
	}

	return l.statements.CreateStatement(ctx, &models.Statement{
		UserID:      userID,
		Type:        opType,
		Amount:      amount,
		Description: description,
	})
}

// GetBalance derives the user's current balance and returns it together with
// the full statement history in creation order. It is read-only.
func (l *Ledger) GetBalance(ctx context.Context, userID string) (*models.Balance, error) {
	if _, err := l.users.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	statements, err := l.statements.ListStatementsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &models.Balance{Balance: sum(statements), Statement: statements}, nil
}

// GetStatementOperation retrieves a single statement scoped to the given user.
// The user check runs first, so an unknown user reports ErrUserNotFound even
// when the statement id would not resolve either.
func (l *Ledger) GetStatementOperation(ctx context.Context, userID, statementID string) (*models.Statement, error) {
	if _, err := l.users.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	return l.statements.GetStatementByUserID(ctx, userID, statementID)
}

func (l *Ledger) balance(ctx context.Context, userID string) (int64, error) {
	statements, err := l.statements.ListStatementsByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}
	return sum(statements), nil
}

// sum folds a statement history into a balance: deposits count positive,
// withdrawals negative.
func sum(statements []models.Statement) int64 {
	var balance int64
	for _, st := range statements {
		switch st.Type {
		case models.DEPOSIT:
			balance += st.Amount
		case models.WITHDRAW:
			balance -= st.Amount
		}
	}
	return balance
}
