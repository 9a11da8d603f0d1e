package models

import (
	"time"
)

// OperationType defines the kind of a statement: money in or money out.
type OperationType string

const (
	DEPOSIT  OperationType = "DEPOSIT"
	WITHDRAW OperationType = "WITHDRAW"
)

// User represents the internal domain model for an account holder.
type User struct {
	ID           string    `dynamodbav:"id"`
	Name         string    `dynamodbav:"name"`
	Email        string    `dynamodbav:"email"`
	PasswordHash string    `dynamodbav:"password_hash"`
	CreatedAt    time.Time `dynamodbav:"created_at"`
	UpdatedAt    time.Time `dynamodbav:"updated_at"`
}

// Statement represents a single immutable ledger entry for a user.
// Amount is denominated in minor currency units.
// It includes dynamodbav tags for marshalling.
type Statement struct {
	ID          string        `dynamodbav:"id"`
	UserID      string        `dynamodbav:"user_id"`
	Type        OperationType `dynamodbav:"type"`
	Amount      int64         `dynamodbav:"amount"`
	Description string        `dynamodbav:"description"`
	CreatedAt   time.Time     `dynamodbav:"created_at"`
	UpdatedAt   time.Time     `dynamodbav:"updated_at"`
}

// Balance is the derived view of a user's account: the running total plus
// the full statement history in creation order. It is computed on demand
// and never stored.
type Balance struct {
	Balance   int64
	Statement []Statement
}
