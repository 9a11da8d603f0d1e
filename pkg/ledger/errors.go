package ledger

import "errors"

// ErrInsufficientFunds is returned when a withdrawal would take the user's
// balance negative.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrInvalidAmount is returned when a statement amount is zero or negative.
// A negative deposit would silently invert the ledger semantics, so the
// amount is validated up front instead.
var ErrInvalidAmount = errors.New("amount must be positive")
