package storage

import "errors"

// ErrUserNotFound is returned when the referenced user id does not resolve.
var ErrUserNotFound = errors.New("user not found")

// ErrStatementNotFound is returned when no statement with the given id exists
// for the given user. A statement owned by a different user reports the same
// error so that ids cannot be probed across accounts.
var ErrStatementNotFound = errors.New("statement not found")

// ErrEmailTaken is returned when a user with the given email already exists.
var ErrEmailTaken = errors.New("email already taken")
