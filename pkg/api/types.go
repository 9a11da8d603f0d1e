// Package api defines the transport request and response types for the
// HTTP surface. Handlers decode into these and map them to domain models
// via the mapping package.
package api

import "time"

// NewUser is the request body for registering a user.
type NewUser struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// User is the public representation of an account holder.
type User struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSession is the request body for authenticating a user.
type NewSession struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is the response to a successful authentication.
type Session struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// NewStatement is the request body for a deposit or withdrawal. The operation
// type comes from the route, the user from the identity token.
type NewStatement struct {
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
}

// Statement is the public representation of a ledger entry.
type Statement struct {
	Id          string    `json:"id"`
	UserId      string    `json:"user_id"`
	Type        string    `json:"type"`
	Amount      int64     `json:"amount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Balance is the response to a balance query: the running total plus the
// full statement history in creation order.
type Balance struct {
	Balance   int64        `json:"balance"`
	Statement []*Statement `json:"statement"`
}
