// Package events publishes notifications about accepted statements for
// downstream consumers (notification fan-out, analytics). Publishing is
// best-effort: a failed publish never rolls back the ledger write.
package events

import "context"

// EventType defines the type of a published event.
type EventType string

const (
	// EventTypeStatementCreated is emitted after a statement is accepted.
	EventTypeStatementCreated EventType = "statementCreated"
)

// Event represents a generic published event.
type Event struct {
	Type    EventType   `json:"type"`
	Payload interface{} `json:"payload"`
}

// StatementCreatedPayload is the payload for a statementCreated event.
type StatementCreatedPayload struct {
	UserID      string `json:"user_id"`
	StatementID string `json:"statement_id"`
	Type        string `json:"statement_type"`
	Amount      int64  `json:"amount"`
	NewBalance  int64  `json:"new_balance"`
}

// Publisher defines the interface for publishing events.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// NoOpPublisher is a publisher that does nothing. It is used when no queue
// is configured and in tests.
type NoOpPublisher struct{}

// Publish does nothing.
func (p *NoOpPublisher) Publish(ctx context.Context, event Event) error {
	return nil
}
