package domain

import "time"

// OutboxMessage is a domain event written durably in the same
// transaction as the state change it describes. Rows are created
// unsent and mutated exactly once, by the relay, after a confirmed
// publish.
type OutboxMessage struct {
	CreatedAt time.Time
	SentAt    *time.Time
	ID        string
	Topic     string
	Payload   []byte
	Sent      bool
}
