package domain

import "github.com/shopspring/decimal"

// TopicTransactionEvents is the topic all transfer events are
// published on.
const TopicTransactionEvents = "transaction-events"

// TransferCompletedEvent is the payload enqueued to the outbox when a
// transfer commits. Delivery is at-least-once; consumers dedupe.
type TransferCompletedEvent struct {
	PayerID         string          `json:"payerId"`
	Amount          decimal.Decimal `json:"amount"`
	DestinationIban string          `json:"destinationIban"`
}
