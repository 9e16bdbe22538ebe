package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType distinguishes the two legs of a transfer.
type EntryType string

const (
	EntryTypeDebit  EntryType = "DEBIT"
	EntryTypeCredit EntryType = "CREDIT"
)

// Correlation-id suffixes for the two ledger legs. Uniqueness of the
// ledger correlation id enforces idempotency of each leg independently.
const (
	debitLegSuffix  = "-D"
	creditLegSuffix = "-C"
)

// LedgerEntry is one signed movement on an account. Entries are
// immutable once created; a successful transfer always produces a
// DEBIT/CREDIT pair that sums to zero.
type LedgerEntry struct {
	TransactionDate time.Time
	ID              string
	AccountID       string
	CorrelationID   string
	Type            EntryType
	Amount          decimal.Decimal
}

// DebitCorrelationID derives the debit-leg correlation id from the
// caller-supplied transfer correlation id.
func DebitCorrelationID(correlationID string) string {
	return correlationID + debitLegSuffix
}

// CreditCorrelationID derives the credit-leg correlation id from the
// caller-supplied transfer correlation id.
func CreditCorrelationID(correlationID string) string {
	return correlationID + creditLegSuffix
}
