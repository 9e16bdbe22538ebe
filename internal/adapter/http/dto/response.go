package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iskender/paycore/internal/domain"
)

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID        string          `json:"id"`
	Iban      string          `json:"iban"`
	OwnerID   string          `json:"ownerId"`
	Currency  string          `json:"currency"`
	Balance   decimal.Decimal `json:"balance"`
	Version   int64           `json:"version"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// AccountFromDomain converts a domain account to a response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:        a.ID,
		Iban:      a.IBAN,
		OwnerID:   a.OwnerID,
		Currency:  a.Currency,
		Balance:   a.Balance,
		Version:   a.Version,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// LedgerEntryResponse represents a ledger entry in API responses.
type LedgerEntryResponse struct {
	ID              string          `json:"id"`
	AccountID       string          `json:"accountId"`
	Amount          decimal.Decimal `json:"amount"`
	Type            string          `json:"type"`
	TransactionDate time.Time       `json:"transactionDate"`
	CorrelationID   string          `json:"correlationId"`
}

// LedgerEntryFromDomain converts a domain ledger entry to a response.
func LedgerEntryFromDomain(e *domain.LedgerEntry) *LedgerEntryResponse {
	return &LedgerEntryResponse{
		ID:              e.ID,
		AccountID:       e.AccountID,
		Amount:          e.Amount,
		Type:            string(e.Type),
		TransactionDate: e.TransactionDate,
		CorrelationID:   e.CorrelationID,
	}
}

// LedgerEntriesFromDomain converts domain ledger entries to responses.
func LedgerEntriesFromDomain(entries []*domain.LedgerEntry) []*LedgerEntryResponse {
	result := make([]*LedgerEntryResponse, len(entries))
	for i, e := range entries {
		result[i] = LedgerEntryFromDomain(e)
	}
	return result
}

// TransferAcceptedResponse acknowledges an accepted transfer.
type TransferAcceptedResponse struct {
	Status        string `json:"status"`
	CorrelationID string `json:"correlationId"`
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
