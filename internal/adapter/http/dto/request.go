package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iskender/paycore/internal/usecase"
)

// CreateAccountRequest represents a request to open an account.
type CreateAccountRequest struct {
	Currency string `json:"currency"`
}

// DepositRequest represents a request to credit an account.
type DepositRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// TransferRequest represents a request to move funds between accounts.
type TransferRequest struct {
	FromIban string          `json:"fromIban"`
	ToIban   string          `json:"toIban"`
	Amount   decimal.Decimal `json:"amount"`
}

// ToUseCaseInput converts to use case input.
func (r *TransferRequest) ToUseCaseInput() usecase.ExecuteTransferInput {
	return usecase.ExecuteTransferInput{
		FromIban: r.FromIban,
		ToIban:   r.ToIban,
		Amount:   r.Amount,
	}
}
