package usecase

import (
	"context"

	"github.com/iskender/paycore/internal/domain"
)

// LedgerUseCase exposes read access to the audit ledger.
type LedgerUseCase struct {
	accountRepo AccountRepository
	ledgerRepo  LedgerRepository
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(accountRepo AccountRepository, ledgerRepo LedgerRepository) *LedgerUseCase {
	return &LedgerUseCase{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
	}
}

// ListEntriesInput represents input for listing ledger entries.
type ListEntriesInput struct {
	Iban     string
	CallerID string
	Limit    int
	Offset   int
}

// ListEntries lists ledger entries for an account. Only the account
// owner may read its ledger.
func (uc *LedgerUseCase) ListEntries(ctx context.Context, input ListEntriesInput) ([]*domain.LedgerEntry, error) {
	account, err := uc.accountRepo.GetByIban(ctx, input.Iban)
	if err != nil {
		return nil, err
	}

	if account.OwnerID != input.CallerID {
		return nil, domain.ErrNotAccountOwner
	}

	if input.Limit <= 0 {
		input.Limit = 20
	}

	if input.Limit > 100 {
		input.Limit = 100
	}

	return uc.ledgerRepo.ListByAccount(ctx, account.ID, input.Limit, input.Offset)
}
