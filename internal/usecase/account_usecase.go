package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iskender/paycore/internal/domain"
)

// AccountUseCase handles account lifecycle and deposits.
type AccountUseCase struct {
	txManager   TransactionManager
	accountRepo AccountRepository
	idGen       IDGenerator
	retrier     Retrier
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(txManager TransactionManager, accountRepo AccountRepository, idGen IDGenerator, retrier Retrier) *AccountUseCase {
	return &AccountUseCase{
		txManager:   txManager,
		accountRepo: accountRepo,
		idGen:       idGen,
		retrier:     retrier,
	}
}

// CreateAccount opens a zero-balance account for ownerID with a
// generated IBAN.
func (uc *AccountUseCase) CreateAccount(ctx context.Context, ownerID, currency string) (*domain.Account, error) {
	if ownerID == "" {
		return nil, domain.ErrMissingCallerIdentity
	}

	if err := domain.ValidateCurrency(currency); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := &domain.Account{
		ID:        uc.idGen.Generate(),
		IBAN:      domain.GenerateIBAN(domain.DefaultIBANCountry),
		OwnerID:   ownerID,
		Currency:  currency,
		Balance:   decimal.Zero,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// ListAccounts returns all accounts belonging to ownerID.
func (uc *AccountUseCase) ListAccounts(ctx context.Context, ownerID string) ([]*domain.Account, error) {
	return uc.accountRepo.GetAllByOwner(ctx, ownerID)
}

// GetAccount retrieves an account by IBAN.
func (uc *AccountUseCase) GetAccount(ctx context.Context, iban string) (*domain.Account, error) {
	return uc.accountRepo.GetByIban(ctx, iban)
}

// Deposit credits amount to the account identified by iban, under the
// same optimistic-versioning rules as transfers.
func (uc *AccountUseCase) Deposit(ctx context.Context, iban string, amount decimal.Decimal) (*domain.Account, error) {
	if err := domain.ValidateIBAN(iban); err != nil {
		return nil, err
	}

	if err := domain.ValidateAmount(amount); err != nil {
		return nil, err
	}

	if uc.retrier == nil {
		return uc.depositOnce(ctx, iban, amount)
	}

	var account *domain.Account

	err := uc.retrier.Retry(ctx, func() error {
		var opErr error
		account, opErr = uc.depositOnce(ctx, iban, amount)
		return opErr
	})
	if err != nil {
		return nil, err
	}

	return account, nil
}

func (uc *AccountUseCase) depositOnce(ctx context.Context, iban string, amount decimal.Decimal) (*domain.Account, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	account, err := uc.accountRepo.GetByIbanTx(ctx, tx, iban)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	newBalance := account.ApplyCredit(amount)

	if err := uc.accountRepo.SaveBalance(ctx, tx, account.ID, newBalance, account.Version, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	account.Balance = newBalance
	account.Version++
	account.UpdatedAt = now

	return account, nil
}
