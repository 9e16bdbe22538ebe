package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iskender/paycore/internal/domain"
)

// TransferUseCase executes funds transfers with exactly-once economic
// effect. Every call runs as one atomic unit of work: idempotency
// probe, balance mutation under optimistic versioning, the two ledger
// legs, and the outbox row either all commit or none do.
type TransferUseCase struct {
	txManager   TransactionManager
	accountRepo AccountRepository
	ledgerRepo  LedgerRepository
	outboxRepo  OutboxRepository
	codec       EventCodec
	idGen       IDGenerator
	retrier     Retrier
}

// NewTransferUseCase creates a new TransferUseCase.
func NewTransferUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	ledgerRepo LedgerRepository,
	outboxRepo OutboxRepository,
	codec EventCodec,
	idGen IDGenerator,
	retrier Retrier,
) *TransferUseCase {
	return &TransferUseCase{
		txManager:   txManager,
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
		outboxRepo:  outboxRepo,
		codec:       codec,
		idGen:       idGen,
		retrier:     retrier,
	}
}

// ExecuteTransferInput represents a transfer request.
type ExecuteTransferInput struct {
	FromIban string
	ToIban   string
	Amount   decimal.Decimal
}

// ExecuteTransfer moves Amount from FromIban to ToIban on behalf of
// callerID. correlationID is the caller-supplied idempotency key;
// retrying with the same id is a no-op reported as ErrAlreadyProcessed.
// Version conflicts are retried through the injected Retrier; all
// other failures are terminal for the call.
func (uc *TransferUseCase) ExecuteTransfer(ctx context.Context, input ExecuteTransferInput, correlationID, callerID string) error {
	if correlationID == "" {
		return domain.ErrMissingCorrelationID
	}

	if callerID == "" {
		return domain.ErrMissingCallerIdentity
	}

	if err := domain.ValidateIBAN(input.FromIban); err != nil {
		return err
	}

	if err := domain.ValidateIBAN(input.ToIban); err != nil {
		return err
	}

	if input.FromIban == input.ToIban {
		return domain.ErrSameAccount
	}

	if err := domain.ValidateAmount(input.Amount); err != nil {
		return err
	}

	if uc.retrier == nil {
		return uc.executeOnce(ctx, input, correlationID, callerID)
	}

	return uc.retrier.Retry(ctx, func() error {
		return uc.executeOnce(ctx, input, correlationID, callerID)
	})
}

// executeOnce runs one attempt of the orchestration inside a single
// transaction.
func (uc *TransferUseCase) executeOnce(ctx context.Context, input ExecuteTransferInput, correlationID, callerID string) error {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	processed, err := uc.ledgerRepo.ExistsWithCorrelationPrefix(ctx, tx, correlationID)
	if err != nil {
		return err
	}

	if processed {
		return fmt.Errorf("%w: %s", domain.ErrAlreadyProcessed, correlationID)
	}

	fromAccount, err := uc.accountRepo.GetByIbanTx(ctx, tx, input.FromIban)
	if err != nil {
		return err
	}

	if fromAccount.OwnerID != callerID {
		return domain.ErrNotAccountOwner
	}

	toAccount, err := uc.accountRepo.GetByIbanTx(ctx, tx, input.ToIban)
	if err != nil {
		return err
	}

	if fromAccount.Currency != toAccount.Currency {
		return domain.ErrCurrencyMismatch
	}

	if !fromAccount.CanDebit(input.Amount) {
		return domain.ErrInsufficientFunds
	}

	now := time.Now().UTC()

	err = uc.accountRepo.SaveBalance(ctx, tx, fromAccount.ID, fromAccount.ApplyDebit(input.Amount), fromAccount.Version, now)
	if err != nil {
		return err
	}

	err = uc.accountRepo.SaveBalance(ctx, tx, toAccount.ID, toAccount.ApplyCredit(input.Amount), toAccount.Version, now)
	if err != nil {
		return err
	}

	debitEntry := &domain.LedgerEntry{
		ID:              uc.idGen.Generate(),
		AccountID:       fromAccount.ID,
		Amount:          input.Amount.Neg(),
		Type:            domain.EntryTypeDebit,
		TransactionDate: now,
		CorrelationID:   domain.DebitCorrelationID(correlationID),
	}

	if err := uc.ledgerRepo.Append(ctx, tx, debitEntry); err != nil {
		return err
	}

	creditEntry := &domain.LedgerEntry{
		ID:              uc.idGen.Generate(),
		AccountID:       toAccount.ID,
		Amount:          input.Amount,
		Type:            domain.EntryTypeCredit,
		TransactionDate: now,
		CorrelationID:   domain.CreditCorrelationID(correlationID),
	}

	if err := uc.ledgerRepo.Append(ctx, tx, creditEntry); err != nil {
		return err
	}

	event := domain.TransferCompletedEvent{
		PayerID:         fromAccount.OwnerID,
		Amount:          input.Amount,
		DestinationIban: input.ToIban,
	}

	// A committed transfer without its event would be invisible to
	// downstream consumers, so an encoding failure aborts everything.
	payload, err := uc.codec.Encode(event)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrEventEncoding, err)
	}

	msg := &domain.OutboxMessage{
		ID:        uc.idGen.Generate(),
		Topic:     domain.TopicTransactionEvents,
		Payload:   payload,
		CreatedAt: now,
		Sent:      false,
	}

	if err := uc.outboxRepo.Save(ctx, tx, msg); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
