package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iskender/paycore/internal/domain"
)

// AccountRepository defines data access for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByIban(ctx context.Context, iban string) (*domain.Account, error)
	GetByIbanTx(ctx context.Context, tx Transaction, iban string) (*domain.Account, error)
	GetAllByOwner(ctx context.Context, ownerID string) ([]*domain.Account, error)
	// SaveBalance persists a new balance for the account iff its stored
	// version still equals expectedVersion, bumping the version.
	// Returns domain.ErrVersionConflict on a mismatch.
	SaveBalance(ctx context.Context, tx Transaction, id string, balance decimal.Decimal, expectedVersion int64, updatedAt time.Time) error
}

// LedgerRepository defines data access for ledger entries.
type LedgerRepository interface {
	// ExistsWithCorrelationPrefix reports whether any ledger entry has a
	// correlation id starting with prefix.
	ExistsWithCorrelationPrefix(ctx context.Context, tx Transaction, prefix string) (bool, error)
	Append(ctx context.Context, tx Transaction, entry *domain.LedgerEntry) error
	ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.LedgerEntry, error)
}

// OutboxRepository defines data access for outbox messages.
type OutboxRepository interface {
	Save(ctx context.Context, tx Transaction, msg *domain.OutboxMessage) error
	FindUnsent(ctx context.Context, limit int) ([]*domain.OutboxMessage, error)
	MarkSent(ctx context.Context, id string, sentAt time.Time) error
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// EventCodec serializes event payloads for the outbox.
type EventCodec interface {
	Encode(event any) ([]byte, error)
}

// Retrier re-runs an operation on retryable failures such as version
// conflicts and storage serialization errors.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IdempotencyStore handles idempotent-response storage at the boundary.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
