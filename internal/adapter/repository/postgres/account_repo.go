package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iskender/paycore/internal/domain"
	"github.com/iskender/paycore/internal/usecase"
)

// AccountRepository implements usecase.AccountRepository.
type AccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

const accountColumns = `id, iban, owner_id, currency, balance, version, created_at, updated_at`

// Create creates a new account.
func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO accounts (id, iban, owner_id, currency, balance, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		account.ID,
		account.IBAN,
		account.OwnerID,
		account.Currency,
		decimalToNumeric(account.Balance),
		account.Version,
		timeToPgTimestamptz(account.CreatedAt),
		timeToPgTimestamptz(account.UpdatedAt),
	)

	return err
}

// GetByIban retrieves an account by IBAN.
func (r *AccountRepository) GetByIban(ctx context.Context, iban string) (*domain.Account, error) {
	return r.getByIban(ctx, r.pool, iban, "")
}

// GetByIbanTx retrieves an account by IBAN inside tx with a FOR UPDATE
// lock, so concurrent transfers against the same account serialize at
// the row level.
func (r *AccountRepository) GetByIbanTx(ctx context.Context, tx usecase.Transaction, iban string) (*domain.Account, error) {
	return r.getByIban(ctx, executor(tx, r.pool), iban, " FOR UPDATE")
}

func (r *AccountRepository) getByIban(ctx context.Context, db dbtx, iban, locking string) (*domain.Account, error) {
	row := db.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE iban = $1`+locking, iban)

	account, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}

		return nil, err
	}

	return account, nil
}

// GetAllByOwner retrieves all accounts belonging to ownerID.
func (r *AccountRepository) GetAllByOwner(ctx context.Context, ownerID string) ([]*domain.Account, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+accountColumns+` FROM accounts
		WHERE owner_id = $1
		ORDER BY created_at`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []*domain.Account

	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}

		accounts = append(accounts, account)
	}

	return accounts, rows.Err()
}

// SaveBalance persists a new balance under optimistic versioning: the
// update only lands when the stored version still equals
// expectedVersion, and bumps the version by one. A vanished row and a
// stale version are indistinguishable here; both surface as
// ErrVersionConflict and the caller re-reads.
func (r *AccountRepository) SaveBalance(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, expectedVersion int64, updatedAt time.Time) error {
	tag, err := executor(tx, r.pool).Exec(ctx, `
		UPDATE accounts
		SET balance = $2, version = version + 1, updated_at = $3
		WHERE id = $1 AND version = $4`,
		id,
		decimalToNumeric(balance),
		timeToPgTimestamptz(updatedAt),
		expectedVersion,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrVersionConflict
	}

	return nil
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var (
		account   domain.Account
		balance   pgtype.Numeric
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	err := row.Scan(
		&account.ID,
		&account.IBAN,
		&account.OwnerID,
		&account.Currency,
		&balance,
		&account.Version,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	account.Balance = numericToDecimal(balance)
	account.CreatedAt = createdAt.Time
	account.UpdatedAt = updatedAt.Time

	return &account, nil
}
