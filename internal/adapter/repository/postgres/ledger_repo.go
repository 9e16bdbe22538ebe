package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iskender/paycore/internal/domain"
	"github.com/iskender/paycore/internal/usecase"
)

const pgErrUniqueViolation = "23505"

// LedgerRepository implements usecase.LedgerRepository.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

// NewLedgerRepository creates a new LedgerRepository.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

// ExistsWithCorrelationPrefix reports whether any ledger entry carries
// a correlation id starting with prefix. This is the idempotency probe
// for transfers: a completed transfer always leaves both leg suffixes
// behind, so any hit means the correlation id was already processed.
func (r *LedgerRepository) ExistsWithCorrelationPrefix(ctx context.Context, tx usecase.Transaction, prefix string) (bool, error) {
	var exists bool

	err := executor(tx, r.pool).QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM ledger_entries WHERE correlation_id LIKE $1 || '%'
		)`, prefix).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

// Append inserts an immutable ledger entry. The unique constraint on
// correlation_id backstops the idempotency probe under races; a
// violation maps to ErrAlreadyProcessed.
func (r *LedgerRepository) Append(ctx context.Context, tx usecase.Transaction, entry *domain.LedgerEntry) error {
	_, err := executor(tx, r.pool).Exec(ctx, `
		INSERT INTO ledger_entries (id, account_id, amount, entry_type, transaction_date, correlation_id)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		entry.ID,
		entry.AccountID,
		decimalToNumeric(entry.Amount),
		string(entry.Type),
		timeToPgTimestamptz(entry.TransactionDate),
		entry.CorrelationID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
			return domain.ErrAlreadyProcessed
		}

		return err
	}

	return nil
}

// ListByAccount lists ledger entries for an account, newest first.
func (r *LedgerRepository) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.LedgerEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, account_id, amount, entry_type, transaction_date, correlation_id
		FROM ledger_entries
		WHERE account_id = $1
		ORDER BY transaction_date DESC, id DESC
		LIMIT $2 OFFSET $3`,
		accountID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.LedgerEntry

	for rows.Next() {
		var (
			entry           domain.LedgerEntry
			amount          pgtype.Numeric
			entryType       string
			transactionDate pgtype.Timestamptz
		)

		err := rows.Scan(
			&entry.ID,
			&entry.AccountID,
			&amount,
			&entryType,
			&transactionDate,
			&entry.CorrelationID,
		)
		if err != nil {
			return nil, err
		}

		entry.Amount = numericToDecimal(amount)
		entry.Type = domain.EntryType(entryType)
		entry.TransactionDate = transactionDate.Time

		entries = append(entries, &entry)
	}

	return entries, rows.Err()
}
