package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iskender/paycore/internal/domain"
	"github.com/iskender/paycore/internal/usecase"
)

// OutboxRepository implements usecase.OutboxRepository.
type OutboxRepository struct {
	pool *pgxpool.Pool
}

// NewOutboxRepository creates a new OutboxRepository.
func NewOutboxRepository(pool *pgxpool.Pool) *OutboxRepository {
	return &OutboxRepository{pool: pool}
}

// Save inserts an unsent outbox message within tx, so it commits or
// rolls back together with the business state that produced it.
func (r *OutboxRepository) Save(ctx context.Context, tx usecase.Transaction, msg *domain.OutboxMessage) error {
	_, err := executor(tx, r.pool).Exec(ctx, `
		INSERT INTO outbox_messages (id, topic, payload, created_at, sent)
		VALUES ($1, $2, $3, $4, $5)`,
		msg.ID,
		msg.Topic,
		msg.Payload,
		timeToPgTimestamptz(msg.CreatedAt),
		msg.Sent,
	)

	return err
}

// FindUnsent retrieves unsent messages, oldest first.
func (r *OutboxRepository) FindUnsent(ctx context.Context, limit int) ([]*domain.OutboxMessage, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, topic, payload, created_at, sent, sent_at
		FROM outbox_messages
		WHERE sent = false
		ORDER BY created_at
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*domain.OutboxMessage

	for rows.Next() {
		var (
			msg       domain.OutboxMessage
			createdAt pgtype.Timestamptz
			sentAt    pgtype.Timestamptz
		)

		err := rows.Scan(&msg.ID, &msg.Topic, &msg.Payload, &createdAt, &msg.Sent, &sentAt)
		if err != nil {
			return nil, err
		}

		msg.CreatedAt = createdAt.Time
		if sentAt.Valid {
			t := sentAt.Time
			msg.SentAt = &t
		}

		messages = append(messages, &msg)
	}

	return messages, rows.Err()
}

// MarkSent flags a message as published.
func (r *OutboxRepository) MarkSent(ctx context.Context, id string, sentAt time.Time) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE outbox_messages
		SET sent = true, sent_at = $2
		WHERE id = $1`,
		id, timeToPgTimestamptz(sentAt))

	return err
}
