// Package outbox drains unsent outbox messages to the message broker.
// Delivery is at-least-once: a message is only marked sent after a
// successful publish, so a crash between the two produces a duplicate,
// never a loss.
package outbox

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/iskender/paycore/internal/domain"
	"github.com/iskender/paycore/internal/infrastructure/metrics"
	"github.com/iskender/paycore/internal/usecase"
)

// Publisher delivers a payload to a topic on the broker.
type Publisher interface {
	Publish(ctx context.Context, topic string, payload []byte) error
}

// Relay periodically publishes unsent outbox messages.
type Relay struct {
	outboxRepo     usecase.OutboxRepository
	publisher      Publisher
	logger         *slog.Logger
	batchSize      int
	interval       time.Duration
	publishTimeout time.Duration

	// draining guards against overlapping drains when a slow broker
	// makes one pass outlast the tick interval.
	draining sync.Mutex
}

// Config for Relay.
type Config struct {
	OutboxRepo     usecase.OutboxRepository
	Publisher      Publisher
	Logger         *slog.Logger
	BatchSize      int           // Number of messages to fetch per pass
	Interval       time.Duration // Polling interval
	PublishTimeout time.Duration // Per-message publish deadline
}

// NewRelay creates a new Relay.
func NewRelay(cfg Config) *Relay {
	if cfg.BatchSize == 0 {
		cfg.BatchSize = 100
	}
	if cfg.Interval == 0 {
		cfg.Interval = 10 * time.Second
	}
	if cfg.PublishTimeout == 0 {
		cfg.PublishTimeout = 5 * time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &Relay{
		outboxRepo:     cfg.OutboxRepo,
		publisher:      cfg.Publisher,
		logger:         cfg.Logger,
		batchSize:      cfg.BatchSize,
		interval:       cfg.Interval,
		publishTimeout: cfg.PublishTimeout,
	}
}

// Start runs the relay loop until the context is cancelled. Individual
// publish failures never stop the loop; the message stays unsent and
// the next pass picks it up again.
func (r *Relay) Start(ctx context.Context) error {
	r.logger.Info("outbox relay started",
		slog.Int("batch_size", r.batchSize),
		slog.Duration("interval", r.interval))

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	// Drain immediately on start
	if err := r.DrainOnce(ctx); err != nil {
		r.logger.Error("outbox drain failed on start", slog.String("error", err.Error()))
	}

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("outbox relay shutting down")
			return ctx.Err()
		case <-ticker.C:
			if err := r.DrainOnce(ctx); err != nil {
				r.logger.Error("outbox drain failed", slog.String("error", err.Error()))
			}
		}
	}
}

// DrainOnce fetches one batch of unsent messages and publishes them in
// creation order. Returns an error only when the batch cannot be
// fetched at all.
func (r *Relay) DrainOnce(ctx context.Context) error {
	if !r.draining.TryLock() {
		r.logger.Warn("outbox drain already in progress, skipping pass")
		return nil
	}
	defer r.draining.Unlock()

	messages, err := r.outboxRepo.FindUnsent(ctx, r.batchSize)
	if err != nil {
		return err
	}

	if len(messages) == 0 {
		return nil
	}

	r.logger.Info("draining outbox", slog.Int("count", len(messages)))

	for _, msg := range messages {
		if err := r.publishOne(ctx, msg); err != nil {
			metrics.OutboxPublishFailures.Inc()
			r.logger.Error("failed to publish outbox message",
				slog.String("message_id", msg.ID),
				slog.String("topic", msg.Topic),
				slog.String("error", err.Error()))
			// Leave unsent; the next pass retries it
			continue
		}

		if err := r.outboxRepo.MarkSent(ctx, msg.ID, time.Now().UTC()); err != nil {
			r.logger.Error("failed to mark outbox message as sent",
				slog.String("message_id", msg.ID),
				slog.String("error", err.Error()))
			// The message was delivered; re-publishing on the next
			// pass is the accepted at-least-once duplicate
		} else {
			metrics.OutboxMessagesPublished.Inc()
		}
	}

	return nil
}

func (r *Relay) publishOne(ctx context.Context, msg *domain.OutboxMessage) error {
	pubCtx, cancel := context.WithTimeout(ctx, r.publishTimeout)
	defer cancel()

	return r.publisher.Publish(pubCtx, msg.Topic, msg.Payload)
}

// LogPublisher is a publisher that only logs messages, for local runs
// without a broker.
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher creates a new LogPublisher.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger}
}

// Publish logs the message.
func (p *LogPublisher) Publish(ctx context.Context, topic string, payload []byte) error {
	p.logger.Info("MESSAGE PUBLISHED",
		slog.String("topic", topic),
		slog.String("payload", string(payload)))

	return nil
}
