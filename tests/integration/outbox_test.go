package integration

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iskender/paycore/internal/adapter/repository/postgres"
	"github.com/iskender/paycore/internal/domain"
	"github.com/iskender/paycore/internal/infrastructure/codec"
	"github.com/iskender/paycore/internal/infrastructure/outbox"
	"github.com/iskender/paycore/internal/usecase"
	"github.com/iskender/paycore/tests/testutil"
)

type capturingPublisher struct {
	mu        sync.Mutex
	published []capturedMessage
	failNext  bool
}

type capturedMessage struct {
	topic   string
	payload []byte
}

func (p *capturingPublisher) Publish(ctx context.Context, topic string, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.failNext {
		p.failNext = false
		return errors.New("broker unavailable")
	}

	p.published = append(p.published, capturedMessage{topic: topic, payload: payload})
	return nil
}

func newTransferUseCase(testDB *testutil.TestDB) (*usecase.TransferUseCase, usecase.OutboxRepository) {
	pool := testDB.Pool
	txManager := postgres.NewTxManager(pool)
	accountRepo := postgres.NewAccountRepository(pool)
	ledgerRepo := postgres.NewLedgerRepository(pool)
	outboxRepo := postgres.NewOutboxRepository(pool)
	retrier := postgres.NewRetrier()
	idGen := postgres.NewULIDGenerator()

	uc := usecase.NewTransferUseCase(txManager, accountRepo, ledgerRepo, outboxRepo, codec.NewJSONCodec(), idGen, retrier)
	return uc, outboxRepo
}

func TestOutboxMessageWrittenWithTransfer(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	transferUC, outboxRepo := newTransferUseCase(testDB)

	testDB.CreateTestAccount(ctx, "user-1", ibanSource, "EUR", decimal.RequireFromString("200.00"))
	testDB.CreateTestAccount(ctx, "user-2", ibanDest, "EUR", decimal.RequireFromString("50.00"))

	err := transferUC.ExecuteTransfer(ctx, usecase.ExecuteTransferInput{
		FromIban: ibanSource,
		ToIban:   ibanDest,
		Amount:   decimal.RequireFromString("100.00"),
	}, "corr-1", "user-1")
	if err != nil {
		t.Fatalf("failed to execute transfer: %v", err)
	}

	messages, err := outboxRepo.FindUnsent(ctx, 10)
	if err != nil {
		t.Fatalf("failed to fetch unsent messages: %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("expected 1 unsent message, got %d", len(messages))
	}

	msg := messages[0]
	if msg.Topic != domain.TopicTransactionEvents {
		t.Fatalf("expected topic %s, got %s", domain.TopicTransactionEvents, msg.Topic)
	}

	var event map[string]string
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		t.Fatalf("failed to parse payload: %v", err)
	}
	if event["payerId"] != "user-1" || event["destinationIban"] != ibanDest {
		t.Fatalf("unexpected event payload: %s", msg.Payload)
	}
	if !decimal.RequireFromString(event["amount"]).Equal(decimal.RequireFromString("100.00")) {
		t.Fatalf("unexpected event amount: %s", event["amount"])
	}
}

func TestOutboxRelayDrainsAndMarksSent(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	transferUC, outboxRepo := newTransferUseCase(testDB)

	testDB.CreateTestAccount(ctx, "user-1", ibanSource, "EUR", decimal.RequireFromString("200.00"))
	testDB.CreateTestAccount(ctx, "user-2", ibanDest, "EUR", decimal.RequireFromString("50.00"))

	for _, corr := range []string{"corr-1", "corr-2"} {
		err := transferUC.ExecuteTransfer(ctx, usecase.ExecuteTransferInput{
			FromIban: ibanSource,
			ToIban:   ibanDest,
			Amount:   decimal.RequireFromString("10.00"),
		}, corr, "user-1")
		if err != nil {
			t.Fatalf("failed to execute transfer %s: %v", corr, err)
		}
	}

	publisher := &capturingPublisher{}
	relay := outbox.NewRelay(outbox.Config{
		OutboxRepo: outboxRepo,
		Publisher:  publisher,
		Logger:     slog.Default(),
	})

	if err := relay.DrainOnce(ctx); err != nil {
		t.Fatalf("drain failed: %v", err)
	}

	if len(publisher.published) != 2 {
		t.Fatalf("expected 2 published messages, got %d", len(publisher.published))
	}

	remaining, err := outboxRepo.FindUnsent(ctx, 10)
	if err != nil {
		t.Fatalf("failed to fetch unsent messages: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("expected all messages marked sent, got %d unsent", len(remaining))
	}
}

func TestOutboxRelayRetriesFailedPublish(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	transferUC, outboxRepo := newTransferUseCase(testDB)

	testDB.CreateTestAccount(ctx, "user-1", ibanSource, "EUR", decimal.RequireFromString("200.00"))
	testDB.CreateTestAccount(ctx, "user-2", ibanDest, "EUR", decimal.RequireFromString("50.00"))

	err := transferUC.ExecuteTransfer(ctx, usecase.ExecuteTransferInput{
		FromIban: ibanSource,
		ToIban:   ibanDest,
		Amount:   decimal.RequireFromString("10.00"),
	}, "corr-1", "user-1")
	if err != nil {
		t.Fatalf("failed to execute transfer: %v", err)
	}

	publisher := &capturingPublisher{failNext: true}
	relay := outbox.NewRelay(outbox.Config{
		OutboxRepo: outboxRepo,
		Publisher:  publisher,
		Logger:     slog.Default(),
	})

	// First pass fails; the message must stay unsent
	if err := relay.DrainOnce(ctx); err != nil {
		t.Fatalf("drain failed: %v", err)
	}
	remaining, _ := outboxRepo.FindUnsent(ctx, 10)
	if len(remaining) != 1 {
		t.Fatalf("expected message to stay unsent after failed publish, got %d", len(remaining))
	}

	// Second pass delivers it
	if err := relay.DrainOnce(ctx); err != nil {
		t.Fatalf("drain failed: %v", err)
	}
	if len(publisher.published) != 1 {
		t.Fatalf("expected message delivered on retry, got %d", len(publisher.published))
	}
	remaining, _ = outboxRepo.FindUnsent(ctx, 10)
	if len(remaining) != 0 {
		t.Fatalf("expected no unsent messages after retry, got %d", len(remaining))
	}
}
