package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	adaptershttp "github.com/iskender/paycore/internal/adapter/http"
	"github.com/iskender/paycore/internal/adapter/http/dto"
	"github.com/iskender/paycore/internal/adapter/http/handler"
	"github.com/iskender/paycore/internal/adapter/repository/postgres"
	"github.com/iskender/paycore/internal/infrastructure/codec"
	"github.com/iskender/paycore/internal/usecase"
	"github.com/iskender/paycore/tests/testutil"
)

const (
	ibanSource = "TR111111111111111111111111"
	ibanDest   = "TR222222222222222222222222"
)

func newTestRouter(testDB *testutil.TestDB) http.Handler {
	pool := testDB.Pool
	txManager := postgres.NewTxManager(pool)
	accountRepo := postgres.NewAccountRepository(pool)
	ledgerRepo := postgres.NewLedgerRepository(pool)
	outboxRepo := postgres.NewOutboxRepository(pool)
	retrier := postgres.NewRetrier()
	idGen := postgres.NewULIDGenerator()

	accountUC := usecase.NewAccountUseCase(txManager, accountRepo, idGen, retrier)
	transferUC := usecase.NewTransferUseCase(txManager, accountRepo, ledgerRepo, outboxRepo, codec.NewJSONCodec(), idGen, retrier)
	ledgerUC := usecase.NewLedgerUseCase(accountRepo, ledgerRepo)

	return adaptershttp.NewRouter(adaptershttp.RouterConfig{
		AccountHandler:  handler.NewAccountHandler(accountUC),
		TransferHandler: handler.NewTransferHandler(transferUC),
		LedgerHandler:   handler.NewLedgerHandler(ledgerUC),
		HealthHandler:   handler.NewHealthHandler(pool, nil),
		Logger:          zerolog.Nop(),
	})
}

func postTransfer(router http.Handler, userID, correlationID, amount string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(dto.TransferRequest{
		FromIban: ibanSource,
		ToIban:   ibanDest,
		Amount:   decimal.RequireFromString(amount),
	})

	r := httptest.NewRequest(http.MethodPost, "/api/v1/transfers", bytes.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	r.Header.Set("X-User-Id", userID)
	r.Header.Set("X-Correlation-ID", correlationID)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

func TestTransfer(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()

	router := newTestRouter(testDB)

	t.Run("moves funds and writes both ledger legs", func(t *testing.T) {
		testDB.TruncateAll(ctx)
		source := testDB.CreateTestAccount(ctx, "user-1", ibanSource, "EUR", decimal.RequireFromString("200.00"))
		dest := testDB.CreateTestAccount(ctx, "user-2", ibanDest, "EUR", decimal.RequireFromString("50.00"))

		w := postTransfer(router, "user-1", "corr-1", "100.00")
		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d: %s", w.Code, w.Body.String())
		}

		srcBalance, srcVersion := testDB.AccountBalance(ctx, source.ID)
		if !srcBalance.Equal(decimal.RequireFromString("100.00")) || srcVersion != 2 {
			t.Fatalf("expected source 100.00 v2, got %s v%d", srcBalance, srcVersion)
		}

		destBalance, destVersion := testDB.AccountBalance(ctx, dest.ID)
		if !destBalance.Equal(decimal.RequireFromString("150.00")) || destVersion != 2 {
			t.Fatalf("expected dest 150.00 v2, got %s v%d", destBalance, destVersion)
		}

		if got := testDB.CountLedgerEntries(ctx, "corr-1"); got != 2 {
			t.Fatalf("expected 2 ledger legs, got %d", got)
		}
	})

	t.Run("rejects replayed correlation id without a second mutation", func(t *testing.T) {
		testDB.TruncateAll(ctx)
		source := testDB.CreateTestAccount(ctx, "user-1", ibanSource, "EUR", decimal.RequireFromString("200.00"))
		testDB.CreateTestAccount(ctx, "user-2", ibanDest, "EUR", decimal.RequireFromString("50.00"))

		if w := postTransfer(router, "user-1", "corr-1", "100.00"); w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}
		if w := postTransfer(router, "user-1", "corr-1", "100.00"); w.Code != http.StatusConflict {
			t.Fatalf("expected 409 on replay, got %d", w.Code)
		}

		balance, _ := testDB.AccountBalance(ctx, source.ID)
		if !balance.Equal(decimal.RequireFromString("100.00")) {
			t.Fatalf("expected single debit, got balance %s", balance)
		}
		if got := testDB.CountLedgerEntries(ctx, "corr-1"); got != 2 {
			t.Fatalf("expected 2 ledger legs after replay, got %d", got)
		}
	})

	t.Run("concurrent submissions of one correlation id debit once", func(t *testing.T) {
		testDB.TruncateAll(ctx)
		source := testDB.CreateTestAccount(ctx, "user-1", ibanSource, "EUR", decimal.RequireFromString("200.00"))
		testDB.CreateTestAccount(ctx, "user-2", ibanDest, "EUR", decimal.RequireFromString("50.00"))

		const workers = 8
		codes := make([]int, workers)

		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				codes[i] = postTransfer(router, "user-1", "corr-race", "100.00").Code
			}(i)
		}
		wg.Wait()

		accepted := 0
		for _, code := range codes {
			if code == http.StatusAccepted {
				accepted++
			}
		}
		if accepted != 1 {
			t.Fatalf("expected exactly one accepted submission, got %d (codes %v)", accepted, codes)
		}

		balance, _ := testDB.AccountBalance(ctx, source.ID)
		if !balance.Equal(decimal.RequireFromString("100.00")) {
			t.Fatalf("expected exactly one debit, got balance %s", balance)
		}
	})

	t.Run("independent transfers are serialized by versioning", func(t *testing.T) {
		testDB.TruncateAll(ctx)
		source := testDB.CreateTestAccount(ctx, "user-1", ibanSource, "EUR", decimal.RequireFromString("200.00"))
		testDB.CreateTestAccount(ctx, "user-2", ibanDest, "EUR", decimal.RequireFromString("50.00"))

		const workers = 4
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				w := postTransfer(router, "user-1", fmt.Sprintf("corr-par-%d", i), "25.00")
				if w.Code != http.StatusAccepted {
					t.Errorf("transfer %d failed: %d %s", i, w.Code, w.Body.String())
				}
			}(i)
		}
		wg.Wait()

		balance, version := testDB.AccountBalance(ctx, source.ID)
		if !balance.Equal(decimal.RequireFromString("100.00")) {
			t.Fatalf("expected 200.00 - 4*25.00 = 100.00, got %s", balance)
		}
		if version != workers+1 {
			t.Fatalf("expected version %d, got %d", workers+1, version)
		}
	})

	t.Run("rejects insufficient funds", func(t *testing.T) {
		testDB.TruncateAll(ctx)
		source := testDB.CreateTestAccount(ctx, "user-1", ibanSource, "EUR", decimal.RequireFromString("200.00"))
		testDB.CreateTestAccount(ctx, "user-2", ibanDest, "EUR", decimal.RequireFromString("50.00"))

		if w := postTransfer(router, "user-1", "corr-over", "200.01"); w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}

		balance, version := testDB.AccountBalance(ctx, source.ID)
		if !balance.Equal(decimal.RequireFromString("200.00")) || version != 1 {
			t.Fatalf("expected untouched account, got %s v%d", balance, version)
		}
		if got := testDB.CountLedgerEntries(ctx, "corr-over"); got != 0 {
			t.Fatalf("expected no ledger legs, got %d", got)
		}
	})

	t.Run("rejects caller who does not own the source", func(t *testing.T) {
		testDB.TruncateAll(ctx)
		testDB.CreateTestAccount(ctx, "user-1", ibanSource, "EUR", decimal.RequireFromString("200.00"))
		testDB.CreateTestAccount(ctx, "user-2", ibanDest, "EUR", decimal.RequireFromString("50.00"))

		if w := postTransfer(router, "user-2", "corr-owner", "100.00"); w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("lists ledger entries for the owner", func(t *testing.T) {
		testDB.TruncateAll(ctx)
		testDB.CreateTestAccount(ctx, "user-1", ibanSource, "EUR", decimal.RequireFromString("200.00"))
		testDB.CreateTestAccount(ctx, "user-2", ibanDest, "EUR", decimal.RequireFromString("50.00"))

		if w := postTransfer(router, "user-1", "corr-list", "100.00"); w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}

		r := httptest.NewRequest(http.MethodGet, "/api/v1/accounts/"+ibanSource+"/entries", nil)
		r.Header.Set("X-User-Id", "user-1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var entries []dto.LedgerEntryResponse
		if err := json.Unmarshal(w.Body.Bytes(), &entries); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}
		if len(entries) != 1 {
			t.Fatalf("expected 1 entry on the source account, got %d", len(entries))
		}
		if entries[0].Type != "DEBIT" || entries[0].CorrelationID != "corr-list-D" {
			t.Fatalf("unexpected entry: %+v", entries[0])
		}
	})
}
