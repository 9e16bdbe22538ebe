package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iskender/paycore/internal/adapter/http/dto"
	"github.com/iskender/paycore/internal/adapter/http/middleware"
	"github.com/iskender/paycore/internal/domain"
	"github.com/iskender/paycore/internal/usecase"
)

type transferServiceStub struct {
	executeFn func(ctx context.Context, input usecase.ExecuteTransferInput, correlationID, callerID string) error
}

func (s *transferServiceStub) ExecuteTransfer(ctx context.Context, input usecase.ExecuteTransferInput, correlationID, callerID string) error {
	return s.executeFn(ctx, input, correlationID, callerID)
}

func newTransferRequest(t *testing.T, correlationID, callerID string) *http.Request {
	t.Helper()

	body, err := json.Marshal(dto.TransferRequest{
		FromIban: "TR111111111111111111111111",
		ToIban:   "TR222222222222222222222222",
		Amount:   decimal.RequireFromString("100.00"),
	})
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/transfers", bytes.NewReader(body))
	if correlationID != "" {
		req.Header.Set(middleware.HeaderCorrelationID, correlationID)
	}
	if callerID != "" {
		ctx := context.WithValue(req.Context(), middleware.CallerIDContextKey, callerID)
		req = req.WithContext(ctx)
	}

	return req
}

func TestTransferHandler_Create_Accepted(t *testing.T) {
	var gotCorrelation, gotCaller string
	var gotInput usecase.ExecuteTransferInput

	h := NewTransferHandler(&transferServiceStub{
		executeFn: func(ctx context.Context, input usecase.ExecuteTransferInput, correlationID, callerID string) error {
			gotInput = input
			gotCorrelation = correlationID
			gotCaller = callerID
			return nil
		},
	})

	rec := httptest.NewRecorder()
	h.Create(rec, newTransferRequest(t, "corr-1", "user-1"))

	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
	if gotCorrelation != "corr-1" || gotCaller != "user-1" {
		t.Fatalf("expected corr-1/user-1, got %s/%s", gotCorrelation, gotCaller)
	}
	if gotInput.FromIban != "TR111111111111111111111111" {
		t.Fatalf("unexpected input: %+v", gotInput)
	}

	var resp dto.TransferAcceptedResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Status != "accepted" || resp.CorrelationID != "corr-1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestTransferHandler_Create_ErrorStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"replay", domain.ErrAlreadyProcessed, http.StatusConflict},
		{"version conflict", domain.ErrVersionConflict, http.StatusConflict},
		{"source missing", domain.ErrAccountNotFound, http.StatusNotFound},
		{"not owner", domain.ErrNotAccountOwner, http.StatusForbidden},
		{"insufficient funds", domain.ErrInsufficientFunds, http.StatusUnprocessableEntity},
		{"same account", domain.ErrSameAccount, http.StatusBadRequest},
		{"bad amount", domain.ErrInvalidAmount, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewTransferHandler(&transferServiceStub{
				executeFn: func(ctx context.Context, input usecase.ExecuteTransferInput, correlationID, callerID string) error {
					return tt.err
				},
			})

			rec := httptest.NewRecorder()
			h.Create(rec, newTransferRequest(t, "corr-1", "user-1"))

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, rec.Code)
			}
		})
	}
}

func TestTransferHandler_Create_MissingCorrelationID(t *testing.T) {
	h := NewTransferHandler(&transferServiceStub{
		executeFn: func(ctx context.Context, input usecase.ExecuteTransferInput, correlationID, callerID string) error {
			t.Fatal("usecase should not be called")
			return nil
		},
	})

	rec := httptest.NewRecorder()
	h.Create(rec, newTransferRequest(t, "", "user-1"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTransferHandler_Create_MissingCaller(t *testing.T) {
	h := NewTransferHandler(&transferServiceStub{
		executeFn: func(ctx context.Context, input usecase.ExecuteTransferInput, correlationID, callerID string) error {
			t.Fatal("usecase should not be called")
			return nil
		},
	})

	rec := httptest.NewRecorder()
	h.Create(rec, newTransferRequest(t, "corr-1", ""))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestTransferHandler_Create_InvalidBody(t *testing.T) {
	h := NewTransferHandler(&transferServiceStub{
		executeFn: func(ctx context.Context, input usecase.ExecuteTransferInput, correlationID, callerID string) error {
			return nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/transfers", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
