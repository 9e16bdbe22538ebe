package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/iskender/paycore/internal/adapter/http/dto"
	"github.com/iskender/paycore/internal/adapter/http/middleware"
	"github.com/iskender/paycore/internal/domain"
	"github.com/iskender/paycore/internal/infrastructure/metrics"
	"github.com/iskender/paycore/internal/usecase"
)

// transferService is the slice of TransferUseCase the handler needs.
type transferService interface {
	ExecuteTransfer(ctx context.Context, input usecase.ExecuteTransferInput, correlationID, callerID string) error
}

// TransferHandler handles transfer-related HTTP requests.
type TransferHandler struct {
	transferUC transferService
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(transferUC transferService) *TransferHandler {
	return &TransferHandler{transferUC: transferUC}
}

// Create executes a transfer. The X-Correlation-ID header is the
// caller's idempotency key; a replay of a processed id gets 409.
func (h *TransferHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	correlationID := r.Header.Get(middleware.HeaderCorrelationID)
	if correlationID == "" {
		writeError(w, http.StatusBadRequest, "missing correlation id", middleware.HeaderCorrelationID+" header is required")
		return
	}

	callerID := middleware.CallerID(r.Context())
	if callerID == "" {
		writeError(w, http.StatusUnauthorized, "missing caller identity", "")
		return
	}

	start := time.Now()

	err := h.transferUC.ExecuteTransfer(r.Context(), req.ToUseCaseInput(), correlationID, callerID)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyProcessed) {
			metrics.TransfersReplayed.Inc()
		} else {
			metrics.TransferErrors.WithLabelValues(errorReason(err)).Inc()
		}

		writeError(w, mapDomainError(err), "failed to execute transfer", err.Error())
		return
	}

	metrics.TransfersExecuted.Inc()
	metrics.TransferDuration.Observe(time.Since(start).Seconds())

	writeJSON(w, http.StatusAccepted, dto.TransferAcceptedResponse{
		Status:        "accepted",
		CorrelationID: correlationID,
	})
}

func errorReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrAccountNotFound):
		return "account_not_found"
	case errors.Is(err, domain.ErrNotAccountOwner):
		return "not_owner"
	case errors.Is(err, domain.ErrVersionConflict):
		return "version_conflict"
	case errors.Is(err, domain.ErrCurrencyMismatch):
		return "currency_mismatch"
	case errors.Is(err, domain.ErrSameAccount),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidIBAN):
		return "validation"
	default:
		return "internal"
	}
}
