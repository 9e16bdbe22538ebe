package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iskender/paycore/internal/adapter/http/dto"
	"github.com/iskender/paycore/internal/adapter/http/middleware"
	"github.com/iskender/paycore/internal/domain"
	"github.com/iskender/paycore/internal/usecase"
)

// ledgerService is the slice of LedgerUseCase the handler needs.
type ledgerService interface {
	ListEntries(ctx context.Context, input usecase.ListEntriesInput) ([]*domain.LedgerEntry, error)
}

// LedgerHandler handles ledger read requests.
type LedgerHandler struct {
	ledgerUC ledgerService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerUC ledgerService) *LedgerHandler {
	return &LedgerHandler{ledgerUC: ledgerUC}
}

// ListByAccount lists ledger entries for an account IBAN.
func (h *LedgerHandler) ListByAccount(w http.ResponseWriter, r *http.Request) {
	iban := chi.URLParam(r, "iban")
	if iban == "" {
		writeError(w, http.StatusBadRequest, "missing account IBAN", "")
		return
	}

	callerID := middleware.CallerID(r.Context())
	if callerID == "" {
		writeError(w, http.StatusUnauthorized, "missing caller identity", "")
		return
	}

	entries, err := h.ledgerUC.ListEntries(r.Context(), usecase.ListEntriesInput{
		Iban:     iban,
		CallerID: callerID,
		Limit:    parseIntQuery(r, "limit", 20),
		Offset:   parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list ledger entries", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.LedgerEntriesFromDomain(entries))
}
