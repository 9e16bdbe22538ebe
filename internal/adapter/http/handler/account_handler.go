package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/iskender/paycore/internal/adapter/http/dto"
	"github.com/iskender/paycore/internal/adapter/http/middleware"
	"github.com/iskender/paycore/internal/domain"
	"github.com/iskender/paycore/internal/infrastructure/metrics"
)

// accountService is the slice of AccountUseCase the handler needs.
type accountService interface {
	CreateAccount(ctx context.Context, ownerID, currency string) (*domain.Account, error)
	ListAccounts(ctx context.Context, ownerID string) ([]*domain.Account, error)
	GetAccount(ctx context.Context, iban string) (*domain.Account, error)
	Deposit(ctx context.Context, iban string, amount decimal.Decimal) (*domain.Account, error)
}

// AccountHandler handles account-related HTTP requests.
type AccountHandler struct {
	accountUC accountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountUC accountService) *AccountHandler {
	return &AccountHandler{accountUC: accountUC}
}

// Create opens a new account for the caller.
func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	callerID := middleware.CallerID(r.Context())
	if callerID == "" {
		writeError(w, http.StatusUnauthorized, "missing caller identity", "")
		return
	}

	account, err := h.accountUC.CreateAccount(r.Context(), callerID, req.Currency)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create account", err.Error())
		return
	}

	metrics.AccountsCreated.Inc()
	writeJSON(w, http.StatusCreated, dto.AccountFromDomain(account))
}

// List returns the caller's accounts.
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.CallerID(r.Context())
	if callerID == "" {
		writeError(w, http.StatusUnauthorized, "missing caller identity", "")
		return
	}

	accounts, err := h.accountUC.ListAccounts(r.Context(), callerID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list accounts", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountsFromDomain(accounts))
}

// Get retrieves an account by IBAN. Only the owner may read it.
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	iban := chi.URLParam(r, "iban")
	if iban == "" {
		writeError(w, http.StatusBadRequest, "missing account IBAN", "")
		return
	}

	account, err := h.accountUC.GetAccount(r.Context(), iban)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get account", err.Error())
		return
	}

	if account.OwnerID != middleware.CallerID(r.Context()) {
		writeError(w, http.StatusForbidden, "not account owner", "")
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountFromDomain(account))
}

// Deposit credits funds to an account.
func (h *AccountHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	iban := chi.URLParam(r, "iban")
	if iban == "" {
		writeError(w, http.StatusBadRequest, "missing account IBAN", "")
		return
	}

	var req dto.DepositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	account, err := h.accountUC.Deposit(r.Context(), iban, req.Amount)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to deposit", err.Error())
		return
	}

	metrics.DepositsExecuted.Inc()
	writeJSON(w, http.StatusOK, dto.AccountFromDomain(account))
}
