package domain

import "errors"

var (
	// Account errors
	ErrAccountNotFound = errors.New("account not found")
	ErrNotAccountOwner = errors.New("caller does not own the source account")

	// Transfer errors
	ErrAlreadyProcessed  = errors.New("correlation id already processed")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrSameAccount       = errors.New("cannot transfer to same account")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrCurrencyMismatch  = errors.New("cannot transfer between different currencies")
	ErrVersionConflict   = errors.New("account version conflict")
	ErrEventEncoding     = errors.New("failed to encode event payload")

	// Validation errors
	ErrInvalidIBAN           = errors.New("invalid iban")
	ErrInvalidCurrency       = errors.New("invalid currency code")
	ErrMissingCorrelationID  = errors.New("missing correlation id")
	ErrMissingCallerIdentity = errors.New("missing caller identity")

	// Auth errors
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)
