package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a bank account addressable by IBAN.
//
// Version is an optimistic-concurrency counter: balance writes commit
// only against the version that was read, otherwise the whole
// operation aborts with ErrVersionConflict.
type Account struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	ID        string
	IBAN      string
	OwnerID   string
	Currency  string
	Balance   decimal.Decimal
	Version   int64
}

// CanDebit reports whether the account holds at least amount.
func (a *Account) CanDebit(amount decimal.Decimal) bool {
	return a.Balance.GreaterThanOrEqual(amount)
}

// ApplyDebit returns the balance after a debit of amount.
func (a *Account) ApplyDebit(amount decimal.Decimal) decimal.Decimal {
	return a.Balance.Sub(amount)
}

// ApplyCredit returns the balance after a credit of amount.
func (a *Account) ApplyCredit(amount decimal.Decimal) decimal.Decimal {
	return a.Balance.Add(amount)
}
