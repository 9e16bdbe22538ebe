package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation constants
const (
	// IBANLength is the fixed length of a structured IBAN:
	// 2-letter country prefix followed by 24 digits.
	IBANLength = 26

	MaxTransferAmount = "1000000000000" // 1 trillion
	MinTransferAmount = "0.01"
)

var ibanRegex = regexp.MustCompile(`^[A-Z]{2}[0-9]{24}$`)

// Valid currency codes (ISO 4217)
var validCurrencies = map[string]bool{
	"USD": true, "EUR": true, "GBP": true, "JPY": true,
	"CNY": true, "AUD": true, "CAD": true, "CHF": true,
	"SEK": true, "NZD": true, "KRW": true, "SGD": true,
	"NOK": true, "MXN": true, "INR": true, "BRL": true,
	"ZAR": true, "RUB": true, "TRY": true, "HKD": true,
}

// ValidateIBAN validates the structured IBAN format.
func ValidateIBAN(iban string) error {
	if len(iban) != IBANLength {
		return fmt.Errorf("%w: must be %d characters", ErrInvalidIBAN, IBANLength)
	}

	if !ibanRegex.MatchString(iban) {
		return fmt.Errorf("%w: must be a 2-letter country prefix followed by 24 digits", ErrInvalidIBAN)
	}

	return nil
}

// ValidateCurrency validates a currency code.
func ValidateCurrency(currency string) error {
	currency = strings.ToUpper(strings.TrimSpace(currency))

	if !validCurrencies[currency] {
		return fmt.Errorf("%w: %s is not a valid ISO 4217 currency code", ErrInvalidCurrency, currency)
	}

	return nil
}

// ValidateAmount validates a transfer or deposit amount.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	minAmount, _ := decimal.NewFromString(MinTransferAmount)
	if amount.LessThan(minAmount) {
		return fmt.Errorf("%w: minimum amount is %s", ErrInvalidAmount, MinTransferAmount)
	}

	maxAmount, _ := decimal.NewFromString(MaxTransferAmount)
	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum amount is %s", ErrInvalidAmount, MaxTransferAmount)
	}

	return nil
}
