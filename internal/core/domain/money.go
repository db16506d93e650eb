package domain

import (
	"github.com/shopspring/decimal"
)

// DefaultCurrency is applied when a caller does not specify one.
const DefaultCurrency = "GBP"

// Money is a currency-tagged, non-negative monetary amount.
type Money struct {
	amount   decimal.Decimal
	currency string
}

// NewMoney creates a Money value. An empty currency defaults to
// DefaultCurrency. Negative amounts are rejected.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	if currency == "" {
		currency = DefaultCurrency
	}
	if amount.IsNegative() {
		return Money{}, NewError("policy.invalid_amount", "Amount must not be negative.")
	}
	return Money{amount: amount, currency: currency}, nil
}

// ZeroMoney returns a zero amount in the given currency.
func ZeroMoney(currency string) Money {
	if currency == "" {
		currency = DefaultCurrency
	}
	return Money{amount: decimal.Zero, currency: currency}
}

func (m Money) Amount() decimal.Decimal {
	return m.amount
}

func (m Money) Currency() string {
	if m.currency == "" {
		return DefaultCurrency
	}
	return m.currency
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) Equal(other Money) bool {
	return m.Currency() == other.Currency() && m.amount.Equal(other.amount)
}

func (m Money) String() string {
	return m.amount.StringFixed(2) + " " + m.Currency()
}
