package domain

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment records one payment taken against a policy. Uniqueness of the
// reference is not enforced here; it belongs to the payment provider.
type Payment struct {
	ID        uuid.UUID
	Reference string
	Method    PaymentMethod
	Amount    decimal.Decimal
}

// NewPayment validates and constructs a Payment. The amount must be strictly
// positive.
func NewPayment(reference string, method PaymentMethod, amount decimal.Decimal) (Payment, error) {
	if strings.TrimSpace(reference) == "" {
		return Payment{}, NewError("payment.invalid_reference", "Payment reference is required.")
	}
	if !amount.IsPositive() {
		return Payment{}, NewError("payment.invalid_amount", "Payment amount must be greater than zero.")
	}
	return Payment{
		ID:        uuid.New(),
		Reference: reference,
		Method:    method,
		Amount:    amount,
	}, nil
}
