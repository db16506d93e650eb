package domain

import "strings"

// PolicyStatus indicates where a policy sits in its lifecycle.
type PolicyStatus string

const (
	StatusDraft     PolicyStatus = "DRAFT"
	StatusActive    PolicyStatus = "ACTIVE"
	StatusCancelled PolicyStatus = "CANCELLED"

	// Reserved statuses: present in the type for forward compatibility but
	// no operation currently transitions into them.
	StatusPendingPayment PolicyStatus = "PENDING_PAYMENT"
	StatusLapsed         PolicyStatus = "LAPSED"
	StatusExpired        PolicyStatus = "EXPIRED"
	StatusRenewalPending PolicyStatus = "RENEWAL_PENDING"
)

// InsuranceType enumerates the supported home insurance products.
type InsuranceType string

const (
	Household InsuranceType = "HOUSEHOLD"
	BuyToLet  InsuranceType = "BUY_TO_LET"
)

// ParseInsuranceType parses a wire value case-insensitively.
func ParseInsuranceType(s string) (InsuranceType, error) {
	switch normalizeEnum(s) {
	case "HOUSEHOLD":
		return Household, nil
	case "BUYTOLET":
		return BuyToLet, nil
	default:
		return "", NewError("policy.invalid_insurance_type", "Insurance type is invalid.")
	}
}

// PaymentMethod enumerates how a payment was taken.
type PaymentMethod string

const (
	Card        PaymentMethod = "CARD"
	DirectDebit PaymentMethod = "DIRECT_DEBIT"
	Cheque      PaymentMethod = "CHEQUE"
)

// ParsePaymentMethod parses a wire value case-insensitively.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch normalizeEnum(s) {
	case "CARD":
		return Card, nil
	case "DIRECTDEBIT":
		return DirectDebit, nil
	case "CHEQUE":
		return Cheque, nil
	default:
		return "", NewError("payment.invalid_type", "Payment type is invalid.")
	}
}

// normalizeEnum upper-cases and strips separators so "DirectDebit",
// "direct_debit" and "DIRECT-DEBIT" all compare equal.
func normalizeEnum(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.NewReplacer("_", "", "-", "", " ", "").Replace(s)
	return s
}
