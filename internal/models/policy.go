package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Policy is the database row shape for the policies table.
type Policy struct {
	PolicyID        string          `db:"policy_id"`
	Reference       string          `db:"reference"`
	InsuranceType   string          `db:"insurance_type"`
	Status          string          `db:"status"`
	AddressLine1    string          `db:"address_line1"`
	AddressLine2    string          `db:"address_line2"` // Nullable
	AddressLine3    string          `db:"address_line3"` // Nullable
	Postcode        string          `db:"postcode"`
	StartDate       time.Time       `db:"start_date"`
	EndDate         time.Time       `db:"end_date"`
	PremiumAmount   decimal.Decimal `db:"premium_amount"`
	PremiumCurrency string          `db:"premium_currency"`
	AutoRenew       bool            `db:"auto_renew"`
	HasClaims       bool            `db:"has_claims"`
	CreatedAt       time.Time       `db:"created_at"`
	LastModifiedAt  time.Time       `db:"last_modified_at"`
}

// Policyholder is the database row shape for the policyholders table.
// Position preserves insertion order within a policy.
type Policyholder struct {
	PolicyholderID string    `db:"policyholder_id"`
	PolicyID       string    `db:"policy_id"`
	Position       int       `db:"position"`
	FirstName      string    `db:"first_name"`
	LastName       string    `db:"last_name"`
	DateOfBirth    time.Time `db:"date_of_birth"`
}

// Payment is the database row shape for the payments table. Position 0 is
// the original payment whose method refunds must match.
type Payment struct {
	PaymentID string          `db:"payment_id"`
	PolicyID  string          `db:"policy_id"`
	Position  int             `db:"position"`
	Reference string          `db:"reference"`
	Method    string          `db:"method"`
	Amount    decimal.Decimal `db:"amount"`
}
