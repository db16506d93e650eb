package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	maxAdvanceSaleDays = 60
	policyLengthYears  = 1
	coolingOffDays     = 14
	renewalWindowDays  = 30

	minPolicyholders    = 1
	maxPolicyholders    = 3
	minPolicyholderAge  = 16
	refundDecimalPlaces = 2
)

// Policy is the aggregate root for a home insurance policy. All state changes
// go through its methods; the backing policyholder and payment slices never
// escape.
//
// Lifecycle: DRAFT -> ACTIVE -> CANCELLED. Renewal loops ACTIVE -> ACTIVE,
// extending the end date by one year each time.
type Policy struct {
	id            uuid.UUID
	reference     PolicyReference
	insuranceType InsuranceType
	status        PolicyStatus
	property      *Property
	startDate     time.Time
	endDate       time.Time
	premium       Money
	autoRenew     bool
	hasClaims     bool
	createdAt     time.Time
	lastModified  time.Time
	policyholders []Policyholder
	payments      []Payment

	clock Clock
}

// NewPolicy creates a draft policy. The start date may be at most 60 days
// after today; the insured property is validated and fixed here.
func NewPolicy(
	clock Clock,
	insuranceType InsuranceType,
	startDate time.Time,
	premium Money,
	addressLine1 string,
	postcode string,
	autoRenew bool,
) (*Policy, error) {
	startDate = DateOnly(startDate)
	if startDate.After(clock.Today().AddDate(0, 0, maxAdvanceSaleDays)) {
		return nil, NewError("policy.start.toofar",
			fmt.Sprintf("A policy can only be sold up to %d days in advance.", maxAdvanceSaleDays))
	}

	property, err := NewProperty(addressLine1, postcode, "", "")
	if err != nil {
		return nil, err
	}

	now := clock.Now()
	return &Policy{
		id:            uuid.New(),
		reference:     GeneratePolicyReference(insuranceType),
		insuranceType: insuranceType,
		status:        StatusDraft,
		property:      property,
		startDate:     startDate,
		endDate:       startDate.AddDate(policyLengthYears, 0, 0),
		premium:       premium,
		autoRenew:     autoRenew,
		hasClaims:     false,
		createdAt:     now,
		lastModified:  now,
		clock:         clock,
	}, nil
}

// Accessors. Collection accessors return copies.

func (p *Policy) ID() uuid.UUID                { return p.id }
func (p *Policy) Reference() PolicyReference   { return p.reference }
func (p *Policy) InsuranceType() InsuranceType { return p.insuranceType }
func (p *Policy) Status() PolicyStatus         { return p.status }
func (p *Policy) InsuredProperty() *Property   { return p.property }
func (p *Policy) StartDate() time.Time         { return p.startDate }
func (p *Policy) EndDate() time.Time           { return p.endDate }
func (p *Policy) Premium() Money               { return p.premium }
func (p *Policy) AutoRenew() bool              { return p.autoRenew }
func (p *Policy) HasClaims() bool              { return p.hasClaims }
func (p *Policy) CreatedAt() time.Time         { return p.createdAt }
func (p *Policy) LastModifiedAt() time.Time    { return p.lastModified }

func (p *Policy) Policyholders() []Policyholder {
	out := make([]Policyholder, len(p.policyholders))
	copy(out, p.policyholders)
	return out
}

func (p *Policy) Payments() []Payment {
	out := make([]Payment, len(p.payments))
	copy(out, p.payments)
	return out
}

// AddPolicyholder attaches a named person to a draft policy. At most three
// holders are allowed and each must be at least 16 at the policy start date.
func (p *Policy) AddPolicyholder(firstName, lastName string, dateOfBirth time.Time) (Policyholder, error) {
	if p.status != StatusDraft {
		return Policyholder{}, NewError("policy.locked", "Policyholders can only be added while the policy is in draft.")
	}

	holder, err := NewPolicyholder(p.clock, firstName, lastName, dateOfBirth)
	if err != nil {
		return Policyholder{}, err
	}

	if len(p.policyholders)+1 > maxPolicyholders {
		return Policyholder{}, NewError("policy.policyholders.max_count",
			fmt.Sprintf("Cannot have more than %d policyholders.", maxPolicyholders))
	}
	if holder.AgeAt(p.startDate) < minPolicyholderAge {
		return Policyholder{}, NewError("policy.policyholders.minimum_age",
			fmt.Sprintf("Policyholder must be at least %d years old at the policy start date.", minPolicyholderAge))
	}

	p.policyholders = append(p.policyholders, holder)
	return holder, nil
}

// AddPayment records a payment against a draft policy. The first payment's
// method becomes the original payment method that refunds must match.
func (p *Policy) AddPayment(reference string, method PaymentMethod, amount decimal.Decimal) (Payment, error) {
	if p.status != StatusDraft {
		return Payment{}, NewError("policy.locked", "Payments can only be added while the policy is in draft.")
	}

	payment, err := NewPayment(reference, method, amount)
	if err != nil {
		return Payment{}, err
	}

	p.payments = append(p.payments, payment)
	return payment, nil
}

// Purchase activates a draft policy once it has at least one policyholder,
// an insured property and a payment.
func (p *Policy) Purchase() error {
	if p.status != StatusDraft {
		return NewError("policy.invalid_state", "Only draft policies can be purchased.")
	}
	if len(p.policyholders) < minPolicyholders {
		return NewError("policy.policyholders.required",
			fmt.Sprintf("At least %d policyholder is required.", minPolicyholders))
	}
	if p.property == nil {
		return NewError("policy.property.required", "An insured property is required before purchasing.")
	}
	if len(p.payments) == 0 {
		return NewError("policy.payment.required", "A payment is required to purchase.")
	}

	p.status = StatusActive
	p.lastModified = p.clock.Now()
	return nil
}

// Cancel terminates an active policy and returns the refund due. The refund
// method must match the method of the first recorded payment. Auto-renew is
// switched off.
func (p *Policy) Cancel(cancellationDate time.Time, refundMethod PaymentMethod) (Money, error) {
	refund, err := p.CalculateCancellationQuote(cancellationDate, refundMethod)
	if err != nil {
		return Money{}, err
	}

	p.status = StatusCancelled
	p.autoRenew = false
	p.lastModified = p.clock.Now()
	return refund, nil
}

// CalculateCancellationQuote computes the refund a cancellation on the given
// date would yield, without mutating the policy.
func (p *Policy) CalculateCancellationQuote(cancellationDate time.Time, refundMethod PaymentMethod) (Money, error) {
	if p.status != StatusActive {
		return Money{}, NewError("policy.invalid_state", "Only active policies can be cancelled.")
	}
	if len(p.payments) == 0 {
		return Money{}, NewError("policy.payment.required", "A payment is required to calculate a refund.")
	}
	if refundMethod != p.payments[0].Method {
		return Money{}, NewError("policy.refund.invalid_method", "Refund method must match the original payment method.")
	}
	return p.refundAmount(DateOnly(cancellationDate)), nil
}

// refundAmount implements the refund rules: claims void the refund entirely;
// cancellation before the start date or within the 14-day cooling-off period
// refunds the full premium; otherwise the refund is pro-rata on unused
// coverage days, rounded to 2 decimal places half away from zero.
func (p *Policy) refundAmount(cancellationDate time.Time) Money {
	if p.hasClaims {
		return ZeroMoney(p.premium.Currency())
	}
	if cancellationDate.Before(p.startDate) {
		return p.premium
	}
	if !cancellationDate.After(p.startDate.AddDate(0, 0, coolingOffDays)) {
		return p.premium
	}

	totalDays := daysBetween(p.startDate, p.endDate)
	if totalDays <= 0 {
		return ZeroMoney(p.premium.Currency())
	}
	unusedDays := daysBetween(cancellationDate, p.endDate)
	if unusedDays < 0 {
		unusedDays = 0
	}

	prorated := p.premium.Amount().
		Mul(decimal.NewFromInt(int64(unusedDays))).
		Div(decimal.NewFromInt(int64(totalDays))).
		Round(refundDecimalPlaces)

	return Money{amount: prorated, currency: p.premium.Currency()}
}

// MarkAsClaim flags the policy as having a claim. Deliberately unguarded by
// status and idempotent; the flag is never reset.
func (p *Policy) MarkAsClaim() {
	p.hasClaims = true
	p.lastModified = p.clock.Now()
}

// Renew extends an active policy by one year. Renewal is only allowed in the
// 30-day window ending at the end date. When auto-renew is on, a non-cheque
// payment must be supplied and is recorded; when off, payment input is
// ignored.
func (p *Policy) Renew(renewalDate time.Time, paymentReference string, paymentMethod *PaymentMethod, paymentAmount decimal.Decimal) error {
	if p.status != StatusActive {
		return NewError("policy.invalid_state", "Only active policies can be renewed.")
	}

	renewalDate = DateOnly(renewalDate)
	if renewalDate.Before(p.endDate.AddDate(0, 0, -renewalWindowDays)) {
		return NewError("policy.renewal.too_early",
			fmt.Sprintf("A policy can only be renewed within %d days of its end date.", renewalWindowDays))
	}
	if renewalDate.After(p.endDate) {
		return NewError("policy.renewal.after_end_date", "A policy cannot be renewed after its end date.")
	}

	if p.autoRenew {
		if paymentMethod == nil {
			return NewError("policy.renewal.payment.required", "A payment method is required to renew an auto-renewing policy.")
		}
		if *paymentMethod == Cheque {
			return NewError("policy.renewal.cheque_not_allowed", "Cheque payments are not accepted for renewals.")
		}
		payment, err := NewPayment(paymentReference, *paymentMethod, paymentAmount)
		if err != nil {
			return err
		}
		p.payments = append(p.payments, payment)
	}

	p.endDate = p.endDate.AddDate(policyLengthYears, 0, 0)
	p.lastModified = p.clock.Now()
	return nil
}

// daysBetween counts whole days from one UTC-midnight date to another.
func daysBetween(from, to time.Time) int {
	return int(to.Sub(from) / (24 * time.Hour))
}
