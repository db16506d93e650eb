package domain

import (
	"time"

	"github.com/google/uuid"
)

// PolicySnapshot is the flat, persistence-facing view of a policy. It is the
// only way state crosses the aggregate boundary in either direction: the
// repository layer maps rows to a snapshot and back, never touching the live
// collections.
type PolicySnapshot struct {
	ID             uuid.UUID
	Reference      string
	InsuranceType  InsuranceType
	Status         PolicyStatus
	Property       *Property
	StartDate      time.Time
	EndDate        time.Time
	Premium        Money
	AutoRenew      bool
	HasClaims      bool
	CreatedAt      time.Time
	LastModifiedAt time.Time
	Policyholders  []Policyholder
	Payments       []Payment
}

// Snapshot exports the policy's current state.
func (p *Policy) Snapshot() PolicySnapshot {
	return PolicySnapshot{
		ID:             p.id,
		Reference:      p.reference.Value(),
		InsuranceType:  p.insuranceType,
		Status:         p.status,
		Property:       p.property,
		StartDate:      p.startDate,
		EndDate:        p.endDate,
		Premium:        p.premium,
		AutoRenew:      p.autoRenew,
		HasClaims:      p.hasClaims,
		CreatedAt:      p.createdAt,
		LastModifiedAt: p.lastModified,
		Policyholders:  p.Policyholders(),
		Payments:       p.Payments(),
	}
}

// RehydratePolicy reconstructs a policy from persisted state. It performs no
// validation: the snapshot is trusted to have come from a policy that was
// valid when saved.
func RehydratePolicy(snap PolicySnapshot, clock Clock) *Policy {
	holders := make([]Policyholder, len(snap.Policyholders))
	copy(holders, snap.Policyholders)
	payments := make([]Payment, len(snap.Payments))
	copy(payments, snap.Payments)

	return &Policy{
		id:            snap.ID,
		reference:     PolicyReferenceFromString(snap.Reference),
		insuranceType: snap.InsuranceType,
		status:        snap.Status,
		property:      snap.Property,
		startDate:     DateOnly(snap.StartDate),
		endDate:       DateOnly(snap.EndDate),
		premium:       snap.Premium,
		autoRenew:     snap.AutoRenew,
		hasClaims:     snap.HasClaims,
		createdAt:     snap.CreatedAt,
		lastModified:  snap.LastModifiedAt,
		policyholders: holders,
		payments:      payments,
		clock:         clock,
	}
}
