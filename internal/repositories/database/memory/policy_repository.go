// Package memory provides an in-memory policy store, used for local runs and
// tests where PostgreSQL is unavailable.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/hearthsure/policyadmin/internal/apperrors"
	"github.com/hearthsure/policyadmin/internal/core/domain"
	portsrepo "github.com/hearthsure/policyadmin/internal/core/ports/repositories"
)

// PolicyRepository stores policy snapshots keyed by reference, guarded by a
// read-write mutex. Snapshots are stored by value so callers never alias the
// stored state.
type PolicyRepository struct {
	mu    sync.RWMutex
	byRef map[string]domain.PolicySnapshot
	clock domain.Clock
}

// NewPolicyRepository creates an empty in-memory policy store.
func NewPolicyRepository(clock domain.Clock) *PolicyRepository {
	return &PolicyRepository{
		byRef: make(map[string]domain.PolicySnapshot),
		clock: clock,
	}
}

var _ portsrepo.PolicyRepositoryFacade = (*PolicyRepository)(nil)

// AddPolicy stores a newly sold policy. Adding a reference twice fails with
// apperrors.ErrDuplicate.
func (r *PolicyRepository) AddPolicy(_ context.Context, policy *domain.Policy) error {
	snap := policy.Snapshot()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byRef[snap.Reference]; exists {
		return fmt.Errorf("%w: policy with reference %s already exists", apperrors.ErrDuplicate, snap.Reference)
	}
	r.byRef[snap.Reference] = snap
	return nil
}

// SavePolicy replaces the stored state of an existing policy.
func (r *PolicyRepository) SavePolicy(_ context.Context, policy *domain.Policy) error {
	snap := policy.Snapshot()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byRef[snap.Reference]; !exists {
		return fmt.Errorf("%w: policy %s", apperrors.ErrNotFound, snap.Reference)
	}
	r.byRef[snap.Reference] = snap
	return nil
}

// FindPolicyByReference rehydrates the policy stored under the reference.
func (r *PolicyRepository) FindPolicyByReference(_ context.Context, reference string) (*domain.Policy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snap, exists := r.byRef[reference]
	if !exists {
		return nil, fmt.Errorf("%w: policy %s", apperrors.ErrNotFound, reference)
	}
	return domain.RehydratePolicy(snap, r.clock), nil
}

// FindPolicyByID scans for the policy with the given internal identifier.
func (r *PolicyRepository) FindPolicyByID(_ context.Context, policyID uuid.UUID) (*domain.Policy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, snap := range r.byRef {
		if snap.ID == policyID {
			return domain.RehydratePolicy(snap, r.clock), nil
		}
	}
	return nil, fmt.Errorf("%w: policy %s", apperrors.ErrNotFound, policyID)
}
