package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/hearthsure/policyadmin/internal/core/domain"
)

// PolicyReader defines read operations for policy data
type PolicyReader interface {
	// FindPolicyByReference retrieves a policy by its human-readable reference.
	FindPolicyByReference(ctx context.Context, reference string) (*domain.Policy, error)

	// FindPolicyByID retrieves a policy by its internal identifier.
	FindPolicyByID(ctx context.Context, policyID uuid.UUID) (*domain.Policy, error)
}

// PolicyWriter defines write operations for policy data
type PolicyWriter interface {
	// AddPolicy persists a newly created policy aggregate.
	AddPolicy(ctx context.Context, policy *domain.Policy) error

	// SavePolicy persists state changes to an existing policy aggregate.
	// The store is responsible for serializing concurrent saves of the
	// same policy identity.
	SavePolicy(ctx context.Context, policy *domain.Policy) error
}

// PolicyRepositoryFacade combines all policy persistence interfaces
type PolicyRepositoryFacade interface {
	PolicyReader
	PolicyWriter
}
