package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/hearthsure/policyadmin/internal/apperrors"
	"github.com/hearthsure/policyadmin/internal/core/domain"
	portsrepo "github.com/hearthsure/policyadmin/internal/core/ports/repositories"
	portssvc "github.com/hearthsure/policyadmin/internal/core/ports/services"
	"github.com/hearthsure/policyadmin/internal/dto"
)

// policyRetrievalServiceImpl implements the PolicyRetrievalSvc interface
type policyRetrievalServiceImpl struct {
	BaseService
	policyRepo portsrepo.PolicyReader
}

// NewPolicyRetrievalService creates a new retrieval service
func NewPolicyRetrievalService(repo portsrepo.PolicyReader) portssvc.PolicyRetrievalSvc {
	return &policyRetrievalServiceImpl{policyRepo: repo}
}

var _ portssvc.PolicyRetrievalSvc = (*policyRetrievalServiceImpl)(nil)

// GetPolicy returns the read view of the policy with the given reference.
func (s *policyRetrievalServiceImpl) GetPolicy(ctx context.Context, policyReference string) (*dto.PolicyResponse, error) {
	policy, err := loadPolicy(ctx, s.policyRepo, policyReference)
	if err != nil {
		return nil, err
	}

	resp := dto.ToPolicyResponse(policy)
	return &resp, nil
}

// loadPolicy fetches a policy by reference, translating a missing policy
// into the "policy.not_found" domain error that handlers map to 404.
func loadPolicy(ctx context.Context, repo portsrepo.PolicyReader, policyReference string) (*domain.Policy, error) {
	policy, err := repo.FindPolicyByReference(ctx, policyReference)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, domain.NewError("policy.not_found",
				fmt.Sprintf("Policy with reference %s does not exist.", policyReference))
		}
		return nil, err
	}
	return policy, nil
}
