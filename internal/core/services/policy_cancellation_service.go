package services

import (
	"context"
	"log/slog"

	"github.com/hearthsure/policyadmin/internal/core/domain"
	portsrepo "github.com/hearthsure/policyadmin/internal/core/ports/repositories"
	portssvc "github.com/hearthsure/policyadmin/internal/core/ports/services"
	"github.com/hearthsure/policyadmin/internal/dto"
)

// policyCancellationServiceImpl implements the PolicyCancellationSvc interface
type policyCancellationServiceImpl struct {
	BaseService
	policyRepo portsrepo.PolicyRepositoryFacade
}

// NewPolicyCancellationService creates a new cancellation service
func NewPolicyCancellationService(repo portsrepo.PolicyRepositoryFacade) portssvc.PolicyCancellationSvc {
	return &policyCancellationServiceImpl{policyRepo: repo}
}

var _ portssvc.PolicyCancellationSvc = (*policyCancellationServiceImpl)(nil)

// CancelPolicy cancels the policy, persists the change and reports the refund.
func (s *policyCancellationServiceImpl) CancelPolicy(ctx context.Context, policyReference string, req dto.CancelPolicyRequest) (*dto.CancelPolicyResponse, error) {
	refundMethod, err := domain.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return nil, err
	}

	policy, err := loadPolicy(ctx, s.policyRepo, policyReference)
	if err != nil {
		return nil, err
	}

	refund, err := policy.Cancel(req.CancellationDate.Time, refundMethod)
	if err != nil {
		return nil, err
	}

	if err := s.policyRepo.SavePolicy(ctx, policy); err != nil {
		s.LogError(ctx, err, "Failed to persist cancelled policy",
			slog.String("policy_reference", policyReference))
		return nil, err
	}

	s.LogInfo(ctx, "Policy cancelled",
		slog.String("policy_reference", policyReference),
		slog.String("refund_amount", refund.Amount().String()))

	return &dto.CancelPolicyResponse{
		PolicyReference: policy.Reference().Value(),
		RefundAmount:    refund.Amount(),
		Currency:        refund.Currency(),
		RefundMethod:    string(refundMethod),
	}, nil
}

// GetCancellationQuote computes the refund a cancellation would yield without
// changing any state.
func (s *policyCancellationServiceImpl) GetCancellationQuote(ctx context.Context, policyReference string, req dto.CancelPolicyRequest) (*dto.CancelPolicyResponse, error) {
	refundMethod, err := domain.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return nil, err
	}

	policy, err := loadPolicy(ctx, s.policyRepo, policyReference)
	if err != nil {
		return nil, err
	}

	refund, err := policy.CalculateCancellationQuote(req.CancellationDate.Time, refundMethod)
	if err != nil {
		return nil, err
	}

	return &dto.CancelPolicyResponse{
		PolicyReference: policy.Reference().Value(),
		RefundAmount:    refund.Amount(),
		Currency:        refund.Currency(),
		RefundMethod:    string(refundMethod),
	}, nil
}

// MarkAsClaim flags the policy as having a claim and persists the change.
func (s *policyCancellationServiceImpl) MarkAsClaim(ctx context.Context, policyReference string) (*dto.PolicyResponse, error) {
	policy, err := loadPolicy(ctx, s.policyRepo, policyReference)
	if err != nil {
		return nil, err
	}

	policy.MarkAsClaim()

	if err := s.policyRepo.SavePolicy(ctx, policy); err != nil {
		s.LogError(ctx, err, "Failed to persist claim flag",
			slog.String("policy_reference", policyReference))
		return nil, err
	}

	resp := dto.ToPolicyResponse(policy)
	return &resp, nil
}
