package services

import (
	"context"
	"log/slog"

	"github.com/hearthsure/policyadmin/internal/core/domain"
	portsrepo "github.com/hearthsure/policyadmin/internal/core/ports/repositories"
	portssvc "github.com/hearthsure/policyadmin/internal/core/ports/services"
	"github.com/hearthsure/policyadmin/internal/dto"
)

// policySalesServiceImpl implements the PolicySalesSvc interface
type policySalesServiceImpl struct {
	BaseService
	policyRepo portsrepo.PolicyRepositoryFacade
	clock      domain.Clock
}

// NewPolicySalesService creates a new sales service
func NewPolicySalesService(repo portsrepo.PolicyRepositoryFacade, clock domain.Clock) portssvc.PolicySalesSvc {
	return &policySalesServiceImpl{policyRepo: repo, clock: clock}
}

// Ensure policySalesServiceImpl implements the PolicySalesSvc interface
var _ portssvc.PolicySalesSvc = (*policySalesServiceImpl)(nil)

// SellPolicy creates a draft policy, attaches policyholders and the initial
// payment, purchases it, and persists the activated aggregate.
func (s *policySalesServiceImpl) SellPolicy(ctx context.Context, req dto.SellPolicyRequest) (*dto.SellPolicyResponse, error) {
	insuranceType, err := domain.ParseInsuranceType(req.InsuranceType)
	if err != nil {
		return nil, err
	}

	premium, err := domain.NewMoney(req.Amount, req.Currency)
	if err != nil {
		return nil, err
	}

	policy, err := domain.NewPolicy(
		s.clock,
		insuranceType,
		req.StartDate.Time,
		premium,
		req.Property.AddressLine1,
		req.Property.Postcode,
		req.AutoRenew,
	)
	if err != nil {
		s.LogError(ctx, err, "Failed to create draft policy")
		return nil, err
	}

	for _, holder := range req.Policyholders {
		if _, err := policy.AddPolicyholder(holder.FirstName, holder.LastName, holder.DateOfBirth.Time); err != nil {
			return nil, err
		}
	}

	if req.Payment != nil {
		method, err := domain.ParsePaymentMethod(req.Payment.PaymentMethod)
		if err != nil {
			return nil, err
		}
		if _, err := policy.AddPayment(req.Payment.Reference, method, req.Payment.Amount); err != nil {
			return nil, err
		}
	}

	if err := policy.Purchase(); err != nil {
		return nil, err
	}

	if err := s.policyRepo.AddPolicy(ctx, policy); err != nil {
		s.LogError(ctx, err, "Failed to persist sold policy",
			slog.String("policy_reference", policy.Reference().Value()))
		return nil, err
	}

	s.LogInfo(ctx, "Policy sold",
		slog.String("policy_reference", policy.Reference().Value()),
		slog.String("insurance_type", string(policy.InsuranceType())))

	return &dto.SellPolicyResponse{PolicyReference: policy.Reference().Value()}, nil
}
