package services

import (
	"context"
	"log/slog"

	"github.com/hearthsure/policyadmin/internal/core/domain"
	portsrepo "github.com/hearthsure/policyadmin/internal/core/ports/repositories"
	portssvc "github.com/hearthsure/policyadmin/internal/core/ports/services"
	"github.com/hearthsure/policyadmin/internal/dto"
	"github.com/shopspring/decimal"
)

// policyRenewalServiceImpl implements the PolicyRenewalSvc interface
type policyRenewalServiceImpl struct {
	BaseService
	policyRepo portsrepo.PolicyRepositoryFacade
}

// NewPolicyRenewalService creates a new renewal service
func NewPolicyRenewalService(repo portsrepo.PolicyRepositoryFacade) portssvc.PolicyRenewalSvc {
	return &policyRenewalServiceImpl{policyRepo: repo}
}

var _ portssvc.PolicyRenewalSvc = (*policyRenewalServiceImpl)(nil)

// RenewPolicy renews the policy for another year and persists the change.
// Payment details are optional on the wire; the aggregate decides whether
// they are required based on its auto-renew flag.
func (s *policyRenewalServiceImpl) RenewPolicy(ctx context.Context, policyReference string, req dto.RenewPolicyRequest) (*dto.PolicyResponse, error) {
	policy, err := loadPolicy(ctx, s.policyRepo, policyReference)
	if err != nil {
		return nil, err
	}

	var (
		paymentReference string
		paymentMethod    *domain.PaymentMethod
		paymentAmount    decimal.Decimal
	)
	if req.Payment != nil {
		method, err := domain.ParsePaymentMethod(req.Payment.PaymentMethod)
		if err != nil {
			return nil, err
		}
		paymentReference = req.Payment.Reference
		paymentMethod = &method
		paymentAmount = req.Payment.Amount
	}

	if err := policy.Renew(req.RenewalDate.Time, paymentReference, paymentMethod, paymentAmount); err != nil {
		return nil, err
	}

	if err := s.policyRepo.SavePolicy(ctx, policy); err != nil {
		s.LogError(ctx, err, "Failed to persist renewed policy",
			slog.String("policy_reference", policyReference))
		return nil, err
	}

	s.LogInfo(ctx, "Policy renewed",
		slog.String("policy_reference", policyReference),
		slog.String("new_end_date", policy.EndDate().Format("2006-01-02")))

	resp := dto.ToPolicyResponse(policy)
	return &resp, nil
}
