package services

import (
	"context"

	"github.com/hearthsure/policyadmin/internal/dto"
)

// PolicySalesSvc sells new policies: create, attach policyholders and the
// initial payment, and purchase in one unit of work.
type PolicySalesSvc interface {
	SellPolicy(ctx context.Context, req dto.SellPolicyRequest) (*dto.SellPolicyResponse, error)
}

// PolicyRetrievalSvc reads policies by reference.
type PolicyRetrievalSvc interface {
	GetPolicy(ctx context.Context, policyReference string) (*dto.PolicyResponse, error)
}

// PolicyCancellationSvc cancels policies, quotes cancellations and flags
// claims.
type PolicyCancellationSvc interface {
	CancelPolicy(ctx context.Context, policyReference string, req dto.CancelPolicyRequest) (*dto.CancelPolicyResponse, error)
	GetCancellationQuote(ctx context.Context, policyReference string, req dto.CancelPolicyRequest) (*dto.CancelPolicyResponse, error)
	MarkAsClaim(ctx context.Context, policyReference string) (*dto.PolicyResponse, error)
}

// PolicyRenewalSvc renews active policies for another year.
type PolicyRenewalSvc interface {
	RenewPolicy(ctx context.Context, policyReference string, req dto.RenewPolicyRequest) (*dto.PolicyResponse, error)
}

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Sales        PolicySalesSvc
	Retrieval    PolicyRetrievalSvc
	Cancellation PolicyCancellationSvc
	Renewal      PolicyRenewalSvc
}
