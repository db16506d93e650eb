package services

import (
	"github.com/hearthsure/policyadmin/internal/core/domain"
	portsrepo "github.com/hearthsure/policyadmin/internal/core/ports/repositories"
	portssvc "github.com/hearthsure/policyadmin/internal/core/ports/services"
)

// NewServiceContainer wires every application service against the given
// policy store.
func NewServiceContainer(repo portsrepo.PolicyRepositoryFacade, clock domain.Clock) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Sales:        NewPolicySalesService(repo, clock),
		Retrieval:    NewPolicyRetrievalService(repo),
		Cancellation: NewPolicyCancellationService(repo),
		Renewal:      NewPolicyRenewalService(repo),
	}
}
