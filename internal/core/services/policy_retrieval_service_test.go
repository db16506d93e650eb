package services_test

import (
	"context"
	"testing"

	"github.com/hearthsure/policyadmin/internal/apperrors"
	"github.com/hearthsure/policyadmin/internal/core/domain"
	portssvc "github.com/hearthsure/policyadmin/internal/core/ports/services"
	"github.com/hearthsure/policyadmin/internal/core/services"
	"github.com/stretchr/testify/suite"
)

type PolicyRetrievalServiceTestSuite struct {
	suite.Suite
	mockRepo *MockPolicyRepository
	service  portssvc.PolicyRetrievalSvc
}

func (suite *PolicyRetrievalServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockPolicyRepository)
	suite.service = services.NewPolicyRetrievalService(suite.mockRepo)
}

func (suite *PolicyRetrievalServiceTestSuite) TestGetPolicy_Success() {
	ctx := context.Background()
	policy := soldPolicy(suite.T(), testClock.Today(), true)
	ref := policy.Reference().Value()

	suite.mockRepo.On("FindPolicyByReference", ctx, ref).Return(policy, nil).Once()

	resp, err := suite.service.GetPolicy(ctx, ref)

	suite.Require().NoError(err)
	suite.Equal(ref, resp.PolicyReference)
	suite.Equal("HOUSEHOLD", resp.InsuranceType)
	suite.Equal("ACTIVE", resp.Status)
	suite.True(resp.AutoRenew)
	suite.Equal("1 Test Street", resp.Property.AddressLine1)
	suite.Len(resp.Policyholders, 1)
	suite.Len(resp.Payments, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PolicyRetrievalServiceTestSuite) TestGetPolicy_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindPolicyByReference", ctx, "POL-HH-XXXXX-0").
		Return(nil, apperrors.ErrNotFound).Once()

	resp, err := suite.service.GetPolicy(ctx, "POL-HH-XXXXX-0")

	suite.Nil(resp)
	suite.Equal("policy.not_found", domain.ErrorCode(err))
}

func TestPolicyRetrievalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PolicyRetrievalServiceTestSuite))
}
