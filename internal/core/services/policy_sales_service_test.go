package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/hearthsure/policyadmin/internal/core/domain"
	portssvc "github.com/hearthsure/policyadmin/internal/core/ports/services"
	"github.com/hearthsure/policyadmin/internal/core/services"
	"github.com/hearthsure/policyadmin/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PolicySalesServiceTestSuite struct {
	suite.Suite
	mockRepo *MockPolicyRepository
	service  portssvc.PolicySalesSvc
}

func (suite *PolicySalesServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockPolicyRepository)
	suite.service = services.NewPolicySalesService(suite.mockRepo, testClock)
}

func (suite *PolicySalesServiceTestSuite) validRequest() dto.SellPolicyRequest {
	return dto.SellPolicyRequest{
		InsuranceType: "HOUSEHOLD",
		StartDate:     dto.NewDate(testClock.Today().AddDate(0, 0, 10)),
		Amount:        decimal.NewFromInt(365),
		Property: dto.PropertyRequest{
			AddressLine1: "1 Test Street",
			Postcode:     "AB1 2CD",
		},
		Policyholders: []dto.PolicyholderRequest{
			{
				FirstName:   "Ada",
				LastName:    "Lovelace",
				DateOfBirth: dto.NewDate(time.Date(1990, 12, 10, 0, 0, 0, 0, time.UTC)),
			},
		},
		Payment: &dto.PaymentRequest{
			Reference:     "PAY-001",
			PaymentMethod: "CARD",
			Amount:        decimal.NewFromInt(365),
		},
	}
}

func (suite *PolicySalesServiceTestSuite) TestSellPolicy_Success() {
	ctx := context.Background()

	var persisted *domain.Policy
	suite.mockRepo.On("AddPolicy", ctx, mock.AnythingOfType("*domain.Policy")).
		Run(func(args mock.Arguments) {
			persisted = args.Get(1).(*domain.Policy)
		}).
		Return(nil).Once()

	resp, err := suite.service.SellPolicy(ctx, suite.validRequest())

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.NotEmpty(resp.PolicyReference)

	suite.Require().NotNil(persisted)
	suite.Equal(resp.PolicyReference, persisted.Reference().Value())
	suite.Equal(domain.StatusActive, persisted.Status())
	suite.Len(persisted.Policyholders(), 1)
	suite.Len(persisted.Payments(), 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PolicySalesServiceTestSuite) TestSellPolicy_InvalidInsuranceType() {
	req := suite.validRequest()
	req.InsuranceType = "PET"

	resp, err := suite.service.SellPolicy(context.Background(), req)

	suite.Nil(resp)
	suite.Equal("policy.invalid_insurance_type", domain.ErrorCode(err))
	suite.mockRepo.AssertNotCalled(suite.T(), "AddPolicy", mock.Anything, mock.Anything)
}

func (suite *PolicySalesServiceTestSuite) TestSellPolicy_MissingPayment() {
	req := suite.validRequest()
	req.Payment = nil

	resp, err := suite.service.SellPolicy(context.Background(), req)

	suite.Nil(resp)
	suite.Equal("policy.payment.required", domain.ErrorCode(err))
	suite.mockRepo.AssertNotCalled(suite.T(), "AddPolicy", mock.Anything, mock.Anything)
}

func (suite *PolicySalesServiceTestSuite) TestSellPolicy_UnderagePolicyholder() {
	req := suite.validRequest()
	req.Policyholders = append(req.Policyholders, dto.PolicyholderRequest{
		FirstName:   "Too",
		LastName:    "Young",
		DateOfBirth: dto.NewDate(testClock.Today().AddDate(-15, 0, 0)),
	})

	resp, err := suite.service.SellPolicy(context.Background(), req)

	suite.Nil(resp)
	suite.Equal("policy.policyholders.minimum_age", domain.ErrorCode(err))
}

func (suite *PolicySalesServiceTestSuite) TestSellPolicy_StartDateTooFarAhead() {
	req := suite.validRequest()
	req.StartDate = dto.NewDate(testClock.Today().AddDate(0, 0, 61))

	resp, err := suite.service.SellPolicy(context.Background(), req)

	suite.Nil(resp)
	suite.Equal("policy.start.toofar", domain.ErrorCode(err))
}

func (suite *PolicySalesServiceTestSuite) TestSellPolicy_RepositoryError() {
	ctx := context.Background()
	suite.mockRepo.On("AddPolicy", ctx, mock.AnythingOfType("*domain.Policy")).
		Return(assert.AnError).Once()

	resp, err := suite.service.SellPolicy(ctx, suite.validRequest())

	suite.Nil(resp)
	suite.ErrorIs(err, assert.AnError)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestPolicySalesServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PolicySalesServiceTestSuite))
}
