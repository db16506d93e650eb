package services_test

import (
	"context"
	"testing"

	"github.com/hearthsure/policyadmin/internal/core/domain"
	portssvc "github.com/hearthsure/policyadmin/internal/core/ports/services"
	"github.com/hearthsure/policyadmin/internal/core/services"
	"github.com/hearthsure/policyadmin/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PolicyRenewalServiceTestSuite struct {
	suite.Suite
	mockRepo *MockPolicyRepository
	service  portssvc.PolicyRenewalSvc
}

func (suite *PolicyRenewalServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockPolicyRepository)
	suite.service = services.NewPolicyRenewalService(suite.mockRepo)
}

// renewablePolicy is active with its end date 10 days from today.
func (suite *PolicyRenewalServiceTestSuite) renewablePolicy(autoRenew bool) *domain.Policy {
	snap := soldPolicy(suite.T(), testClock.Today(), autoRenew).Snapshot()
	snap.StartDate = testClock.Today().AddDate(-1, 0, 10)
	snap.EndDate = testClock.Today().AddDate(0, 0, 10)
	return domain.RehydratePolicy(snap, testClock)
}

func (suite *PolicyRenewalServiceTestSuite) TestRenewPolicy_Success() {
	ctx := context.Background()
	policy := suite.renewablePolicy(false)
	ref := policy.Reference().Value()
	endBefore := policy.EndDate()

	suite.mockRepo.On("FindPolicyByReference", ctx, ref).Return(policy, nil).Once()
	suite.mockRepo.On("SavePolicy", ctx, policy).Return(nil).Once()

	resp, err := suite.service.RenewPolicy(ctx, ref, dto.RenewPolicyRequest{
		RenewalDate: dto.NewDate(testClock.Today()),
	})

	suite.Require().NoError(err)
	suite.Equal(dto.NewDate(endBefore.AddDate(1, 0, 0)), resp.EndDate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PolicyRenewalServiceTestSuite) TestRenewPolicy_AutoRenewWithPayment() {
	ctx := context.Background()
	policy := suite.renewablePolicy(true)
	ref := policy.Reference().Value()

	suite.mockRepo.On("FindPolicyByReference", ctx, ref).Return(policy, nil).Once()
	suite.mockRepo.On("SavePolicy", ctx, policy).Return(nil).Once()

	resp, err := suite.service.RenewPolicy(ctx, ref, dto.RenewPolicyRequest{
		RenewalDate: dto.NewDate(testClock.Today()),
		Payment: &dto.PaymentRequest{
			Reference:     "PAY-R1",
			PaymentMethod: "DIRECT_DEBIT",
			Amount:        decimal.NewFromInt(400),
		},
	})

	suite.Require().NoError(err)
	suite.Len(resp.Payments, 2)
	suite.Equal("PAY-R1", resp.Payments[1].Reference)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PolicyRenewalServiceTestSuite) TestRenewPolicy_AutoRenewMissingPayment() {
	ctx := context.Background()
	policy := suite.renewablePolicy(true)
	ref := policy.Reference().Value()

	suite.mockRepo.On("FindPolicyByReference", ctx, ref).Return(policy, nil).Once()

	resp, err := suite.service.RenewPolicy(ctx, ref, dto.RenewPolicyRequest{
		RenewalDate: dto.NewDate(testClock.Today()),
	})

	suite.Nil(resp)
	suite.Equal("policy.renewal.payment.required", domain.ErrorCode(err))
	suite.mockRepo.AssertNotCalled(suite.T(), "SavePolicy", mock.Anything, mock.Anything)
}

func (suite *PolicyRenewalServiceTestSuite) TestRenewPolicy_TooEarly() {
	ctx := context.Background()
	policy := soldPolicy(suite.T(), testClock.Today(), false) // ends in a year
	ref := policy.Reference().Value()

	suite.mockRepo.On("FindPolicyByReference", ctx, ref).Return(policy, nil).Once()

	resp, err := suite.service.RenewPolicy(ctx, ref, dto.RenewPolicyRequest{
		RenewalDate: dto.NewDate(testClock.Today()),
	})

	suite.Nil(resp)
	suite.Equal("policy.renewal.too_early", domain.ErrorCode(err))
	suite.mockRepo.AssertNotCalled(suite.T(), "SavePolicy", mock.Anything, mock.Anything)
}

func (suite *PolicyRenewalServiceTestSuite) TestRenewPolicy_InvalidPaymentMethod() {
	ctx := context.Background()
	policy := suite.renewablePolicy(true)
	ref := policy.Reference().Value()

	suite.mockRepo.On("FindPolicyByReference", ctx, ref).Return(policy, nil).Once()

	resp, err := suite.service.RenewPolicy(ctx, ref, dto.RenewPolicyRequest{
		RenewalDate: dto.NewDate(testClock.Today()),
		Payment: &dto.PaymentRequest{
			Reference:     "PAY-R1",
			PaymentMethod: "BITCOIN",
			Amount:        decimal.NewFromInt(400),
		},
	})

	suite.Nil(resp)
	suite.Equal("payment.invalid_type", domain.ErrorCode(err))
}

func TestPolicyRenewalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PolicyRenewalServiceTestSuite))
}
