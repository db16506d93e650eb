package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hearthsure/policyadmin/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPolicyRepository is a mock type for the PolicyRepositoryFacade interface
type MockPolicyRepository struct {
	mock.Mock
}

func (m *MockPolicyRepository) FindPolicyByReference(ctx context.Context, reference string) (*domain.Policy, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Policy), args.Error(1)
}

func (m *MockPolicyRepository) FindPolicyByID(ctx context.Context, policyID uuid.UUID) (*domain.Policy, error) {
	args := m.Called(ctx, policyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Policy), args.Error(1)
}

func (m *MockPolicyRepository) AddPolicy(ctx context.Context, policy *domain.Policy) error {
	args := m.Called(ctx, policy)
	return args.Error(0)
}

func (m *MockPolicyRepository) SavePolicy(ctx context.Context, policy *domain.Policy) error {
	args := m.Called(ctx, policy)
	return args.Error(0)
}

// --- Shared fixtures ---

var testClock = domain.FixedClock{Instant: time.Date(2026, 6, 1, 10, 30, 0, 0, time.UTC)}

// soldPolicy builds an active policy through the public aggregate flow.
func soldPolicy(t *testing.T, startDate time.Time, autoRenew bool) *domain.Policy {
	t.Helper()

	premium, err := domain.NewMoney(decimal.NewFromInt(365), "")
	require.NoError(t, err)

	policy, err := domain.NewPolicy(testClock, domain.Household, startDate, premium, "1 Test Street", "AB1 2CD", autoRenew)
	require.NoError(t, err)
	_, err = policy.AddPolicyholder("Ada", "Lovelace", time.Date(1990, 12, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = policy.AddPayment("PAY-001", domain.Card, decimal.NewFromInt(365))
	require.NoError(t, err)
	require.NoError(t, policy.Purchase())
	return policy
}
