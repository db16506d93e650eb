package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hearthsure/policyadmin/internal/apperrors"
	"github.com/hearthsure/policyadmin/internal/core/domain"
	"github.com/hearthsure/policyadmin/internal/repositories/database/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var clock = domain.FixedClock{Instant: time.Date(2026, 6, 1, 10, 30, 0, 0, time.UTC)}

func soldPolicy(t *testing.T) *domain.Policy {
	t.Helper()

	premium, err := domain.NewMoney(decimal.NewFromInt(365), "")
	require.NoError(t, err)

	policy, err := domain.NewPolicy(clock, domain.Household, clock.Today(), premium, "1 Test Street", "AB1 2CD", false)
	require.NoError(t, err)
	_, err = policy.AddPolicyholder("Ada", "Lovelace", time.Date(1990, 12, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = policy.AddPayment("PAY-001", domain.Card, decimal.NewFromInt(365))
	require.NoError(t, err)
	require.NoError(t, policy.Purchase())
	return policy
}

func TestAddAndFindPolicy(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewPolicyRepository(clock)
	policy := soldPolicy(t)

	require.NoError(t, repo.AddPolicy(ctx, policy))

	found, err := repo.FindPolicyByReference(ctx, policy.Reference().Value())
	require.NoError(t, err)
	assert.Equal(t, policy.ID(), found.ID())
	assert.Equal(t, domain.StatusActive, found.Status())
	assert.Len(t, found.Policyholders(), 1)
	assert.Len(t, found.Payments(), 1)
	assert.True(t, found.Premium().Equal(policy.Premium()))
}

func TestAddPolicy_Duplicate(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewPolicyRepository(clock)
	policy := soldPolicy(t)

	require.NoError(t, repo.AddPolicy(ctx, policy))
	assert.ErrorIs(t, repo.AddPolicy(ctx, policy), apperrors.ErrDuplicate)
}

func TestSavePolicy(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewPolicyRepository(clock)
	policy := soldPolicy(t)
	require.NoError(t, repo.AddPolicy(ctx, policy))

	policy.MarkAsClaim()
	require.NoError(t, repo.SavePolicy(ctx, policy))

	found, err := repo.FindPolicyByReference(ctx, policy.Reference().Value())
	require.NoError(t, err)
	assert.True(t, found.HasClaims())
}

func TestSavePolicy_Missing(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewPolicyRepository(clock)

	assert.ErrorIs(t, repo.SavePolicy(ctx, soldPolicy(t)), apperrors.ErrNotFound)
}

func TestFindPolicyByReference_Missing(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewPolicyRepository(clock)

	_, err := repo.FindPolicyByReference(ctx, "POL-HH-XXXXX-0")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestFindPolicyByID(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewPolicyRepository(clock)
	policy := soldPolicy(t)
	require.NoError(t, repo.AddPolicy(ctx, policy))

	found, err := repo.FindPolicyByID(ctx, policy.ID())
	require.NoError(t, err)
	assert.Equal(t, policy.Reference().Value(), found.Reference().Value())

	_, err = repo.FindPolicyByID(ctx, uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestFoundPolicyDoesNotAliasStore(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewPolicyRepository(clock)
	policy := soldPolicy(t)
	require.NoError(t, repo.AddPolicy(ctx, policy))

	found, err := repo.FindPolicyByReference(ctx, policy.Reference().Value())
	require.NoError(t, err)
	found.MarkAsClaim()

	// The store must only change through SavePolicy.
	rereads, err := repo.FindPolicyByReference(ctx, policy.Reference().Value())
	require.NoError(t, err)
	assert.False(t, rereads.HasClaims())
}
