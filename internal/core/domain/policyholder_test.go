package domain_test

import (
	"testing"
	"time"

	"github.com/hearthsure/policyadmin/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPolicyholder(t *testing.T) {
	dob := time.Date(1990, 12, 10, 0, 0, 0, 0, time.UTC)

	t.Run("valid", func(t *testing.T) {
		holder, err := domain.NewPolicyholder(clock, "Ada", "Lovelace", dob)
		require.NoError(t, err)
		assert.Equal(t, "Ada", holder.FirstName)
		assert.Equal(t, "Lovelace", holder.LastName)
		assert.Equal(t, domain.DateOnly(dob), holder.DateOfBirth)
	})

	t.Run("blank names", func(t *testing.T) {
		_, err := domain.NewPolicyholder(clock, "", "Lovelace", dob)
		assertCode(t, err, "policyholder.invalid_name")
		_, err = domain.NewPolicyholder(clock, "Ada", "   ", dob)
		assertCode(t, err, "policyholder.invalid_name")
	})

	t.Run("date of birth in the future", func(t *testing.T) {
		_, err := domain.NewPolicyholder(clock, "Ada", "Lovelace", clock.Today().AddDate(0, 0, 1))
		assertCode(t, err, "policyholder.invalid_dob")
	})
}

func TestPolicyholderAgeAt(t *testing.T) {
	holder, err := domain.NewPolicyholder(clock, "Ada", "Lovelace", time.Date(2000, 6, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	tests := []struct {
		name string
		date time.Time
		want int
	}{
		{"day before birthday", time.Date(2026, 6, 14, 0, 0, 0, 0, time.UTC), 25},
		{"on birthday", time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC), 26},
		{"day after birthday", time.Date(2026, 6, 16, 0, 0, 0, 0, time.UTC), 26},
		{"sixteenth birthday", time.Date(2016, 6, 15, 0, 0, 0, 0, time.UTC), 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, holder.AgeAt(tt.date))
		})
	}
}
