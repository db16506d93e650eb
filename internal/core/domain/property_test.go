package domain_test

import (
	"testing"

	"github.com/hearthsure/policyadmin/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProperty(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		p, err := domain.NewProperty("1 Test Street", "AB1 2CD", "Testville", "")
		require.NoError(t, err)
		assert.Equal(t, "1 Test Street", p.AddressLine1)
		assert.Equal(t, "AB1 2CD", p.Postcode)
	})

	t.Run("blank address line 1", func(t *testing.T) {
		_, err := domain.NewProperty("   ", "AB1 2CD", "", "")
		assertCode(t, err, "property.invalid_address")
	})

	t.Run("blank postcode", func(t *testing.T) {
		_, err := domain.NewProperty("1 Test Street", "", "", "")
		assertCode(t, err, "property.invalid_postcode")
	})

	t.Run("postcode over 8 characters", func(t *testing.T) {
		_, err := domain.NewProperty("1 Test Street", "AB12 34CDE", "", "")
		assertCode(t, err, "property.invalid_postcode_length")
	})

	t.Run("postcode of exactly 8 characters", func(t *testing.T) {
		_, err := domain.NewProperty("1 Test Street", "AB12 3CD", "", "")
		assert.NoError(t, err)
	})
}

func TestPropertyString(t *testing.T) {
	p, err := domain.NewProperty("1 Test Street", "AB1 2CD", "Testville", "")
	require.NoError(t, err)
	assert.Equal(t, "1 Test Street, Testville, AB1 2CD", p.String())
}
