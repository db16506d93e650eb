package domain_test

import (
	"testing"

	"github.com/hearthsure/policyadmin/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInsuranceType(t *testing.T) {
	for _, input := range []string{"HOUSEHOLD", "household", "House_Hold"} {
		got, err := domain.ParseInsuranceType(input)
		require.NoError(t, err, input)
		assert.Equal(t, domain.Household, got)
	}
	for _, input := range []string{"BUY_TO_LET", "BuyToLet", "buy-to-let"} {
		got, err := domain.ParseInsuranceType(input)
		require.NoError(t, err, input)
		assert.Equal(t, domain.BuyToLet, got)
	}

	_, err := domain.ParseInsuranceType("PET")
	assertCode(t, err, "policy.invalid_insurance_type")
}

func TestParsePaymentMethod(t *testing.T) {
	tests := []struct {
		input string
		want  domain.PaymentMethod
	}{
		{"CARD", domain.Card},
		{"card", domain.Card},
		{"DIRECT_DEBIT", domain.DirectDebit},
		{"DirectDebit", domain.DirectDebit},
		{"direct-debit", domain.DirectDebit},
		{"Cheque", domain.Cheque},
	}
	for _, tt := range tests {
		got, err := domain.ParsePaymentMethod(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got)
	}

	_, err := domain.ParsePaymentMethod("BITCOIN")
	assertCode(t, err, "payment.invalid_type")
}
