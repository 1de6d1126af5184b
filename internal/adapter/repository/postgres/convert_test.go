package postgres

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/kioko/vaultledger/internal/domain"
)

func TestNumericConversionRoundTrip(t *testing.T) {
	for _, raw := range []string{"0", "100", "12345.67", "-250.5", "99999999999.99"} {
		d, err := decimal.NewFromString(raw)
		require.NoError(t, err)

		got := numericToDecimal(decimalToNumeric(d))
		require.True(t, d.Equal(got), "round trip of %s gave %s", raw, got)
	}
}

func TestNumericToDecimalInvalid(t *testing.T) {
	got := numericToDecimal(decimalToNumeric(decimal.Decimal{}))
	require.True(t, got.IsZero())
}

func TestDenominationJSONRoundTrip(t *testing.T) {
	v := domain.DenominationVector{Ones: 5, Forties: 2, FiveHundreds: 10, Thousands: 3}

	got := jsonToDenoms(denomsToJSON(v))
	require.Equal(t, v, got)

	require.True(t, jsonToDenoms(nil).IsZero())
}

func TestTextPtrConversion(t *testing.T) {
	require.Nil(t, textToPtr(ptrToText(nil)))

	s := "branch-7"
	got := textToPtr(ptrToText(&s))
	require.NotNil(t, got)
	require.Equal(t, s, *got)
}
