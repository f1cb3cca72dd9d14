// internal/money/money_test.go
package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCents(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   int64
	}{
		{"TwoFractionalDigits", "12.34", 1234},
		{"WholeUnits", "50", 5000},
		{"TrailingZeros", "50.00", 5000},
		{"SingleCent", "0.01", 1},
		{"SingleFractionalDigit", "0.1", 10},
		{"LargeAmount", "12345678.99", 1234567899},
		{"RoundsHalfUp", "1.005", 101},
		{"RoundsDown", "1.004", 100},
		{"RoundsUp", "1.006", 101},
		{"SubCentRoundsToZero", "0.001", 0},
		{"SubCentRoundsToOne", "0.005", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount := decimal.RequireFromString(tt.amount)
			assert.Equal(t, tt.want, ToCents(amount))
		})
	}
}

func TestFromCents(t *testing.T) {
	assert.True(t, decimal.RequireFromString("50").Equal(FromCents(5000)))
	assert.True(t, decimal.RequireFromString("0.01").Equal(FromCents(1)))
	assert.True(t, decimal.Zero.Equal(FromCents(0)))
	assert.Equal(t, "50.00", Format(FromCents(5000)))
	assert.Equal(t, "0.00", Format(FromCents(0)))
	assert.Equal(t, "123.45", Format(FromCents(12345)))
}

// Depositing X and withdrawing the same X must cancel out exactly for any
// input with at most two fractional digits.
func TestRoundTripNoDrift(t *testing.T) {
	amounts := []string{"0.01", "0.10", "1.00", "12.34", "99.99", "1000000.01"}

	var balance int64
	for _, s := range amounts {
		amount := decimal.RequireFromString(s)
		balance += ToCents(amount)
	}
	for _, s := range amounts {
		amount := decimal.RequireFromString(s)
		balance -= ToCents(amount)
	}

	require.Equal(t, int64(0), balance)
}
