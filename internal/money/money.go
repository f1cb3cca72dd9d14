// internal/money/money.go
package money

import "github.com/shopspring/decimal"

// Balances are stored as integer minor units (cents) so that no binary
// floating point value is ever persisted. The decimal representation exists
// only at the HTTP boundary; everything between the two conversions below is
// plain int64 arithmetic.

// ToCents converts a decimal amount of major currency units into cents.
// Conversion is exact for any amount with at most two fractional digits.
// Amounts with more precision are rounded half away from zero to the nearest
// cent (1.005 -> 101, 1.004 -> 100), so no input is silently truncated.
func ToCents(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}

// FromCents converts an integer number of cents back into a decimal amount
// of major currency units.
func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// Format renders an amount with exactly two decimal places for user-facing
// messages (5000 cents -> "50.00").
func Format(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
