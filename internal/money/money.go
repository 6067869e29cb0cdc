// Package money keeps all payroll arithmetic on shopspring decimals and
// funnels every conversion back to currency minor units through banker's
// rounding, so a large payroll run carries no systematic rounding bias.
package money

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// FromMinor lifts an int64 minor-unit amount into a decimal.
func FromMinor(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

// ToMinorBankers rounds to a whole minor unit using round-half-to-even.
func ToMinorBankers(d decimal.Decimal) int64 {
	return d.RoundBank(0).IntPart()
}

// Percent returns pct% of base, unrounded.
func Percent(base decimal.Decimal, pct decimal.Decimal) decimal.Decimal {
	return base.Mul(pct).Div(hundred)
}

// Prorate scales base by worked/total days, unrounded. total must be > 0.
func Prorate(base decimal.Decimal, worked, total decimal.Decimal) decimal.Decimal {
	return base.Mul(worked).Div(total)
}
