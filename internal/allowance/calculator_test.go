package allowance_test

import (
	"testing"

	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/allowance"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/money"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	t.Run("reference scenario", func(t *testing.T) {
		// Base 30,000.00 prorated for 2 unpaid days of a 30-day month,
		// one 10% allowance, PF at 5%.
		baseProrated := money.Prorate(
			money.FromMinor(3_000_000),
			decimal.NewFromInt(28),
			decimal.NewFromInt(30),
		)
		settings := []allowance.AllowanceSetting{
			{Name: "house-rent", Kind: allowance.KindPercentOfBase, Percent: decimal.NewFromInt(10)},
		}

		allowanceMinor, pfMinor := allowance.Compute(settings, decimal.NewFromInt(5), baseProrated)

		assert.Equal(t, int64(2_800_000), money.ToMinorBankers(baseProrated))
		assert.Equal(t, int64(280_000), allowanceMinor)
		assert.Equal(t, int64(140_000), pfMinor)
	})

	t.Run("fixed and percent mixed", func(t *testing.T) {
		base := money.FromMinor(1_000_000)
		settings := []allowance.AllowanceSetting{
			{Name: "transport", Kind: allowance.KindFixed, AmountMinor: 50_000},
			{Name: "medical", Kind: allowance.KindPercentOfBase, Percent: decimal.NewFromInt(3)},
		}

		allowanceMinor, pfMinor := allowance.Compute(settings, decimal.Zero, base)

		assert.Equal(t, int64(80_000), allowanceMinor)
		assert.Equal(t, int64(0), pfMinor)
	})

	t.Run("no settings", func(t *testing.T) {
		allowanceMinor, pfMinor := allowance.Compute(nil, decimal.NewFromInt(5), money.FromMinor(1_000_000))

		assert.Equal(t, int64(0), allowanceMinor)
		assert.Equal(t, int64(50_000), pfMinor)
	})

	t.Run("deterministic", func(t *testing.T) {
		base := money.FromMinor(1_234_567)
		settings := []allowance.AllowanceSetting{
			{Name: "transport", Kind: allowance.KindPercentOfBase, Percent: decimal.RequireFromString("7.25")},
		}

		a1, p1 := allowance.Compute(settings, decimal.RequireFromString("4.5"), base)
		a2, p2 := allowance.Compute(settings, decimal.RequireFromString("4.5"), base)

		assert.Equal(t, a1, a2)
		assert.Equal(t, p1, p2)
	})
}
