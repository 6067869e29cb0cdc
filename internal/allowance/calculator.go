package allowance

import (
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/money"

	"github.com/shopspring/decimal"
)

// Compute applies the allowance settings and PF percentage to a prorated
// base. Allowances only ever add to pay; the PF contribution is the single
// deduction produced here. Both results are banker's-rounded minor units.
// Pure: no I/O, same inputs give the same outputs.
func Compute(
	settings []AllowanceSetting,
	pfPercent decimal.Decimal,
	baseProrated decimal.Decimal,
) (allowanceMinor int64, pfMinor int64) {
	total := decimal.Zero

	for _, setting := range settings {
		switch setting.Kind {
		case KindFixed:
			total = total.Add(money.FromMinor(setting.AmountMinor))
		case KindPercentOfBase:
			total = total.Add(money.Percent(baseProrated, setting.Percent))
		}
	}

	if total.IsNegative() {
		total = decimal.Zero
	}

	pf := money.Percent(baseProrated, pfPercent)

	return money.ToMinorBankers(total), money.ToMinorBankers(pf)
}
