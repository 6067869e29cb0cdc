package leave

import (
	"time"

	leaveerrors "github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/leave/errors"

	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/config"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/period"

	"github.com/shopspring/decimal"
)

type Coverage string

const (
	CoveragePaid   Coverage = "PAID"
	CoverageUnpaid Coverage = "UNPAID"
)

// DaysCovered resolves which days of the period fall under approved leave,
// keyed by "2006-01-02". Only APPROVED requests count. Overlapping approved
// ranges for the same employee violate an upstream invariant; they are
// surfaced as an error, never guessed around.
func DaysCovered(
	requests []LeaveRequest,
	p period.Period,
	types map[string]config.LeaveTypeRule,
) (map[string]Coverage, error) {
	covered := make(map[string]Coverage)

	for _, req := range requests {
		if req.Status != StatusApproved {
			continue
		}

		for d := req.StartDate; !d.After(req.EndDate); d = d.AddDate(0, 0, 1) {
			if !p.Contains(d) {
				continue
			}
			key := d.UTC().Format("2006-01-02")
			if _, dup := covered[key]; dup {
				return nil, leaveerrors.ErrLeaveOverlapDetected
			}

			rule, ok := types[req.LeaveType]
			if ok && rule.Paid {
				covered[key] = CoveragePaid
			} else {
				covered[key] = CoverageUnpaid
			}
		}
	}

	return covered, nil
}

// UnpaidDeductionEquivalent sums the day-equivalents deducted for unpaid
// coverage, weighted by each type's configured ratio. Requests are needed to
// recover the leave type per day; days outside the cover map contribute
// nothing.
func UnpaidDeductionEquivalent(
	requests []LeaveRequest,
	cover map[string]Coverage,
	types map[string]config.LeaveTypeRule,
) decimal.Decimal {
	typeByDay := make(map[string]string)
	for _, req := range requests {
		if req.Status != StatusApproved {
			continue
		}
		for d := req.StartDate; !d.After(req.EndDate); d = d.AddDate(0, 0, 1) {
			typeByDay[d.UTC().Format("2006-01-02")] = req.LeaveType
		}
	}

	total := decimal.Zero
	for key, cov := range cover {
		if cov != CoverageUnpaid {
			continue
		}
		ratio := decimal.NewFromInt(1)
		if rule, ok := types[typeByDay[key]]; ok {
			ratio = rule.Ratio
		}
		total = total.Add(ratio)
	}
	return total
}

// countDays is inclusive on both ends.
func countDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}
