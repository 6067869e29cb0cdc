package attendance

import (
	"time"

	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/config"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/period"
)

const (
	ClassPresent  = "PRESENT"
	ClassAbsent   = "ABSENT"
	ClassLate     = "LATE"
	ClassEarlyOut = "EARLY_OUT"
	ClassOnLeave  = "ON_LEAVE"
)

// DayCover is the leave ledger's verdict for a day, as consumed here. The
// aggregator maps leave coverage into this enum so the two packages stay
// decoupled.
type DayCover int8

const (
	CoverNone DayCover = iota
	CoverPaid
	CoverUnpaid
)

type DayClassification struct {
	Date            time.Time
	Class           string
	LateMinutes     int
	EarlyOutMinutes int
}

// LatenessSummary keeps the raw minute lists, not a running counter, so the
// threshold deduction is a pure function of the period's facts.
type LatenessSummary struct {
	LateMinutes     []int
	EarlyOutMinutes []int
	DeductionDays   int
}

type Evaluator struct {
	rules config.AttendanceRules
}

func NewEvaluator(rules config.AttendanceRules) *Evaluator {
	return &Evaluator{rules: rules}
}

// Evaluate classifies every calendar day of the period. It never mutates
// attendance data. Rules:
//   - a day covered by leave is ON_LEAVE and excluded from lateness tracking
//   - a day with no row and no leave is ABSENT
//   - clock-in after workday start + grace is LATE, accumulating minutes
//   - clock-out before workday end is EARLY_OUT, accumulating minutes
//   - a manual (HR override) row wins over a system row for the same day
func (e *Evaluator) Evaluate(
	p period.Period,
	rows []Attendance,
	cover map[string]DayCover,
) ([]DayClassification, LatenessSummary, error) {
	if p.Start.IsZero() || p.End.IsZero() {
		return nil, LatenessSummary{}, period.ErrInvalidPeriod
	}

	byDay := make(map[string]Attendance, len(rows))
	for _, row := range rows {
		key := row.AttendanceDate.Format("2006-01-02")
		existing, ok := byDay[key]
		if !ok || (existing.Source != SourceManual && row.Source == SourceManual) {
			byDay[key] = row
		}
	}

	var (
		classifications = make([]DayClassification, 0, p.Days())
		summary         LatenessSummary
	)

	for _, day := range p.Dates() {
		key := day.Format("2006-01-02")

		if cover[key] != CoverNone {
			classifications = append(classifications, DayClassification{Date: day, Class: ClassOnLeave})
			continue
		}

		row, ok := byDay[key]
		if !ok {
			classifications = append(classifications, DayClassification{Date: day, Class: ClassAbsent})
			continue
		}

		dc := DayClassification{Date: day, Class: ClassPresent}

		graceEnd := clockOn(day, e.rules.WorkdayStart).Add(time.Duration(e.rules.GraceMinutes) * time.Minute)
		if row.ClockIn.After(graceEnd) {
			dc.LateMinutes = int(row.ClockIn.Sub(graceEnd).Minutes())
			dc.Class = ClassLate
			summary.LateMinutes = append(summary.LateMinutes, dc.LateMinutes)
		}

		if row.ClockOut != nil {
			workdayEnd := clockOn(day, e.rules.WorkdayEnd)
			if row.ClockOut.Before(workdayEnd) {
				dc.EarlyOutMinutes = int(workdayEnd.Sub(*row.ClockOut).Minutes())
				summary.EarlyOutMinutes = append(summary.EarlyOutMinutes, dc.EarlyOutMinutes)
				if dc.Class == ClassPresent {
					dc.Class = ClassEarlyOut
				}
			}
		}

		classifications = append(classifications, dc)
	}

	summary.DeductionDays = DeductionDays(summary.LateMinutes, summary.EarlyOutMinutes, e.rules)

	return classifications, summary, nil
}

// DeductionDays converts accumulated late/early-out days into whole days of
// deducted pay once they cross the configured thresholds.
func DeductionDays(lateMinutes, earlyOutMinutes []int, rules config.AttendanceRules) int {
	days := 0
	if rules.LateDaysPerDeduction > 0 {
		days += len(lateMinutes) / rules.LateDaysPerDeduction * rules.PenaltyDays
	}
	if rules.EarlyOutDaysPerDeduction > 0 {
		days += len(earlyOutMinutes) / rules.EarlyOutDaysPerDeduction * rules.PenaltyDays
	}
	return days
}

// clockOn anchors a "15:04" clock time onto a calendar day in UTC.
func clockOn(day time.Time, hhmm string) time.Time {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return day
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC)
}
