package period

import (
	"net/http"
	"time"

	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/shared/apperror"
)

var ErrInvalidPeriod = apperror.New(
	apperror.CodeInvalidInput,
	"invalid payroll period",
	http.StatusBadRequest,
)

const dateLayout = "2006-01-02"

// Period is one payroll cycle, inclusive on both ends. Dates are always
// normalized to UTC midnight so day arithmetic never crosses DST.
type Period struct {
	Start time.Time
	End   time.Time
}

func New(start, end time.Time) (Period, error) {
	if start.IsZero() || end.IsZero() {
		return Period{}, ErrInvalidPeriod
	}
	start = midnight(start)
	end = midnight(end)
	if start.After(end) {
		return Period{}, ErrInvalidPeriod
	}
	return Period{Start: start, End: end}, nil
}

// ParseMonth builds the calendar-month period for "YYYY-MM".
func ParseMonth(s string) (Period, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Period{}, apperror.WrapAs(ErrInvalidPeriod, err)
	}
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return Period{Start: start, End: end}, nil
}

// ParseRange builds a period from "YYYY-MM-DD" boundary strings.
func ParseRange(startStr, endStr string) (Period, error) {
	start, err := time.Parse(dateLayout, startStr)
	if err != nil {
		return Period{}, apperror.WrapAs(ErrInvalidPeriod, err)
	}
	end, err := time.Parse(dateLayout, endStr)
	if err != nil {
		return Period{}, apperror.WrapAs(ErrInvalidPeriod, err)
	}
	return New(start, end)
}

// Days is the number of calendar days in the period, inclusive.
func (p Period) Days() int {
	return int(p.End.Sub(p.Start).Hours()/24) + 1
}

func (p Period) Contains(d time.Time) bool {
	d = midnight(d)
	return !d.Before(p.Start) && !d.After(p.End)
}

// Dates returns every calendar day in the period at UTC midnight.
func (p Period) Dates() []time.Time {
	days := make([]time.Time, 0, p.Days())
	for d := p.Start; !d.After(p.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// Key is a stable identifier for locks and idempotent posting IDs.
func (p Period) Key() string {
	return p.Start.Format(dateLayout) + "_" + p.End.Format(dateLayout)
}

func (p Period) StartString() string { return p.Start.Format(dateLayout) }
func (p Period) EndString() string   { return p.End.Format(dateLayout) }

func midnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
