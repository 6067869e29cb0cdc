package leave_test

import (
	"testing"
	"time"

	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/config"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/leave"
	leaveerrors "github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/leave/errors"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/period"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(day int) time.Time {
	return time.Date(2026, 6, day, 0, 0, 0, 0, time.UTC)
}

func approved(leaveType string, start, end int) leave.LeaveRequest {
	return leave.LeaveRequest{
		LeaveType: leaveType,
		StartDate: d(start),
		EndDate:   d(end),
		Status:    leave.StatusApproved,
	}
}

func TestDaysCovered(t *testing.T) {
	p, err := period.ParseMonth("2026-06")
	assert.NoError(t, err)
	types := config.DefaultLeaveTypes()

	t.Run("paid and unpaid coverage", func(t *testing.T) {
		requests := []leave.LeaveRequest{
			approved("ANNUAL", 1, 2),
			approved("UNPAID", 10, 11),
		}

		cover, err := leave.DaysCovered(requests, p, types)

		assert.NoError(t, err)
		assert.Len(t, cover, 4)
		assert.Equal(t, leave.CoveragePaid, cover["2026-06-01"])
		assert.Equal(t, leave.CoveragePaid, cover["2026-06-02"])
		assert.Equal(t, leave.CoverageUnpaid, cover["2026-06-10"])
		assert.Equal(t, leave.CoverageUnpaid, cover["2026-06-11"])
	})

	t.Run("pending requests do not cover", func(t *testing.T) {
		pending := approved("ANNUAL", 5, 6)
		pending.Status = leave.StatusPending

		cover, err := leave.DaysCovered([]leave.LeaveRequest{pending}, p, types)

		assert.NoError(t, err)
		assert.Empty(t, cover)
	})

	t.Run("range clipped to period", func(t *testing.T) {
		requests := []leave.LeaveRequest{
			{
				LeaveType: "ANNUAL",
				StartDate: time.Date(2026, 5, 28, 0, 0, 0, 0, time.UTC),
				EndDate:   d(2),
				Status:    leave.StatusApproved,
			},
		}

		cover, err := leave.DaysCovered(requests, p, types)

		assert.NoError(t, err)
		assert.Len(t, cover, 2)
	})

	t.Run("overlapping approved ranges rejected", func(t *testing.T) {
		requests := []leave.LeaveRequest{
			approved("ANNUAL", 1, 3),
			approved("SICK", 3, 5),
		}

		_, err := leave.DaysCovered(requests, p, types)

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveOverlapDetected)
	})

	t.Run("unknown type counts as unpaid", func(t *testing.T) {
		cover, err := leave.DaysCovered([]leave.LeaveRequest{approved("SABBATICAL", 1, 1)}, p, types)

		assert.NoError(t, err)
		assert.Equal(t, leave.CoverageUnpaid, cover["2026-06-01"])
	})
}

func TestUnpaidDeductionEquivalent(t *testing.T) {
	p, err := period.ParseMonth("2026-06")
	assert.NoError(t, err)
	types := config.DefaultLeaveTypes()

	t.Run("full day unpaid", func(t *testing.T) {
		requests := []leave.LeaveRequest{approved("UNPAID", 1, 2)}
		cover, err := leave.DaysCovered(requests, p, types)
		assert.NoError(t, err)

		total := leave.UnpaidDeductionEquivalent(requests, cover, types)

		assert.True(t, total.Equal(decimal.NewFromInt(2)), "got %s", total)
	})

	t.Run("half day ratio", func(t *testing.T) {
		requests := []leave.LeaveRequest{approved("HALF_DAY", 1, 3)}
		cover, err := leave.DaysCovered(requests, p, types)
		assert.NoError(t, err)

		total := leave.UnpaidDeductionEquivalent(requests, cover, types)

		assert.True(t, total.Equal(decimal.RequireFromString("1.5")), "got %s", total)
	})

	t.Run("paid leave deducts nothing", func(t *testing.T) {
		requests := []leave.LeaveRequest{approved("ANNUAL", 1, 5)}
		cover, err := leave.DaysCovered(requests, p, types)
		assert.NoError(t, err)

		total := leave.UnpaidDeductionEquivalent(requests, cover, types)

		assert.True(t, total.IsZero(), "got %s", total)
	})
}
