package config

import (
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// AttendanceRules carries the thresholds the attendance evaluator applies.
// The concrete values are business configuration, not code: they load from
// the environment with conservative defaults.
type AttendanceRules struct {
	WorkdayStart string // "15:04" clock time
	WorkdayEnd   string
	GraceMinutes int // clock-in later than start+grace counts as late

	// Threshold-triggered deduction: every LateDaysPerDeduction late days
	// cost PenaltyDays days of pay. Same shape for early-outs.
	LateDaysPerDeduction     int
	EarlyOutDaysPerDeduction int
	PenaltyDays              int
}

// LeaveTypeRule configures how a leave type hits pay. Ratio is the fraction
// of a day's pay deducted per covered day; paid types deduct nothing.
type LeaveTypeRule struct {
	Paid  bool
	Ratio decimal.Decimal
}

// DisburseRules bounds the disbursement orchestrator.
type DisburseRules struct {
	BulkWorkers   int
	PayLockTTL    time.Duration
	LedgerRetries int
	LedgerBackoff time.Duration
}

type PayrollRules struct {
	Attendance AttendanceRules
	LeaveTypes map[string]LeaveTypeRule
	Disburse   DisburseRules
}

func LoadPayrollRules() PayrollRules {
	return PayrollRules{
		Attendance: AttendanceRules{
			WorkdayStart:             envString("PAYROLL_WORKDAY_START", "09:00"),
			WorkdayEnd:               envString("PAYROLL_WORKDAY_END", "17:00"),
			GraceMinutes:             envInt("PAYROLL_GRACE_MINUTES", 15),
			LateDaysPerDeduction:     envInt("PAYROLL_LATE_DAYS_PER_DEDUCTION", 3),
			EarlyOutDaysPerDeduction: envInt("PAYROLL_EARLY_OUT_DAYS_PER_DEDUCTION", 3),
			PenaltyDays:              envInt("PAYROLL_PENALTY_DAYS", 1),
		},
		LeaveTypes: DefaultLeaveTypes(),
		Disburse: DisburseRules{
			BulkWorkers:   envInt("PAYROLL_BULK_WORKERS", 8),
			PayLockTTL:    envDuration("PAYROLL_PAY_LOCK_TTL", 30*time.Second),
			LedgerRetries: envInt("PAYROLL_LEDGER_RETRIES", 3),
			LedgerBackoff: envDuration("PAYROLL_LEDGER_BACKOFF", 500*time.Millisecond),
		},
	}
}

// DefaultLeaveTypes mirrors the leave catalogue of the admin system. HALF_DAY
// shows why ratios are table-driven rather than a paid/unpaid boolean.
func DefaultLeaveTypes() map[string]LeaveTypeRule {
	return map[string]LeaveTypeRule{
		"ANNUAL":    {Paid: true, Ratio: decimal.Zero},
		"SICK":      {Paid: true, Ratio: decimal.Zero},
		"MATERNITY": {Paid: true, Ratio: decimal.Zero},
		"UNPAID":    {Paid: false, Ratio: decimal.NewFromInt(1)},
		"HALF_DAY":  {Paid: false, Ratio: decimal.RequireFromString("0.5")},
	}
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
