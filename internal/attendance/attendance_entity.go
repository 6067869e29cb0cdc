package attendance

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	SourceSystem = "SYSTEM"
	SourceManual = "MANUAL"
)

// Attendance is one raw check-in/out row for an employee day. Day
// classification (present/absent/late/early-out) is never stored; the
// evaluator derives it from these rows so re-evaluation stays deterministic.
type Attendance struct {
	ID             uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID      uuid.UUID  `gorm:"column:company_id;type:uuid;not null;index"`
	EmployeeID     uuid.UUID  `gorm:"column:employee_id;type:uuid;not null;index:idx_attendance_employee_date"`
	AttendanceDate time.Time  `gorm:"column:attendance_date;type:date;not null;index:idx_attendance_employee_date"`
	ClockIn        time.Time  `gorm:"column:clock_in;type:timestamptz;not null"`
	ClockOut       *time.Time `gorm:"column:clock_out;type:timestamptz"`
	Source         string     `gorm:"column:source;type:varchar(30);not null;default:'SYSTEM'"`
	Notes          *string    `gorm:"column:notes;type:text"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Attendance) TableName() string {
	return "attendances"
}
