package domain

import (
	"time"

	"github.com/google/uuid"
)

// Attendance is one clock-in/clock-out pair per employee per workday,
// recorded against the schedule.
type Attendance struct {
	ID         uuid.UUID  `json:"id" db:"id"`
	EmployeeID uuid.UUID  `json:"employee_id" db:"employee_id"`
	WorkDate   time.Time  `json:"work_date" db:"work_date"`
	ClockIn    time.Time  `json:"clock_in" db:"clock_in"`
	ClockOut   *time.Time `json:"clock_out,omitempty" db:"clock_out"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at" db:"updated_at"`
}
