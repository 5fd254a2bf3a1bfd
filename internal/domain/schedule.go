package domain

import (
	"time"

	"github.com/google/uuid"
)

// Schedule is one scheduled workday for one employee. Leave day counting
// intersects the requested range with these rows, not with calendar days.
type Schedule struct {
	ID         uuid.UUID `json:"id" db:"id"`
	EmployeeID uuid.UUID `json:"employee_id" db:"employee_id"`
	WorkDate   time.Time `json:"work_date" db:"work_date"`
	ShiftStart string    `json:"shift_start" db:"shift_start"`
	ShiftEnd   string    `json:"shift_end" db:"shift_end"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

type CreateScheduleInput struct {
	EmployeeID uuid.UUID `json:"employee_id"`
	WorkDate   string    `json:"work_date"`
	ShiftStart string    `json:"shift_start"`
	ShiftEnd   string    `json:"shift_end"`
}
