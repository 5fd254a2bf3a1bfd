package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"employee-portal/internal/domain"
)

type AttendanceRepository interface {
	Create(ctx context.Context, att *domain.Attendance) error
	GetForDate(ctx context.Context, employeeID uuid.UUID, date time.Time) (*domain.Attendance, error)
	SetClockOut(ctx context.Context, id uuid.UUID, clockOut time.Time) error
	ListByEmployee(ctx context.Context, employeeID uuid.UUID, params domain.PaginationParams) ([]domain.Attendance, int64, error)
}

type attendanceRepository struct {
	db *sqlx.DB
}

func NewAttendanceRepository(db *sqlx.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Create(ctx context.Context, att *domain.Attendance) error {
	query := `
		INSERT INTO attendance (id, employee_id, work_date, clock_in)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		att.ID, att.EmployeeID, att.WorkDate, att.ClockIn,
	).Scan(&att.CreatedAt, &att.UpdatedAt)
}

func (r *attendanceRepository) GetForDate(ctx context.Context, employeeID uuid.UUID, date time.Time) (*domain.Attendance, error) {
	var att domain.Attendance
	query := `SELECT * FROM attendance WHERE employee_id = $1 AND work_date = $2`
	if err := r.db.GetContext(ctx, &att, query, employeeID, date); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("attendance record")
		}
		return nil, err
	}
	return &att, nil
}

// SetClockOut only fills an empty clock_out so a double clock-out is a no-op
// reported to the caller.
func (r *attendanceRepository) SetClockOut(ctx context.Context, id uuid.UUID, clockOut time.Time) error {
	query := `UPDATE attendance SET clock_out = $2, updated_at = NOW() WHERE id = $1 AND clock_out IS NULL`
	res, err := r.db.ExecContext(ctx, query, id, clockOut)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNoRowsUpdated
	}
	return nil
}

func (r *attendanceRepository) ListByEmployee(ctx context.Context, employeeID uuid.UUID, params domain.PaginationParams) ([]domain.Attendance, int64, error) {
	params.Validate()

	var total int64
	countQuery := `SELECT COUNT(*) FROM attendance WHERE employee_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, employeeID); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT * FROM attendance
		WHERE employee_id = $1
		ORDER BY work_date DESC
		LIMIT $2 OFFSET $3`

	var records []domain.Attendance
	err := r.db.SelectContext(ctx, &records, query, employeeID, params.PageSize, params.Offset())
	return records, total, err
}
