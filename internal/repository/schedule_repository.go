package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"employee-portal/internal/domain"
)

type ScheduleRepository interface {
	Create(ctx context.Context, schedule *domain.Schedule) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByEmployee(ctx context.Context, employeeID uuid.UUID, from, to time.Time) ([]domain.Schedule, error)
	CountWorkdays(ctx context.Context, employeeID uuid.UUID, from, to time.Time) (int, error)
	HasWorkday(ctx context.Context, employeeID uuid.UUID, date time.Time) (bool, error)
}

type scheduleRepository struct {
	db *sqlx.DB
}

func NewScheduleRepository(db *sqlx.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) Create(ctx context.Context, schedule *domain.Schedule) error {
	query := `
		INSERT INTO schedules (id, employee_id, work_date, shift_start, shift_end)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (employee_id, work_date) DO UPDATE
		SET shift_start = EXCLUDED.shift_start, shift_end = EXCLUDED.shift_end
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		schedule.ID, schedule.EmployeeID, schedule.WorkDate,
		schedule.ShiftStart, schedule.ShiftEnd,
	).Scan(&schedule.CreatedAt)
}

func (r *scheduleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM schedules WHERE id = $1`, id)
	return err
}

func (r *scheduleRepository) ListByEmployee(ctx context.Context, employeeID uuid.UUID, from, to time.Time) ([]domain.Schedule, error) {
	var schedules []domain.Schedule
	query := `
		SELECT * FROM schedules
		WHERE employee_id = $1 AND work_date BETWEEN $2 AND $3
		ORDER BY work_date`
	err := r.db.SelectContext(ctx, &schedules, query, employeeID, from, to)
	return schedules, err
}

func (r *scheduleRepository) CountWorkdays(ctx context.Context, employeeID uuid.UUID, from, to time.Time) (int, error) {
	var count int
	query := `
		SELECT COUNT(*) FROM schedules
		WHERE employee_id = $1 AND work_date BETWEEN $2 AND $3`
	err := r.db.GetContext(ctx, &count, query, employeeID, from, to)
	return count, err
}

func (r *scheduleRepository) HasWorkday(ctx context.Context, employeeID uuid.UUID, date time.Time) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM schedules WHERE employee_id = $1 AND work_date = $2)`
	err := r.db.GetContext(ctx, &exists, query, employeeID, date)
	return exists, err
}
