package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"

	"employee-portal/internal/domain"
	"employee-portal/internal/repository"
)

const dateLayout = "2006-01-02"

type Service interface {
	Create(ctx context.Context, input domain.CreateScheduleInput) (*domain.Schedule, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByEmployee(ctx context.Context, employeeID uuid.UUID, from, to time.Time) ([]domain.Schedule, error)
}

type service struct {
	scheduleRepo repository.ScheduleRepository
	employeeRepo repository.EmployeeRepository
}

func NewService(scheduleRepo repository.ScheduleRepository, employeeRepo repository.EmployeeRepository) Service {
	return &service{scheduleRepo: scheduleRepo, employeeRepo: employeeRepo}
}

func (s *service) Create(ctx context.Context, input domain.CreateScheduleInput) (*domain.Schedule, error) {
	if input.WorkDate == "" {
		return nil, domain.NewValidationError("work_date", "is required")
	}
	workDate, err := time.Parse(dateLayout, input.WorkDate)
	if err != nil {
		return nil, domain.NewValidationError("work_date", "must be formatted as YYYY-MM-DD")
	}
	if input.ShiftStart == "" || input.ShiftEnd == "" {
		return nil, domain.NewValidationError("shift", "start and end are required")
	}

	if _, err := s.employeeRepo.GetByID(ctx, input.EmployeeID); err != nil {
		return nil, err
	}

	sched := &domain.Schedule{
		ID:         uuid.New(),
		EmployeeID: input.EmployeeID,
		WorkDate:   workDate,
		ShiftStart: input.ShiftStart,
		ShiftEnd:   input.ShiftEnd,
	}
	if err := s.scheduleRepo.Create(ctx, sched); err != nil {
		return nil, err
	}
	return sched, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.scheduleRepo.Delete(ctx, id)
}

func (s *service) ListByEmployee(ctx context.Context, employeeID uuid.UUID, from, to time.Time) ([]domain.Schedule, error) {
	return s.scheduleRepo.ListByEmployee(ctx, employeeID, from, to)
}
