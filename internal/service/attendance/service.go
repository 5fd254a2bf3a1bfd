package attendance

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"employee-portal/internal/domain"
	"employee-portal/internal/repository"
)

type Service interface {
	ClockIn(ctx context.Context, employeeID uuid.UUID) (*domain.Attendance, error)
	ClockOut(ctx context.Context, employeeID uuid.UUID) (*domain.Attendance, error)
	ListByEmployee(ctx context.Context, employeeID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Attendance], error)
}

type service struct {
	attendanceRepo repository.AttendanceRepository
	scheduleRepo   repository.ScheduleRepository
	now            func() time.Time
}

func NewService(attendanceRepo repository.AttendanceRepository, scheduleRepo repository.ScheduleRepository) Service {
	return &service{
		attendanceRepo: attendanceRepo,
		scheduleRepo:   scheduleRepo,
		now:            time.Now,
	}
}

func (s *service) ClockIn(ctx context.Context, employeeID uuid.UUID) (*domain.Attendance, error) {
	now := s.now()
	workDate := now.Truncate(24 * time.Hour)

	scheduled, err := s.scheduleRepo.HasWorkday(ctx, employeeID, workDate)
	if err != nil {
		return nil, err
	}
	if !scheduled {
		return nil, domain.NewValidationError("work_date", "no scheduled workday for today")
	}

	if existing, err := s.attendanceRepo.GetForDate(ctx, employeeID, workDate); err == nil && existing != nil {
		return nil, domain.NewConflictError("already clocked in today")
	} else if err != nil {
		var notFound *domain.NotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	att := &domain.Attendance{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		WorkDate:   workDate,
		ClockIn:    now,
	}
	if err := s.attendanceRepo.Create(ctx, att); err != nil {
		return nil, err
	}
	return att, nil
}

func (s *service) ClockOut(ctx context.Context, employeeID uuid.UUID) (*domain.Attendance, error) {
	now := s.now()
	workDate := now.Truncate(24 * time.Hour)

	att, err := s.attendanceRepo.GetForDate(ctx, employeeID, workDate)
	if err != nil {
		return nil, err
	}

	if err := s.attendanceRepo.SetClockOut(ctx, att.ID, now); err != nil {
		if err == repository.ErrNoRowsUpdated {
			return nil, domain.NewConflictError("already clocked out today")
		}
		return nil, err
	}

	att.ClockOut = &now
	return att, nil
}

func (s *service) ListByEmployee(ctx context.Context, employeeID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Attendance], error) {
	records, total, err := s.attendanceRepo.ListByEmployee(ctx, employeeID, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Attendance]{}, err
	}
	return domain.NewPaginatedResponse(records, params.Page, params.PageSize, total), nil
}
