package mocks

import (
	"context"
	"time"

	"employee-portal/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type AttendanceRepository struct {
	mock.Mock
}

func (m *AttendanceRepository) Create(ctx context.Context, att *domain.Attendance) error {
	args := m.Called(ctx, att)
	return args.Error(0)
}

func (m *AttendanceRepository) GetForDate(ctx context.Context, employeeID uuid.UUID, date time.Time) (*domain.Attendance, error) {
	args := m.Called(ctx, employeeID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attendance), args.Error(1)
}

func (m *AttendanceRepository) SetClockOut(ctx context.Context, id uuid.UUID, clockOut time.Time) error {
	args := m.Called(ctx, id, clockOut)
	return args.Error(0)
}

func (m *AttendanceRepository) ListByEmployee(ctx context.Context, employeeID uuid.UUID, params domain.PaginationParams) ([]domain.Attendance, int64, error) {
	args := m.Called(ctx, employeeID, params)
	return args.Get(0).([]domain.Attendance), args.Get(1).(int64), args.Error(2)
}
