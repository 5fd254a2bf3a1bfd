package mocks

import (
	"context"
	"time"

	"employee-portal/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type ScheduleRepository struct {
	mock.Mock
}

func (m *ScheduleRepository) Create(ctx context.Context, schedule *domain.Schedule) error {
	args := m.Called(ctx, schedule)
	return args.Error(0)
}

func (m *ScheduleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ScheduleRepository) ListByEmployee(ctx context.Context, employeeID uuid.UUID, from, to time.Time) ([]domain.Schedule, error) {
	args := m.Called(ctx, employeeID, from, to)
	return args.Get(0).([]domain.Schedule), args.Error(1)
}

func (m *ScheduleRepository) CountWorkdays(ctx context.Context, employeeID uuid.UUID, from, to time.Time) (int, error) {
	args := m.Called(ctx, employeeID, from, to)
	return args.Int(0), args.Error(1)
}

func (m *ScheduleRepository) HasWorkday(ctx context.Context, employeeID uuid.UUID, date time.Time) (bool, error) {
	args := m.Called(ctx, employeeID, date)
	return args.Bool(0), args.Error(1)
}
