package mocks

import (
	"context"

	"employee-portal/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type IncidentRepository struct {
	mock.Mock
}

func (m *IncidentRepository) Create(ctx context.Context, incident *domain.Incident) error {
	args := m.Called(ctx, incident)
	return args.Error(0)
}

func (m *IncidentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Incident, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Incident), args.Error(1)
}

func (m *IncidentRepository) List(ctx context.Context, employeeID *uuid.UUID, params domain.PaginationParams) ([]domain.Incident, int64, error) {
	args := m.Called(ctx, employeeID, params)
	return args.Get(0).([]domain.Incident), args.Get(1).(int64), args.Error(2)
}

func (m *IncidentRepository) Update(ctx context.Context, incident *domain.Incident) error {
	args := m.Called(ctx, incident)
	return args.Error(0)
}

func (m *IncidentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
