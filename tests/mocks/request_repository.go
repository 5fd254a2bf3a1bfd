package mocks

import (
	"context"
	"time"

	"employee-portal/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type RequestRepository struct {
	mock.Mock
}

func (m *RequestRepository) Create(ctx context.Context, req *domain.Request) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *RequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Request), args.Error(1)
}

func (m *RequestRepository) List(ctx context.Context, filter domain.RequestFilter, params domain.PaginationParams) ([]domain.Request, int64, error) {
	args := m.Called(ctx, filter, params)
	return args.Get(0).([]domain.Request), args.Get(1).(int64), args.Error(2)
}

func (m *RequestRepository) ExistsActiveForDate(ctx context.Context, employeeID uuid.UUID, reqType domain.RequestType, date time.Time) (bool, error) {
	args := m.Called(ctx, employeeID, reqType, date)
	return args.Bool(0), args.Error(1)
}

func (m *RequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from []domain.RequestStatus, upd domain.RequestUpdate) (*domain.Request, error) {
	args := m.Called(ctx, id, from, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Request), args.Error(1)
}
