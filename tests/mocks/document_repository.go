package mocks

import (
	"context"

	"employee-portal/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type DocumentRepository struct {
	mock.Mock
}

func (m *DocumentRepository) Create(ctx context.Context, doc *domain.Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *DocumentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *DocumentRepository) ListByEmployee(ctx context.Context, employeeID uuid.UUID, params domain.PaginationParams) ([]domain.Document, int64, error) {
	args := m.Called(ctx, employeeID, params)
	return args.Get(0).([]domain.Document), args.Get(1).(int64), args.Error(2)
}

func (m *DocumentRepository) Update(ctx context.Context, doc *domain.Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *DocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
