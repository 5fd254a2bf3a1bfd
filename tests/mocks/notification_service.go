package mocks

import (
	"context"

	"employee-portal/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type NotificationService struct {
	mock.Mock
}

func (m *NotificationService) NotifyRequestSubmitted(ctx context.Context, req *domain.Request) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *NotificationService) NotifyRequestDecision(ctx context.Context, req *domain.Request, reviewerID uuid.UUID) error {
	args := m.Called(ctx, req, reviewerID)
	return args.Error(0)
}

func (m *NotificationService) NotifyIncidentReported(ctx context.Context, incident *domain.Incident) error {
	args := m.Called(ctx, incident)
	return args.Error(0)
}

func (m *NotificationService) List(ctx context.Context, employeeID uuid.UUID, unreadOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error) {
	args := m.Called(ctx, employeeID, unreadOnly, params)
	return args.Get(0).(domain.PaginatedResponse[domain.Notification]), args.Error(1)
}

func (m *NotificationService) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *NotificationService) MarkAllAsRead(ctx context.Context, employeeID uuid.UUID) error {
	args := m.Called(ctx, employeeID)
	return args.Error(0)
}

func (m *NotificationService) CountUnread(ctx context.Context, employeeID uuid.UUID) (int64, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *NotificationService) SetLocale(locale string) {
	m.Called(locale)
}
