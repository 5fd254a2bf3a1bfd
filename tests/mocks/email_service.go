package mocks

import (
	"context"

	"employee-portal/internal/domain"

	"github.com/stretchr/testify/mock"
)

type EmailService struct {
	mock.Mock
}

func (m *EmailService) SendRequestSubmittedEmail(ctx context.Context, toEmail, recipientName, requesterName string, req *domain.Request) error {
	args := m.Called(ctx, toEmail, recipientName, requesterName, req)
	return args.Error(0)
}

func (m *EmailService) SendRequestDecisionEmail(ctx context.Context, toEmail, recipientName string, req *domain.Request) error {
	args := m.Called(ctx, toEmail, recipientName, req)
	return args.Error(0)
}

func (m *EmailService) SendIncidentReportedEmail(ctx context.Context, toEmail, recipientName, description string) error {
	args := m.Called(ctx, toEmail, recipientName, description)
	return args.Error(0)
}
