package notification_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"employee-portal/internal/domain"
	"employee-portal/internal/service/notification"
	"employee-portal/tests/mocks"
)

func TestNotificationService_NotifyRequestSubmitted(t *testing.T) {
	mockNotifRepo := new(mocks.NotificationRepository)
	mockEmployeeRepo := new(mocks.EmployeeRepository)
	mockEmailSvc := new(mocks.EmailService)

	svc := notification.NewService(mockNotifRepo, mockEmployeeRepo, mockEmailSvc)

	ctx := context.Background()
	requesterID := uuid.New()
	admins := []domain.Employee{
		{ID: uuid.New(), FullName: "Admin One", Email: "one@example.com", Role: string(domain.RoleAdmin)},
		{ID: uuid.New(), FullName: "Admin Two", Email: "two@example.com", Role: string(domain.RoleAdmin)},
	}
	req := &domain.Request{
		ID:          uuid.New(),
		EmployeeID:  requesterID,
		RequestType: domain.TypeLeave,
		Status:      domain.StatusPending,
	}

	mockEmployeeRepo.On("GetByID", ctx, requesterID).Return(&domain.Employee{
		ID:       requesterID,
		FullName: "Jamie Cruz",
		Email:    "jamie@example.com",
	}, nil).Once()
	mockEmployeeRepo.On("GetAdmins", ctx).Return(admins, nil).Once()

	// One feed entry and one email per admin.
	mockNotifRepo.On("Create", ctx, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.Type == domain.NotifRequestSubmitted
	})).Return(nil).Twice()
	mockEmailSvc.On("SendRequestSubmittedEmail", ctx, admins[0].Email, admins[0].FullName, "Jamie Cruz", req).Return(nil).Once()
	mockEmailSvc.On("SendRequestSubmittedEmail", ctx, admins[1].Email, admins[1].FullName, "Jamie Cruz", req).Return(nil).Once()

	err := svc.NotifyRequestSubmitted(ctx, req)

	assert.NoError(t, err)
	mockNotifRepo.AssertExpectations(t)
	mockEmailSvc.AssertExpectations(t)
}

func TestNotificationService_NotifyRequestDecision(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()
	reviewerID := uuid.New()
	employee := &domain.Employee{
		ID:       employeeID,
		FullName: "Jamie Cruz",
		Email:    "jamie@example.com",
	}

	cases := []struct {
		status   domain.RequestStatus
		expected domain.NotificationType
	}{
		{domain.StatusApproved, domain.NotifRequestApproved},
		{domain.StatusPartial, domain.NotifRequestPartial},
		{domain.StatusRejected, domain.NotifRequestRejected},
	}

	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			mockNotifRepo := new(mocks.NotificationRepository)
			mockEmployeeRepo := new(mocks.EmployeeRepository)
			mockEmailSvc := new(mocks.EmailService)
			svc := notification.NewService(mockNotifRepo, mockEmployeeRepo, mockEmailSvc)

			req := &domain.Request{
				ID:          uuid.New(),
				EmployeeID:  employeeID,
				RequestType: domain.TypeOvertime,
				Status:      tc.status,
			}

			mockEmployeeRepo.On("GetByID", ctx, employeeID).Return(employee, nil).Once()
			mockNotifRepo.On("Create", ctx, mock.MatchedBy(func(n *domain.Notification) bool {
				return n.Type == tc.expected && n.EmployeeID == employeeID
			})).Return(nil).Once()
			mockEmailSvc.On("SendRequestDecisionEmail", ctx, employee.Email, employee.FullName, req).Return(nil).Once()

			err := svc.NotifyRequestDecision(ctx, req, reviewerID)

			assert.NoError(t, err)
			mockNotifRepo.AssertExpectations(t)
		})
	}
}
