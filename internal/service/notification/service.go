package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"

	"employee-portal/internal/domain"
	"employee-portal/internal/pkg/i18n"
	"employee-portal/internal/repository"
	"employee-portal/internal/service/email"
)

type Service interface {
	NotifyRequestSubmitted(ctx context.Context, req *domain.Request) error
	NotifyRequestDecision(ctx context.Context, req *domain.Request, reviewerID uuid.UUID) error
	NotifyIncidentReported(ctx context.Context, incident *domain.Incident) error
	List(ctx context.Context, employeeID uuid.UUID, unreadOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error)
	MarkAsRead(ctx context.Context, id uuid.UUID) error
	MarkAllAsRead(ctx context.Context, employeeID uuid.UUID) error
	CountUnread(ctx context.Context, employeeID uuid.UUID) (int64, error)
	SetLocale(locale string)
}

type service struct {
	notifRepo    repository.NotificationRepository
	employeeRepo repository.EmployeeRepository
	emailSvc     email.Service
	locale       string
}

func NewService(
	notifRepo repository.NotificationRepository,
	employeeRepo repository.EmployeeRepository,
	emailSvc email.Service,
) Service {
	return &service{
		notifRepo:    notifRepo,
		employeeRepo: employeeRepo,
		emailSvc:     emailSvc,
		locale:       "en",
	}
}

// SetLocale selects the language feed entries are written in. Falls back to
// English for untranslated keys.
func (s *service) SetLocale(locale string) {
	if locale != "" {
		s.locale = locale
	}
}

// NotifyRequestSubmitted fans a feed entry and an email out to every admin.
// Failures for one recipient do not stop delivery to the rest.
func (s *service) NotifyRequestSubmitted(ctx context.Context, req *domain.Request) error {
	requester, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return err
	}

	admins, err := s.employeeRepo.GetAdmins(ctx)
	if err != nil {
		return err
	}

	data, _ := json.Marshal(map[string]string{"request_id": req.ID.String()})
	for _, admin := range admins {
		notif := &domain.Notification{
			ID:         uuid.New(),
			EmployeeID: admin.ID,
			Type:       domain.NotifRequestSubmitted,
			Title:      i18n.Translate(s.locale, "request_submitted_title"),
			Message:    fmt.Sprintf(i18n.Translate(s.locale, "request_submitted_message"), requester.FullName, req.RequestType),
			Data:       data,
		}
		if err := s.notifRepo.Create(ctx, notif); err != nil {
			log.Printf("notification: failed to create feed entry for %s: %v", admin.ID, err)
			continue
		}
		if s.emailSvc != nil {
			if err := s.emailSvc.SendRequestSubmittedEmail(ctx, admin.Email, admin.FullName, requester.FullName, req); err != nil {
				log.Printf("notification: failed to email %s: %v", admin.Email, err)
			}
		}
	}
	return nil
}

func (s *service) NotifyRequestDecision(ctx context.Context, req *domain.Request, reviewerID uuid.UUID) error {
	employee, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return err
	}

	notifType := domain.NotifRequestApproved
	switch req.Status {
	case domain.StatusPartial:
		notifType = domain.NotifRequestPartial
	case domain.StatusRejected:
		notifType = domain.NotifRequestRejected
	}

	data, _ := json.Marshal(map[string]string{"request_id": req.ID.String()})
	notif := &domain.Notification{
		ID:         uuid.New(),
		EmployeeID: employee.ID,
		Type:       notifType,
		Title:      i18n.Translate(s.locale, "request_reviewed_title"),
		Message:    fmt.Sprintf(i18n.Translate(s.locale, "request_reviewed_message"), req.RequestType, req.Status),
		Data:       data,
	}
	if err := s.notifRepo.Create(ctx, notif); err != nil {
		return err
	}

	if s.emailSvc != nil {
		if err := s.emailSvc.SendRequestDecisionEmail(ctx, employee.Email, employee.FullName, req); err != nil {
			log.Printf("notification: failed to email %s: %v", employee.Email, err)
		}
	}
	return nil
}

func (s *service) NotifyIncidentReported(ctx context.Context, incident *domain.Incident) error {
	employee, err := s.employeeRepo.GetByID(ctx, incident.EmployeeID)
	if err != nil {
		return err
	}

	data, _ := json.Marshal(map[string]string{"incident_id": incident.ID.String()})
	notif := &domain.Notification{
		ID:         uuid.New(),
		EmployeeID: employee.ID,
		Type:       domain.NotifIncidentReported,
		Title:      i18n.Translate(s.locale, "incident_reported_title"),
		Message:    i18n.Translate(s.locale, "incident_reported_message"),
		Data:       data,
	}
	if err := s.notifRepo.Create(ctx, notif); err != nil {
		return err
	}

	if s.emailSvc != nil {
		if err := s.emailSvc.SendIncidentReportedEmail(ctx, employee.Email, employee.FullName, incident.Description); err != nil {
			log.Printf("notification: failed to email %s: %v", employee.Email, err)
		}
	}
	return nil
}

func (s *service) List(ctx context.Context, employeeID uuid.UUID, unreadOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error) {
	notifs, total, err := s.notifRepo.ListByEmployee(ctx, employeeID, unreadOnly, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Notification]{}, err
	}
	return domain.NewPaginatedResponse(notifs, params.Page, params.PageSize, total), nil
}

func (s *service) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	return s.notifRepo.MarkAsRead(ctx, id)
}

func (s *service) MarkAllAsRead(ctx context.Context, employeeID uuid.UUID) error {
	return s.notifRepo.MarkAllAsRead(ctx, employeeID)
}

func (s *service) CountUnread(ctx context.Context, employeeID uuid.UUID) (int64, error) {
	return s.notifRepo.CountUnread(ctx, employeeID)
}
