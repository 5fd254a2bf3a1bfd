package incident

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"employee-portal/internal/domain"
	"employee-portal/internal/realtime"
	"employee-portal/internal/repository"
	"employee-portal/internal/service/notification"
)

type Service interface {
	Create(ctx context.Context, reportedBy uuid.UUID, input domain.CreateIncidentInput) (*domain.Incident, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Incident, error)
	List(ctx context.Context, employeeID *uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Incident], error)
	Update(ctx context.Context, id uuid.UUID, input domain.UpdateIncidentInput) (*domain.Incident, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetNotificationService(notifSvc notification.Service)
}

type service struct {
	incidentRepo repository.IncidentRepository
	employeeRepo repository.EmployeeRepository
	broadcaster  realtime.Broadcaster
	notifSvc     notification.Service
}

func NewService(incidentRepo repository.IncidentRepository, employeeRepo repository.EmployeeRepository, broadcaster realtime.Broadcaster) Service {
	return &service{
		incidentRepo: incidentRepo,
		employeeRepo: employeeRepo,
		broadcaster:  broadcaster,
	}
}

func (s *service) SetNotificationService(notifSvc notification.Service) {
	s.notifSvc = notifSvc
}

func (s *service) Create(ctx context.Context, reportedBy uuid.UUID, input domain.CreateIncidentInput) (*domain.Incident, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, domain.NewValidationError("title", "is required")
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, domain.NewValidationError("description", "is required")
	}
	occurredAt, err := time.Parse(time.RFC3339, input.OccurredAt)
	if err != nil {
		return nil, domain.NewValidationError("occurred_at", "must be an RFC 3339 timestamp")
	}
	if _, err := s.employeeRepo.GetByID(ctx, input.EmployeeID); err != nil {
		return nil, err
	}

	incident := &domain.Incident{
		ID:          uuid.New(),
		EmployeeID:  input.EmployeeID,
		ReportedBy:  reportedBy,
		Title:       input.Title,
		Description: input.Description,
		OccurredAt:  occurredAt,
		Status:      domain.IncidentOpen,
	}
	if err := s.incidentRepo.Create(ctx, incident); err != nil {
		return nil, err
	}

	s.broadcaster.Broadcast(domain.EventIncidentCreated, incident, realtime.ScopeBoth(incident.EmployeeID))
	if s.notifSvc != nil {
		go func() {
			_ = s.notifSvc.NotifyIncidentReported(context.Background(), incident)
		}()
	}
	return incident, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Incident, error) {
	return s.incidentRepo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, employeeID *uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Incident], error) {
	incidents, total, err := s.incidentRepo.List(ctx, employeeID, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Incident]{}, err
	}
	return domain.NewPaginatedResponse(incidents, params.Page, params.PageSize, total), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input domain.UpdateIncidentInput) (*domain.Incident, error) {
	incident, err := s.incidentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		incident.Title = *input.Title
	}
	if input.Description != nil {
		incident.Description = *input.Description
	}
	if input.Status != nil {
		incident.Status = *input.Status
	}

	if err := s.incidentRepo.Update(ctx, incident); err != nil {
		return nil, err
	}

	s.broadcaster.Broadcast(domain.EventIncidentUpdated, incident, realtime.ScopeBoth(incident.EmployeeID))
	return incident, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	incident, err := s.incidentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.incidentRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.broadcaster.Broadcast(domain.EventIncidentDeleted, incident, realtime.ScopeBoth(incident.EmployeeID))
	return nil
}
