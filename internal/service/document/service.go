package document

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"employee-portal/internal/domain"
	"employee-portal/internal/realtime"
	"employee-portal/internal/repository"
)

const dateLayout = "2006-01-02"

type Service interface {
	Create(ctx context.Context, input domain.CreateDocumentInput) (*domain.Document, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	ListByEmployee(ctx context.Context, employeeID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Document], error)
	Update(ctx context.Context, id uuid.UUID, input domain.UpdateDocumentInput) (*domain.Document, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	documentRepo repository.DocumentRepository
	employeeRepo repository.EmployeeRepository
	broadcaster  realtime.Broadcaster
}

func NewService(documentRepo repository.DocumentRepository, employeeRepo repository.EmployeeRepository, broadcaster realtime.Broadcaster) Service {
	return &service{
		documentRepo: documentRepo,
		employeeRepo: employeeRepo,
		broadcaster:  broadcaster,
	}
}

func (s *service) Create(ctx context.Context, input domain.CreateDocumentInput) (*domain.Document, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domain.NewValidationError("name", "is required")
	}
	if _, err := s.employeeRepo.GetByID(ctx, input.EmployeeID); err != nil {
		return nil, err
	}

	doc := &domain.Document{
		ID:         uuid.New(),
		EmployeeID: input.EmployeeID,
		Name:       input.Name,
		Category:   input.Category,
		DriveLink:  input.DriveLink,
		Status:     domain.DocumentPending,
	}
	if input.ExpiresAt != nil {
		expires, err := time.Parse(dateLayout, *input.ExpiresAt)
		if err != nil {
			return nil, domain.NewValidationError("expires_at", "must be formatted as YYYY-MM-DD")
		}
		doc.ExpiresAt = &expires
	}

	if err := s.documentRepo.Create(ctx, doc); err != nil {
		return nil, err
	}

	s.broadcaster.Broadcast(domain.EventDocumentUpdated, doc, realtime.ScopeBoth(doc.EmployeeID))
	return doc, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	return s.documentRepo.GetByID(ctx, id)
}

func (s *service) ListByEmployee(ctx context.Context, employeeID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Document], error) {
	docs, total, err := s.documentRepo.ListByEmployee(ctx, employeeID, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Document]{}, err
	}
	return domain.NewPaginatedResponse(docs, params.Page, params.PageSize, total), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input domain.UpdateDocumentInput) (*domain.Document, error) {
	doc, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		doc.Name = *input.Name
	}
	if input.Category != nil {
		doc.Category = *input.Category
	}
	if input.DriveLink != nil {
		doc.DriveLink = input.DriveLink
	}
	if input.Status != nil {
		doc.Status = *input.Status
	}
	if input.ExpiresAt != nil {
		expires, err := time.Parse(dateLayout, *input.ExpiresAt)
		if err != nil {
			return nil, domain.NewValidationError("expires_at", "must be formatted as YYYY-MM-DD")
		}
		doc.ExpiresAt = &expires
	}

	if err := s.documentRepo.Update(ctx, doc); err != nil {
		return nil, err
	}

	s.broadcaster.Broadcast(domain.EventDocumentUpdated, doc, realtime.ScopeBoth(doc.EmployeeID))
	return doc, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	doc, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.documentRepo.Delete(ctx, id); err != nil {
		return err
	}

	// Removal events still carry the full record so clients can match by id.
	s.broadcaster.Broadcast(domain.EventDocumentDeleted, doc, realtime.ScopeBoth(doc.EmployeeID))
	return nil
}
