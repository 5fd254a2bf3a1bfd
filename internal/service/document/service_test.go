package document_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"employee-portal/internal/domain"
	"employee-portal/internal/service/document"
	"employee-portal/tests/mocks"
)

func TestDocumentService_Create(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()

	t.Run("Success Broadcasts Update", func(t *testing.T) {
		mockDocRepo := new(mocks.DocumentRepository)
		mockEmployeeRepo := new(mocks.EmployeeRepository)
		mockBroadcaster := new(mocks.Broadcaster)
		svc := document.NewService(mockDocRepo, mockEmployeeRepo, mockBroadcaster)

		mockEmployeeRepo.On("GetByID", ctx, employeeID).Return(&domain.Employee{ID: employeeID}, nil).Once()
		mockDocRepo.On("Create", ctx, mock.MatchedBy(func(d *domain.Document) bool {
			return d.Status == domain.DocumentPending && d.EmployeeID == employeeID
		})).Return(nil).Once()
		mockBroadcaster.On("Broadcast", domain.EventDocumentUpdated, mock.Anything, mock.Anything).Once()

		doc, err := svc.Create(ctx, domain.CreateDocumentInput{
			EmployeeID: employeeID,
			Name:       "Employment contract",
			Category:   "contract",
		})

		assert.NoError(t, err)
		assert.Equal(t, domain.DocumentPending, doc.Status)
		mockBroadcaster.AssertExpectations(t)
	})

	t.Run("Missing Name", func(t *testing.T) {
		mockDocRepo := new(mocks.DocumentRepository)
		mockEmployeeRepo := new(mocks.EmployeeRepository)
		mockBroadcaster := new(mocks.Broadcaster)
		svc := document.NewService(mockDocRepo, mockEmployeeRepo, mockBroadcaster)

		doc, err := svc.Create(ctx, domain.CreateDocumentInput{EmployeeID: employeeID})

		assert.Nil(t, doc)
		var validation *domain.ValidationError
		assert.ErrorAs(t, err, &validation)
	})
}

func TestDocumentService_DeleteBroadcastsRemoval(t *testing.T) {
	ctx := context.Background()
	documentID := uuid.New()
	employeeID := uuid.New()

	mockDocRepo := new(mocks.DocumentRepository)
	mockEmployeeRepo := new(mocks.EmployeeRepository)
	mockBroadcaster := new(mocks.Broadcaster)
	svc := document.NewService(mockDocRepo, mockEmployeeRepo, mockBroadcaster)

	doc := &domain.Document{ID: documentID, EmployeeID: employeeID, Name: "Old ID card"}

	mockDocRepo.On("GetByID", ctx, documentID).Return(doc, nil).Once()
	mockDocRepo.On("Delete", ctx, documentID).Return(nil).Once()
	mockBroadcaster.On("Broadcast", domain.EventDocumentDeleted, doc, mock.Anything).Once()

	err := svc.Delete(ctx, documentID)

	assert.NoError(t, err)
	mockBroadcaster.AssertExpectations(t)
}
