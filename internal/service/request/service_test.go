package request_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"employee-portal/internal/domain"
	"employee-portal/internal/repository"
	"employee-portal/internal/service/request"
	"employee-portal/tests/mocks"
)

type fixture struct {
	requestRepo  *mocks.RequestRepository
	scheduleRepo *mocks.ScheduleRepository
	employeeRepo *mocks.EmployeeRepository
	auditRepo    *mocks.AuditLogRepository
	broadcaster  *mocks.Broadcaster
	notifSvc     *mocks.NotificationService
	svc          request.Service
}

func newFixture() *fixture {
	f := &fixture{
		requestRepo:  new(mocks.RequestRepository),
		scheduleRepo: new(mocks.ScheduleRepository),
		employeeRepo: new(mocks.EmployeeRepository),
		auditRepo:    new(mocks.AuditLogRepository),
		broadcaster:  new(mocks.Broadcaster),
		notifSvc:     new(mocks.NotificationService),
	}
	f.svc = request.NewService(f.requestRepo, f.scheduleRepo, f.employeeRepo, f.auditRepo, f.broadcaster)
	f.svc.SetNotificationService(f.notifSvc)

	// Notifications and audit entries are fired asynchronously and best
	// effort, so the tests never require them.
	f.notifSvc.On("NotifyRequestSubmitted", mock.Anything, mock.Anything).Return(nil).Maybe()
	f.notifSvc.On("NotifyRequestDecision", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	f.auditRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Maybe()
	return f
}

func stringPtr(s string) *string  { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestRequestService_Submit(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()

	t.Run("Overtime Success", func(t *testing.T) {
		f := newFixture()
		input := domain.SubmitRequestInput{
			RequestType: domain.TypeOvertime,
			Date:        stringPtr("2025-03-10"),
			Hours:       floatPtr(2.5),
			Reason:      "release support",
		}

		f.requestRepo.On("ExistsActiveForDate", ctx, employeeID, domain.TypeOvertime, mock.Anything).Return(false, nil).Once()
		f.requestRepo.On("Create", ctx, mock.MatchedBy(func(r *domain.Request) bool {
			return r.Status == domain.StatusPending && r.EmployeeID == employeeID && *r.Hours == 2.5
		})).Return(nil).Once()
		f.broadcaster.On("Broadcast", domain.EventOvertimeRequestUpdated, mock.Anything, mock.Anything).Once()

		req, err := f.svc.Submit(ctx, employeeID, input)

		assert.NoError(t, err)
		assert.Equal(t, domain.StatusPending, req.Status)
		f.requestRepo.AssertExpectations(t)
		f.broadcaster.AssertExpectations(t)
	})

	t.Run("Overtime Duplicate Date Conflict", func(t *testing.T) {
		f := newFixture()
		input := domain.SubmitRequestInput{
			RequestType: domain.TypeOvertime,
			Date:        stringPtr("2025-03-10"),
			Hours:       floatPtr(3),
			Reason:      "release support",
		}

		f.requestRepo.On("ExistsActiveForDate", ctx, employeeID, domain.TypeOvertime, mock.Anything).Return(true, nil).Once()

		req, err := f.svc.Submit(ctx, employeeID, input)

		assert.Nil(t, req)
		var conflict *domain.ConflictError
		assert.ErrorAs(t, err, &conflict)
		f.requestRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		f.broadcaster.AssertNotCalled(t, "Broadcast", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Hours Out Of Bounds", func(t *testing.T) {
		f := newFixture()
		for _, hours := range []float64{0.5, 8.5} {
			input := domain.SubmitRequestInput{
				RequestType: domain.TypeOffset,
				Date:        stringPtr("2025-03-10"),
				Hours:       floatPtr(hours),
				Reason:      "errand",
			}

			req, err := f.svc.Submit(ctx, employeeID, input)

			assert.Nil(t, req)
			var validation *domain.ValidationError
			assert.ErrorAs(t, err, &validation)
		}
	})

	t.Run("Leave Counts Scheduled Workdays", func(t *testing.T) {
		f := newFixture()
		input := domain.SubmitRequestInput{
			RequestType: domain.TypeLeave,
			StartDate:   stringPtr("2025-03-10"),
			EndDate:     stringPtr("2025-03-16"),
			Reason:      "family trip",
		}

		// Seven calendar days but only five scheduled.
		f.scheduleRepo.On("CountWorkdays", ctx, employeeID, mock.Anything, mock.Anything).Return(5, nil).Once()
		f.requestRepo.On("Create", ctx, mock.MatchedBy(func(r *domain.Request) bool {
			return r.Days != nil && *r.Days == 5
		})).Return(nil).Once()
		f.broadcaster.On("Broadcast", domain.EventLeaveRequestUpdated, mock.Anything, mock.Anything).Once()

		req, err := f.svc.Submit(ctx, employeeID, input)

		assert.NoError(t, err)
		assert.Equal(t, 5, *req.Days)
		f.scheduleRepo.AssertExpectations(t)
	})

	t.Run("Leave End Before Start", func(t *testing.T) {
		f := newFixture()
		input := domain.SubmitRequestInput{
			RequestType: domain.TypeLeave,
			StartDate:   stringPtr("2025-03-16"),
			EndDate:     stringPtr("2025-03-10"),
			Reason:      "family trip",
		}

		req, err := f.svc.Submit(ctx, employeeID, input)

		assert.Nil(t, req)
		var validation *domain.ValidationError
		assert.ErrorAs(t, err, &validation)
	})
}

func TestRequestService_Approve(t *testing.T) {
	ctx := context.Background()
	requestID := uuid.New()
	employeeID := uuid.New()
	reviewerID := uuid.New()

	pending := &domain.Request{
		ID:          requestID,
		EmployeeID:  employeeID,
		RequestType: domain.TypeOvertime,
		Status:      domain.StatusPending,
		Hours:       floatPtr(3),
	}

	t.Run("Success From Pending", func(t *testing.T) {
		f := newFixture()
		approved := *pending
		approved.Status = domain.StatusApproved

		f.requestRepo.On("GetByID", ctx, requestID).Return(pending, nil).Once()
		f.requestRepo.On("UpdateStatus", ctx, requestID,
			[]domain.RequestStatus{domain.StatusPending, domain.StatusPartial},
			mock.MatchedBy(func(u domain.RequestUpdate) bool {
				return u.Status == domain.StatusApproved && *u.ReviewedBy == reviewerID
			})).Return(&approved, nil).Once()
		f.broadcaster.On("Broadcast", domain.EventOvertimeRequestUpdated, &approved, mock.Anything).Once()

		result, err := f.svc.Approve(ctx, requestID, reviewerID, nil, nil)

		assert.NoError(t, err)
		assert.Equal(t, domain.StatusApproved, result.Status)
		f.requestRepo.AssertExpectations(t)
		f.broadcaster.AssertExpectations(t)
	})

	t.Run("Terminal State Rejected", func(t *testing.T) {
		f := newFixture()
		cancelled := *pending
		cancelled.Status = domain.StatusCancelled

		f.requestRepo.On("GetByID", ctx, requestID).Return(&cancelled, nil).Once()

		result, err := f.svc.Approve(ctx, requestID, reviewerID, nil, nil)

		assert.Nil(t, result)
		var transition *domain.InvalidTransitionError
		assert.ErrorAs(t, err, &transition)
		f.broadcaster.AssertNotCalled(t, "Broadcast", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Lost Race Yields Conflict", func(t *testing.T) {
		f := newFixture()
		rejected := *pending
		rejected.Status = domain.StatusRejected

		// First read still sees pending, but the guarded update loses to a
		// concurrent rejection.
		f.requestRepo.On("GetByID", ctx, requestID).Return(pending, nil).Once()
		f.requestRepo.On("UpdateStatus", ctx, requestID, mock.Anything, mock.Anything).
			Return(nil, repository.ErrNoRowsUpdated).Once()
		f.requestRepo.On("GetByID", ctx, requestID).Return(&rejected, nil).Once()

		result, err := f.svc.Approve(ctx, requestID, reviewerID, nil, nil)

		assert.Nil(t, result)
		var conflict *domain.ConflictError
		assert.ErrorAs(t, err, &conflict)
		f.broadcaster.AssertNotCalled(t, "Broadcast", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestRequestService_Partial(t *testing.T) {
	ctx := context.Background()
	requestID := uuid.New()
	employeeID := uuid.New()
	reviewerID := uuid.New()

	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC)
	days := 5
	leave := &domain.Request{
		ID:          requestID,
		EmployeeID:  employeeID,
		RequestType: domain.TypeLeave,
		Status:      domain.StatusPending,
		StartDate:   &start,
		EndDate:     &end,
		Days:        &days,
	}

	t.Run("Requires Remarks", func(t *testing.T) {
		f := newFixture()

		result, err := f.svc.Partial(ctx, requestID, reviewerID, domain.ReviewRequestInput{
			Status: domain.StatusPartial,
		}, nil)

		assert.Nil(t, result)
		var validation *domain.ValidationError
		assert.ErrorAs(t, err, &validation)
	})

	t.Run("Narrows Leave Range And Recomputes Days", func(t *testing.T) {
		f := newFixture()
		partial := *leave
		partial.Status = domain.StatusPartial

		f.requestRepo.On("GetByID", ctx, requestID).Return(leave, nil).Once()
		f.scheduleRepo.On("CountWorkdays", ctx, employeeID, mock.Anything, mock.Anything).Return(3, nil).Once()
		f.requestRepo.On("UpdateStatus", ctx, requestID,
			[]domain.RequestStatus{domain.StatusPending},
			mock.MatchedBy(func(u domain.RequestUpdate) bool {
				return u.Status == domain.StatusPartial && u.Days != nil && *u.Days == 3
			})).Return(&partial, nil).Once()
		f.broadcaster.On("Broadcast", domain.EventLeaveRequestUpdated, &partial, mock.Anything).Once()

		result, err := f.svc.Partial(ctx, requestID, reviewerID, domain.ReviewRequestInput{
			Status:    domain.StatusPartial,
			Remarks:   stringPtr("only part of the range works"),
			StartDate: stringPtr("2025-03-12"),
			EndDate:   stringPtr("2025-03-14"),
		}, nil)

		assert.NoError(t, err)
		assert.Equal(t, domain.StatusPartial, result.Status)
		f.requestRepo.AssertExpectations(t)
		f.scheduleRepo.AssertExpectations(t)
	})

	t.Run("Bounds Outside Original Range", func(t *testing.T) {
		f := newFixture()
		f.requestRepo.On("GetByID", ctx, requestID).Return(leave, nil).Once()

		result, err := f.svc.Partial(ctx, requestID, reviewerID, domain.ReviewRequestInput{
			Status:    domain.StatusPartial,
			Remarks:   stringPtr("widened"),
			StartDate: stringPtr("2025-03-08"),
			EndDate:   stringPtr("2025-03-14"),
		}, nil)

		assert.Nil(t, result)
		var validation *domain.ValidationError
		assert.ErrorAs(t, err, &validation)
	})

	t.Run("Hours Exceeding Requested", func(t *testing.T) {
		f := newFixture()
		overtime := &domain.Request{
			ID:          requestID,
			EmployeeID:  employeeID,
			RequestType: domain.TypeOvertime,
			Status:      domain.StatusPending,
			Hours:       floatPtr(3),
		}
		f.requestRepo.On("GetByID", ctx, requestID).Return(overtime, nil).Once()

		result, err := f.svc.Partial(ctx, requestID, reviewerID, domain.ReviewRequestInput{
			Status:  domain.StatusPartial,
			Remarks: stringPtr("too much"),
			Hours:   floatPtr(4),
		}, nil)

		assert.Nil(t, result)
		var validation *domain.ValidationError
		assert.ErrorAs(t, err, &validation)
	})

	t.Run("Only From Pending", func(t *testing.T) {
		f := newFixture()
		partial := *leave
		partial.Status = domain.StatusPartial
		f.requestRepo.On("GetByID", ctx, requestID).Return(&partial, nil).Once()

		result, err := f.svc.Partial(ctx, requestID, reviewerID, domain.ReviewRequestInput{
			Status:  domain.StatusPartial,
			Remarks: stringPtr("again"),
			Hours:   floatPtr(2),
		}, nil)

		assert.Nil(t, result)
		var transition *domain.InvalidTransitionError
		assert.ErrorAs(t, err, &transition)
	})
}

func TestRequestService_Reject(t *testing.T) {
	ctx := context.Background()
	requestID := uuid.New()
	reviewerID := uuid.New()

	t.Run("Requires Remarks", func(t *testing.T) {
		f := newFixture()

		result, err := f.svc.Reject(ctx, requestID, reviewerID, nil, nil)

		assert.Nil(t, result)
		var validation *domain.ValidationError
		assert.ErrorAs(t, err, &validation)
	})

	t.Run("Success From Partial", func(t *testing.T) {
		f := newFixture()
		partial := &domain.Request{
			ID:          requestID,
			EmployeeID:  uuid.New(),
			RequestType: domain.TypeOffset,
			Status:      domain.StatusPartial,
		}
		rejected := *partial
		rejected.Status = domain.StatusRejected

		f.requestRepo.On("GetByID", ctx, requestID).Return(partial, nil).Once()
		f.requestRepo.On("UpdateStatus", ctx, requestID,
			[]domain.RequestStatus{domain.StatusPending, domain.StatusPartial},
			mock.MatchedBy(func(u domain.RequestUpdate) bool {
				return u.Status == domain.StatusRejected && u.Remarks != nil
			})).Return(&rejected, nil).Once()
		f.broadcaster.On("Broadcast", domain.EventOffsetRequestUpdated, &rejected, mock.Anything).Once()

		result, err := f.svc.Reject(ctx, requestID, reviewerID, stringPtr("coverage is fine"), nil)

		assert.NoError(t, err)
		assert.Equal(t, domain.StatusRejected, result.Status)
	})
}

func TestRequestService_Cancel(t *testing.T) {
	ctx := context.Background()
	requestID := uuid.New()
	employeeID := uuid.New()

	pending := &domain.Request{
		ID:          requestID,
		EmployeeID:  employeeID,
		RequestType: domain.TypeLeave,
		Status:      domain.StatusPending,
	}

	t.Run("Owner Cancels Pending", func(t *testing.T) {
		f := newFixture()
		cancelled := *pending
		cancelled.Status = domain.StatusCancelled

		f.requestRepo.On("GetByID", ctx, requestID).Return(pending, nil).Once()
		f.requestRepo.On("UpdateStatus", ctx, requestID,
			[]domain.RequestStatus{domain.StatusPending},
			mock.MatchedBy(func(u domain.RequestUpdate) bool {
				return u.Status == domain.StatusCancelled
			})).Return(&cancelled, nil).Once()
		f.broadcaster.On("Broadcast", domain.EventLeaveRequestUpdated, &cancelled, mock.Anything).Once()

		result, err := f.svc.Cancel(ctx, requestID, employeeID)

		assert.NoError(t, err)
		assert.Equal(t, domain.StatusCancelled, result.Status)
	})

	t.Run("Non Owner Forbidden", func(t *testing.T) {
		f := newFixture()
		f.requestRepo.On("GetByID", ctx, requestID).Return(pending, nil).Once()

		result, err := f.svc.Cancel(ctx, requestID, uuid.New())

		assert.Nil(t, result)
		var forbidden *domain.ForbiddenError
		assert.ErrorAs(t, err, &forbidden)
	})

	t.Run("Approved Cannot Be Cancelled", func(t *testing.T) {
		f := newFixture()
		approved := *pending
		approved.Status = domain.StatusApproved
		f.requestRepo.On("GetByID", ctx, requestID).Return(&approved, nil).Once()

		result, err := f.svc.Cancel(ctx, requestID, employeeID)

		assert.Nil(t, result)
		var transition *domain.InvalidTransitionError
		assert.ErrorAs(t, err, &transition)
		f.broadcaster.AssertNotCalled(t, "Broadcast", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestRequestService_RespondToPartial(t *testing.T) {
	ctx := context.Background()
	requestID := uuid.New()
	employeeID := uuid.New()

	partial := &domain.Request{
		ID:          requestID,
		EmployeeID:  employeeID,
		RequestType: domain.TypeOvertime,
		Status:      domain.StatusPartial,
		Hours:       floatPtr(2),
	}

	t.Run("Accept Finalizes As Approved", func(t *testing.T) {
		f := newFixture()
		approved := *partial
		approved.Status = domain.StatusApproved

		f.requestRepo.On("GetByID", ctx, requestID).Return(partial, nil).Once()
		f.requestRepo.On("UpdateStatus", ctx, requestID,
			[]domain.RequestStatus{domain.StatusPartial},
			mock.MatchedBy(func(u domain.RequestUpdate) bool {
				return u.Status == domain.StatusApproved
			})).Return(&approved, nil).Once()
		f.broadcaster.On("Broadcast", domain.EventOvertimeRequestUpdated, &approved, mock.Anything).Once()

		result, err := f.svc.RespondToPartial(ctx, requestID, employeeID, domain.DecisionAccept)

		assert.NoError(t, err)
		assert.Equal(t, domain.StatusApproved, result.Status)
	})

	t.Run("Decline Finalizes As Rejected", func(t *testing.T) {
		f := newFixture()
		rejected := *partial
		rejected.Status = domain.StatusRejected

		f.requestRepo.On("GetByID", ctx, requestID).Return(partial, nil).Once()
		f.requestRepo.On("UpdateStatus", ctx, requestID,
			[]domain.RequestStatus{domain.StatusPartial},
			mock.MatchedBy(func(u domain.RequestUpdate) bool {
				return u.Status == domain.StatusRejected
			})).Return(&rejected, nil).Once()
		f.broadcaster.On("Broadcast", domain.EventOvertimeRequestUpdated, &rejected, mock.Anything).Once()

		result, err := f.svc.RespondToPartial(ctx, requestID, employeeID, domain.DecisionDecline)

		assert.NoError(t, err)
		assert.Equal(t, domain.StatusRejected, result.Status)
	})

	t.Run("Only Owner May Respond", func(t *testing.T) {
		f := newFixture()
		f.requestRepo.On("GetByID", ctx, requestID).Return(partial, nil).Once()

		result, err := f.svc.RespondToPartial(ctx, requestID, uuid.New(), domain.DecisionAccept)

		assert.Nil(t, result)
		var forbidden *domain.ForbiddenError
		assert.ErrorAs(t, err, &forbidden)
	})

	t.Run("Only From Partial", func(t *testing.T) {
		f := newFixture()
		pending := *partial
		pending.Status = domain.StatusPending
		f.requestRepo.On("GetByID", ctx, requestID).Return(&pending, nil).Once()

		result, err := f.svc.RespondToPartial(ctx, requestID, employeeID, domain.DecisionAccept)

		assert.Nil(t, result)
		var transition *domain.InvalidTransitionError
		assert.ErrorAs(t, err, &transition)
	})

	t.Run("Invalid Decision", func(t *testing.T) {
		f := newFixture()

		result, err := f.svc.RespondToPartial(ctx, requestID, employeeID, domain.PartialDecision("maybe"))

		assert.Nil(t, result)
		var validation *domain.ValidationError
		assert.ErrorAs(t, err, &validation)
	})
}
