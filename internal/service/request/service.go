package request

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"employee-portal/internal/domain"
	"employee-portal/internal/realtime"
	"employee-portal/internal/repository"
	"employee-portal/internal/service/notification"
)

const dateLayout = "2006-01-02"

// RequestMeta carries caller metadata into the audit trail.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}

type Service interface {
	Submit(ctx context.Context, employeeID uuid.UUID, input domain.SubmitRequestInput) (*domain.Request, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Request, error)
	List(ctx context.Context, filter domain.RequestFilter, params domain.PaginationParams) (domain.PaginatedResponse[domain.Request], error)
	Approve(ctx context.Context, id, reviewerID uuid.UUID, remarks *string, meta *RequestMeta) (*domain.Request, error)
	Partial(ctx context.Context, id, reviewerID uuid.UUID, input domain.ReviewRequestInput, meta *RequestMeta) (*domain.Request, error)
	Reject(ctx context.Context, id, reviewerID uuid.UUID, remarks *string, meta *RequestMeta) (*domain.Request, error)
	Cancel(ctx context.Context, id, employeeID uuid.UUID) (*domain.Request, error)
	RespondToPartial(ctx context.Context, id, employeeID uuid.UUID, decision domain.PartialDecision) (*domain.Request, error)
	SetNotificationService(notifSvc notification.Service)
}

type service struct {
	requestRepo  repository.RequestRepository
	scheduleRepo repository.ScheduleRepository
	employeeRepo repository.EmployeeRepository
	auditRepo    repository.AuditLogRepository
	broadcaster  realtime.Broadcaster
	notifSvc     notification.Service
}

func NewService(
	requestRepo repository.RequestRepository,
	scheduleRepo repository.ScheduleRepository,
	employeeRepo repository.EmployeeRepository,
	auditRepo repository.AuditLogRepository,
	broadcaster realtime.Broadcaster,
) Service {
	return &service{
		requestRepo:  requestRepo,
		scheduleRepo: scheduleRepo,
		employeeRepo: employeeRepo,
		auditRepo:    auditRepo,
		broadcaster:  broadcaster,
	}
}

func (s *service) SetNotificationService(notifSvc notification.Service) {
	s.notifSvc = notifSvc
}

func (s *service) Submit(ctx context.Context, employeeID uuid.UUID, input domain.SubmitRequestInput) (*domain.Request, error) {
	if !input.RequestType.Valid() {
		return nil, domain.NewValidationError("request_type", "must be leave, overtime or offset")
	}
	if strings.TrimSpace(input.Reason) == "" {
		return nil, domain.NewValidationError("reason", "is required")
	}

	req := &domain.Request{
		ID:            uuid.New(),
		EmployeeID:    employeeID,
		RequestType:   input.RequestType,
		Category:      input.Category,
		Status:        domain.StatusPending,
		Reason:        input.Reason,
		AttachmentURL: input.AttachmentURL,
	}

	switch input.RequestType {
	case domain.TypeLeave:
		if err := s.fillLeaveFields(ctx, req, input); err != nil {
			return nil, err
		}
	default:
		if err := s.fillHourlyFields(ctx, req, input); err != nil {
			return nil, err
		}
	}

	if err := s.requestRepo.Create(ctx, req); err != nil {
		return nil, err
	}

	s.broadcaster.Broadcast(req.EventName(), req, realtime.ScopeBoth(employeeID))
	s.notifySubmitted(req)

	return req, nil
}

func (s *service) fillLeaveFields(ctx context.Context, req *domain.Request, input domain.SubmitRequestInput) error {
	start, err := parseDate(input.StartDate, "start_date")
	if err != nil {
		return err
	}
	end, err := parseDate(input.EndDate, "end_date")
	if err != nil {
		return err
	}
	if end.Before(*start) {
		return domain.NewValidationError("end_date", "must not be before start_date")
	}

	// Leave days count the employee's scheduled workdays in the range, not
	// calendar days.
	days, err := s.scheduleRepo.CountWorkdays(ctx, req.EmployeeID, *start, *end)
	if err != nil {
		return err
	}

	req.StartDate = start
	req.EndDate = end
	req.Days = &days
	return nil
}

func (s *service) fillHourlyFields(ctx context.Context, req *domain.Request, input domain.SubmitRequestInput) error {
	date, err := parseDate(input.Date, "date")
	if err != nil {
		return err
	}
	if input.Hours == nil {
		return domain.NewValidationError("hours", "is required")
	}
	if *input.Hours < domain.MinHours || *input.Hours > domain.MaxHours {
		return domain.NewValidationError("hours", "must be between 1 and 8")
	}

	exists, err := s.requestRepo.ExistsActiveForDate(ctx, req.EmployeeID, req.RequestType, *date)
	if err != nil {
		return err
	}
	if exists {
		return domain.NewConflictError("you already submitted a " + string(req.RequestType) + " request for this date")
	}

	req.Date = date
	req.Hours = input.Hours
	return nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Request, error) {
	return s.requestRepo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter domain.RequestFilter, params domain.PaginationParams) (domain.PaginatedResponse[domain.Request], error) {
	requests, total, err := s.requestRepo.List(ctx, filter, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Request]{}, err
	}

	for i := range requests {
		if emp, err := s.employeeRepo.GetByID(ctx, requests[i].EmployeeID); err == nil {
			requests[i].Employee = emp
		}
	}

	return domain.NewPaginatedResponse(requests, params.Page, params.PageSize, total), nil
}

func (s *service) Approve(ctx context.Context, id, reviewerID uuid.UUID, remarks *string, meta *RequestMeta) (*domain.Request, error) {
	req, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Status.Terminal() {
		return nil, &domain.InvalidTransitionError{From: req.Status, Action: "approve"}
	}

	updated, err := s.transition(ctx, id,
		[]domain.RequestStatus{domain.StatusPending, domain.StatusPartial},
		domain.RequestUpdate{Status: domain.StatusApproved, Remarks: remarks, ReviewedBy: &reviewerID},
		"approve")
	if err != nil {
		return nil, err
	}

	s.broadcaster.Broadcast(updated.EventName(), updated, realtime.ScopeBoth(updated.EmployeeID))
	s.notifyDecision(updated, reviewerID)
	s.logAudit(reviewerID, "APPROVE_REQUEST", req, updated, meta)

	return updated, nil
}

func (s *service) Partial(ctx context.Context, id, reviewerID uuid.UUID, input domain.ReviewRequestInput, meta *RequestMeta) (*domain.Request, error) {
	if input.Remarks == nil || strings.TrimSpace(*input.Remarks) == "" {
		return nil, domain.NewValidationError("remarks", "are required for a partial approval")
	}

	req, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Status != domain.StatusPending {
		return nil, &domain.InvalidTransitionError{From: req.Status, Action: "partially approve"}
	}

	upd := domain.RequestUpdate{
		Status:     domain.StatusPartial,
		Remarks:    input.Remarks,
		ReviewedBy: &reviewerID,
	}
	if req.RequestType == domain.TypeLeave {
		if err := s.narrowLeaveBounds(ctx, req, input, &upd); err != nil {
			return nil, err
		}
	} else {
		if err := narrowHours(req, input, &upd); err != nil {
			return nil, err
		}
	}

	updated, err := s.transition(ctx, id,
		[]domain.RequestStatus{domain.StatusPending}, upd, "partially approve")
	if err != nil {
		return nil, err
	}

	s.broadcaster.Broadcast(updated.EventName(), updated, realtime.ScopeBoth(updated.EmployeeID))
	s.notifyDecision(updated, reviewerID)
	s.logAudit(reviewerID, "PARTIAL_REQUEST", req, updated, meta)

	return updated, nil
}

// narrowLeaveBounds validates that the admin-supplied range stays inside the
// originally requested one and recomputes the day count for it.
func (s *service) narrowLeaveBounds(ctx context.Context, req *domain.Request, input domain.ReviewRequestInput, upd *domain.RequestUpdate) error {
	start, err := parseDate(input.StartDate, "start_date")
	if err != nil {
		return err
	}
	end, err := parseDate(input.EndDate, "end_date")
	if err != nil {
		return err
	}
	if end.Before(*start) {
		return domain.NewValidationError("end_date", "must not be before start_date")
	}
	if start.Before(*req.StartDate) || end.After(*req.EndDate) {
		return domain.NewValidationError("bounds", "must be within the originally requested range")
	}

	days, err := s.scheduleRepo.CountWorkdays(ctx, req.EmployeeID, *start, *end)
	if err != nil {
		return err
	}

	upd.StartDate = start
	upd.EndDate = end
	upd.Days = &days
	return nil
}

func narrowHours(req *domain.Request, input domain.ReviewRequestInput, upd *domain.RequestUpdate) error {
	if input.Hours == nil {
		return domain.NewValidationError("hours", "are required for a partial approval")
	}
	if *input.Hours < domain.MinHours {
		return domain.NewValidationError("hours", "must be at least 1")
	}
	if req.Hours != nil && *input.Hours > *req.Hours {
		return domain.NewValidationError("hours", "must not exceed the requested hours")
	}

	upd.Hours = input.Hours
	return nil
}

func (s *service) Reject(ctx context.Context, id, reviewerID uuid.UUID, remarks *string, meta *RequestMeta) (*domain.Request, error) {
	if remarks == nil || strings.TrimSpace(*remarks) == "" {
		return nil, domain.NewValidationError("remarks", "are required for a rejection")
	}

	req, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Status.Terminal() {
		return nil, &domain.InvalidTransitionError{From: req.Status, Action: "reject"}
	}

	updated, err := s.transition(ctx, id,
		[]domain.RequestStatus{domain.StatusPending, domain.StatusPartial},
		domain.RequestUpdate{Status: domain.StatusRejected, Remarks: remarks, ReviewedBy: &reviewerID},
		"reject")
	if err != nil {
		return nil, err
	}

	s.broadcaster.Broadcast(updated.EventName(), updated, realtime.ScopeBoth(updated.EmployeeID))
	s.notifyDecision(updated, reviewerID)
	s.logAudit(reviewerID, "REJECT_REQUEST", req, updated, meta)

	return updated, nil
}

func (s *service) Cancel(ctx context.Context, id, employeeID uuid.UUID) (*domain.Request, error) {
	req, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.EmployeeID != employeeID {
		return nil, domain.NewForbiddenError("only the requesting employee may cancel")
	}
	if req.Status != domain.StatusPending {
		return nil, &domain.InvalidTransitionError{From: req.Status, Action: "cancel"}
	}

	updated, err := s.transition(ctx, id,
		[]domain.RequestStatus{domain.StatusPending},
		domain.RequestUpdate{Status: domain.StatusCancelled},
		"cancel")
	if err != nil {
		return nil, err
	}

	s.broadcaster.Broadcast(updated.EventName(), updated, realtime.ScopeBoth(employeeID))
	return updated, nil
}

func (s *service) RespondToPartial(ctx context.Context, id, employeeID uuid.UUID, decision domain.PartialDecision) (*domain.Request, error) {
	var target domain.RequestStatus
	switch decision {
	case domain.DecisionAccept:
		target = domain.StatusApproved
	case domain.DecisionDecline:
		target = domain.StatusRejected
	default:
		return nil, domain.NewValidationError("action", "must be accept or decline")
	}

	req, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.EmployeeID != employeeID {
		return nil, domain.NewForbiddenError("only the requesting employee may respond")
	}
	if req.Status != domain.StatusPartial {
		return nil, &domain.InvalidTransitionError{From: req.Status, Action: "respond to"}
	}

	updated, err := s.transition(ctx, id,
		[]domain.RequestStatus{domain.StatusPartial},
		domain.RequestUpdate{Status: target},
		"respond to")
	if err != nil {
		return nil, err
	}

	s.broadcaster.Broadcast(updated.EventName(), updated, realtime.ScopeBoth(employeeID))
	s.logAudit(employeeID, "RESPOND_PARTIAL_"+strings.ToUpper(string(decision)), req, updated, nil)

	return updated, nil
}

// transition applies the status-guarded update and translates a lost race
// into the error the caller can act on: the request vanished, reached an
// incompatible status, or a concurrent mutation won.
func (s *service) transition(ctx context.Context, id uuid.UUID, from []domain.RequestStatus, upd domain.RequestUpdate, action string) (*domain.Request, error) {
	updated, err := s.requestRepo.UpdateStatus(ctx, id, from, upd)
	if err == nil {
		return updated, nil
	}
	if err != repository.ErrNoRowsUpdated {
		return nil, err
	}

	current, getErr := s.requestRepo.GetByID(ctx, id)
	if getErr != nil {
		return nil, getErr
	}
	return nil, domain.NewConflictError("request was already " + string(current.Status) + ", cannot " + action)
}

func (s *service) notifySubmitted(req *domain.Request) {
	if s.notifSvc == nil {
		return
	}
	go func() {
		_ = s.notifSvc.NotifyRequestSubmitted(context.Background(), req)
	}()
}

func (s *service) notifyDecision(req *domain.Request, reviewerID uuid.UUID) {
	if s.notifSvc == nil {
		return
	}
	go func() {
		_ = s.notifSvc.NotifyRequestDecision(context.Background(), req, reviewerID)
	}()
}

func (s *service) logAudit(actorID uuid.UUID, action string, before, after *domain.Request, meta *RequestMeta) {
	oldValue, _ := json.Marshal(map[string]string{"status": string(before.Status)})
	newValue, _ := json.Marshal(map[string]string{"status": string(after.Status)})

	entry := &domain.AuditLog{
		ID:         uuid.New(),
		ActorID:    actorID,
		Action:     action,
		EntityType: "REQUEST",
		EntityID:   after.ID,
		OldValue:   oldValue,
		NewValue:   newValue,
	}
	if meta != nil {
		if meta.IPAddress != "" {
			entry.IPAddress = &meta.IPAddress
		}
		if meta.UserAgent != "" {
			entry.UserAgent = &meta.UserAgent
		}
	}

	go func() {
		_ = s.auditRepo.Create(context.Background(), entry)
	}()
}

func parseDate(value *string, field string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, domain.NewValidationError(field, "is required")
	}
	t, err := time.Parse(dateLayout, *value)
	if err != nil {
		return nil, domain.NewValidationError(field, "must be formatted as YYYY-MM-DD")
	}
	return &t, nil
}
