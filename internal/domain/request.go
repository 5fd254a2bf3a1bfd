package domain

import (
	"time"

	"github.com/google/uuid"
)

type RequestType string

const (
	TypeLeave    RequestType = "leave"
	TypeOvertime RequestType = "overtime"
	TypeOffset   RequestType = "offset"
)

func (t RequestType) Valid() bool {
	switch t {
	case TypeLeave, TypeOvertime, TypeOffset:
		return true
	}
	return false
}

type RequestStatus string

const (
	StatusPending   RequestStatus = "pending"
	StatusPartial   RequestStatus = "partial"
	StatusApproved  RequestStatus = "approved"
	StatusRejected  RequestStatus = "rejected"
	StatusCancelled RequestStatus = "cancelled"
)

// Terminal reports whether the status permits no further transitions.
func (s RequestStatus) Terminal() bool {
	switch s {
	case StatusApproved, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// ActiveStatuses are the statuses that block a second overtime/off-set
// request for the same employee, date and type.
var ActiveStatuses = []RequestStatus{StatusPending, StatusPartial, StatusApproved}

const (
	MinHours = 1.0
	MaxHours = 8.0
)

type Request struct {
	ID            uuid.UUID     `json:"id" db:"id"`
	EmployeeID    uuid.UUID     `json:"employee_id" db:"employee_id"`
	RequestType   RequestType   `json:"request_type" db:"request_type"`
	Category      string        `json:"category" db:"category"`
	Status        RequestStatus `json:"status" db:"status"`
	StartDate     *time.Time    `json:"start_date,omitempty" db:"start_date"`
	EndDate       *time.Time    `json:"end_date,omitempty" db:"end_date"`
	Date          *time.Time    `json:"date,omitempty" db:"date"`
	Hours         *float64      `json:"hours,omitempty" db:"hours"`
	Days          *int          `json:"days,omitempty" db:"days"`
	Reason        string        `json:"reason" db:"reason"`
	AttachmentURL *string       `json:"attachment_url,omitempty" db:"attachment_url"`
	Remarks       *string       `json:"remarks,omitempty" db:"remarks"`
	ReviewedBy    *uuid.UUID    `json:"reviewed_by,omitempty" db:"reviewed_by"`
	ReviewedAt    *time.Time    `json:"reviewed_at,omitempty" db:"reviewed_at"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at" db:"updated_at"`

	Employee *Employee `json:"employee,omitempty" db:"-"`
}

// EventName maps a request to the push event its mutations emit.
func (r *Request) EventName() EventName {
	switch r.RequestType {
	case TypeOvertime:
		return EventOvertimeRequestUpdated
	case TypeOffset:
		return EventOffsetRequestUpdated
	default:
		return EventLeaveRequestUpdated
	}
}

type SubmitRequestInput struct {
	RequestType   RequestType `json:"request_type"`
	Category      string      `json:"category"`
	StartDate     *string     `json:"start_date,omitempty"`
	EndDate       *string     `json:"end_date,omitempty"`
	Date          *string     `json:"date,omitempty"`
	Hours         *float64    `json:"hours,omitempty"`
	Reason        string      `json:"reason"`
	AttachmentURL *string     `json:"attachment_url,omitempty"`
}

// ReviewRequestInput is the admin transition body. Bounds are only honoured
// for a partial review and must stay inside the originally requested range.
type ReviewRequestInput struct {
	Status    RequestStatus `json:"status"`
	Remarks   *string       `json:"remarks,omitempty"`
	StartDate *string       `json:"start_date,omitempty"`
	EndDate   *string       `json:"end_date,omitempty"`
	Hours     *float64      `json:"hours,omitempty"`
}

type PartialDecision string

const (
	DecisionAccept  PartialDecision = "accept"
	DecisionDecline PartialDecision = "decline"
)

type RespondInput struct {
	Action PartialDecision `json:"action"`
}

type RequestFilter struct {
	EmployeeID *uuid.UUID
	Status     *RequestStatus
	Type       *RequestType
}

// RequestUpdate carries the column set applied by a status-guarded update.
// Nil pointers leave the stored value untouched.
type RequestUpdate struct {
	Status     RequestStatus
	Remarks    *string
	StartDate  *time.Time
	EndDate    *time.Time
	Hours      *float64
	Days       *int
	ReviewedBy *uuid.UUID
}
