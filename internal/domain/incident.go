package domain

import (
	"time"

	"github.com/google/uuid"
)

type IncidentStatus string

const (
	IncidentOpen     IncidentStatus = "open"
	IncidentReviewed IncidentStatus = "reviewed"
	IncidentResolved IncidentStatus = "resolved"
)

type Incident struct {
	ID          uuid.UUID      `json:"id" db:"id"`
	EmployeeID  uuid.UUID      `json:"employee_id" db:"employee_id"`
	ReportedBy  uuid.UUID      `json:"reported_by" db:"reported_by"`
	Title       string         `json:"title" db:"title"`
	Description string         `json:"description" db:"description"`
	OccurredAt  time.Time      `json:"occurred_at" db:"occurred_at"`
	Status      IncidentStatus `json:"status" db:"status"`
	CreatedAt   time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" db:"updated_at"`
}

type CreateIncidentInput struct {
	EmployeeID  uuid.UUID `json:"employee_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	OccurredAt  string    `json:"occurred_at"`
}

type UpdateIncidentInput struct {
	Title       *string         `json:"title,omitempty"`
	Description *string         `json:"description,omitempty"`
	Status      *IncidentStatus `json:"status,omitempty"`
}
