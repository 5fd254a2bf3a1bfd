package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Notification is the persisted in-app feed entry, distinct from the
// ephemeral push events: it survives reconnects and is read explicitly.
type Notification struct {
	ID         uuid.UUID        `json:"id" db:"id"`
	EmployeeID uuid.UUID        `json:"employee_id" db:"employee_id"`
	Type       NotificationType `json:"type" db:"type"`
	Title      string           `json:"title" db:"title"`
	Message    string           `json:"message" db:"message"`
	Data       json.RawMessage  `json:"data,omitempty" db:"data"`
	IsRead     bool             `json:"is_read" db:"is_read"`
	ReadAt     *time.Time       `json:"read_at,omitempty" db:"read_at"`
	CreatedAt  time.Time        `json:"created_at" db:"created_at"`
}

type NotificationType string

const (
	NotifRequestSubmitted NotificationType = "REQUEST_SUBMITTED"
	NotifRequestApproved  NotificationType = "REQUEST_APPROVED"
	NotifRequestPartial   NotificationType = "REQUEST_PARTIAL"
	NotifRequestRejected  NotificationType = "REQUEST_REJECTED"
	NotifIncidentReported NotificationType = "INCIDENT_REPORTED"
)
