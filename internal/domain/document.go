package domain

import (
	"time"

	"github.com/google/uuid"
)

type DocumentStatus string

const (
	DocumentPending   DocumentStatus = "pending"
	DocumentSubmitted DocumentStatus = "submitted"
	DocumentVerified  DocumentStatus = "verified"
	DocumentExpired   DocumentStatus = "expired"
)

// Document tracks an employee document. The file itself lives elsewhere;
// DriveLink is an opaque URL.
type Document struct {
	ID         uuid.UUID      `json:"id" db:"id"`
	EmployeeID uuid.UUID      `json:"employee_id" db:"employee_id"`
	Name       string         `json:"name" db:"name"`
	Category   string         `json:"category" db:"category"`
	DriveLink  *string        `json:"drive_link,omitempty" db:"drive_link"`
	Status     DocumentStatus `json:"status" db:"status"`
	ExpiresAt  *time.Time     `json:"expires_at,omitempty" db:"expires_at"`
	CreatedAt  time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at" db:"updated_at"`
}

type CreateDocumentInput struct {
	EmployeeID uuid.UUID `json:"employee_id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	DriveLink  *string   `json:"drive_link,omitempty"`
	ExpiresAt  *string   `json:"expires_at,omitempty"`
}

type UpdateDocumentInput struct {
	Name      *string         `json:"name,omitempty"`
	Category  *string         `json:"category,omitempty"`
	DriveLink *string         `json:"drive_link,omitempty"`
	Status    *DocumentStatus `json:"status,omitempty"`
	ExpiresAt *string         `json:"expires_at,omitempty"`
}
