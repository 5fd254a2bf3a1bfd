package domain

import (
	"time"

	"github.com/google/uuid"
)

type EmployeeRole string

const (
	RoleEmployee EmployeeRole = "employee"
	RoleAdmin    EmployeeRole = "admin"
)

// Employee is a read model. Account provisioning and credential handling
// happen in the identity system; this service only resolves names, emails
// and roles for authorization and notifications.
type Employee struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	FullName  string     `json:"full_name" db:"full_name"`
	Email     string     `json:"email" db:"email"`
	Position  *string    `json:"position,omitempty" db:"position"`
	Role      string     `json:"role" db:"role"`
	IsActive  bool       `json:"is_active" db:"is_active"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt *time.Time `json:"-" db:"deleted_at"`
}

func (e *Employee) IsAdmin() bool {
	return e.Role == string(RoleAdmin)
}
