package domain

import "github.com/google/uuid"

// AccessClaims is the identity extracted from an externally issued access
// token. The portal trusts these claims as given; it never issues sessions.
type AccessClaims struct {
	EmployeeID uuid.UUID
	Role       EmployeeRole
}

func (c *AccessClaims) IsAdmin() bool {
	return c.Role == RoleAdmin
}
