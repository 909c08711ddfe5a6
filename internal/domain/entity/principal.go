package entity

import "github.com/google/uuid"

// Principal is the authenticated identity attached to a request
type Principal struct {
	UserID    uuid.UUID
	Username  string
	Role      Role
	SessionID string
}

// Can reports whether the principal's role grants p.
func (p *Principal) Can(perm Permission) bool {
	return p != nil && p.Role.Can(perm)
}
