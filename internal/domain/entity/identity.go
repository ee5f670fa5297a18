package entity

import "github.com/google/uuid"

// Identity is the authenticated caller, resolved once per request by the auth
// middleware and passed explicitly to every use case.
type Identity struct {
	UserID   uuid.UUID
	Subject  string
	Email    string
	Username string
	Roles    Roles
}

// HasRole reports whether the caller carries the given role.
func (i Identity) HasRole(role Role) bool {
	return i.Roles.Contains(role)
}

// Claims are the identity-provider token claims the system relies on.
type Claims struct {
	Subject  string
	Email    string
	Username string
	Groups   []string
}
