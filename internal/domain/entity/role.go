package entity

import "slices"

// Role represents a group the identity provider placed the caller in.
type Role string

const (
	// RoleTraveler is implied for every authenticated caller.
	RoleTraveler Role = "traveler"
	// RoleSupport may resolve feedback items.
	RoleSupport Role = "support"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleTraveler, RoleSupport:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = string(r)
	}

	return result
}

// RolesFromGroups keeps the recognized roles of an identity-provider group list
// and always includes RoleTraveler.
func RolesFromGroups(groups []string) Roles {
	roles := Roles{RoleTraveler}
	for _, g := range groups {
		role := Role(g)
		if role.IsValid() && !roles.Contains(role) {
			roles = append(roles, role)
		}
	}

	return roles
}
