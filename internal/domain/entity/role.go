// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
// Authorization decisions consume this type through a single check in the
// delivery layer rather than ad-hoc string comparisons per route.
type Role string

const (
	// RoleUser indicates a regular reader account.
	RoleUser Role = "user"
	// RoleAdmin indicates the site owner with access to the admin dashboard.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// RoleFromString converts a string to a Role, falling back to RoleUser for
// anything unrecognized.
func RoleFromString(s string) Role {
	role := Role(s)
	if !role.IsValid() {
		return RoleUser
	}

	return role
}
