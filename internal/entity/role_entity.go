package entity

import "strings"

// UserRole is the side of the marketplace the caller is acting as.
type UserRole string

const (
	UserRoleClient UserRole = "CLIENT"
	UserRoleExpert UserRole = "EXPERT"
)

// Toggle flips between client and expert. Unknown roles become client.
func (r UserRole) Toggle() UserRole {
	if r == UserRoleClient {
		return UserRoleExpert
	}
	return UserRoleClient
}

func (r UserRole) IsValid() bool {
	return r == UserRoleClient || r == UserRoleExpert
}

// ParseUserRole is case-insensitive and reports false for anything else.
func ParseUserRole(s string) (UserRole, bool) {
	r := UserRole(strings.ToUpper(strings.TrimSpace(s)))
	return r, r.IsValid()
}
