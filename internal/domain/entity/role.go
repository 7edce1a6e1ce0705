// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidEnum is returned when a string does not name a known enumeration value.
var ErrInvalidEnum = errors.New("invalid enumeration value")

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleUser indicates a regular user role.
	RoleUser Role = "user"
	// RoleAdmin indicates an administrator role.
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

// ParseRole converts a raw string into a Role.
func ParseRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", errors.Wrapf(ErrInvalidEnum, "role %q", s)
	}

	return role, nil
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// String joins the roles for diagnostics, e.g. "admin, user".
func (rs Roles) String() string {
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = r.String()
	}

	return strings.Join(parts, ", ")
}

// Status is the account enablement flag, independent of role.
type Status string

const (
	// StatusActive allows the user to log in.
	StatusActive Status = "active"
	// StatusInactive blocks login.
	StatusInactive Status = "inactive"
)

// String returns the string representation of the Status.
func (s Status) String() string {
	return string(s)
}

// IsValid checks if the Status is a valid value.
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive:
		return true
	default:
		return false
	}
}

// ParseStatus converts a raw string into a Status.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", errors.Wrapf(ErrInvalidEnum, "status %q", s)
	}

	return status, nil
}
