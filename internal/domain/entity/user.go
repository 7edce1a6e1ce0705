// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the internal identity record. It carries the password hash and must
// never be serialized directly; the delivery layer projects it into a public view.
type User struct {
	ID           uuid.UUID  // Generated at creation, immutable.
	FullName     string     // Display name, never empty.
	Email        string     // Login identifier, unique as stored.
	PasswordHash string     // bcrypt digest of the user's password.
	Role         Role       // Coarse-grained permission class.
	Status       Status     // Gates login.
	LastLogin    *time.Time // Nil until the first successful login.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser builds a fresh, active, regular user with a newly generated ID.
func NewUser(fullName, email, passwordHash string) *User {
	return &User{
		ID:           newID(),
		FullName:     fullName,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         RoleUser,
		Status:       StatusActive,
	}
}

// IsActive reports whether the account may log in.
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}

// HasRole reports whether the user's role is one of the given roles.
func (u *User) HasRole(roles ...Role) bool {
	return Roles(roles).Contains(u.Role)
}

// newID prefers time-ordered v7 identifiers so that primary key order follows insertion order.
func newID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return id
}

const (
	// MinPasswordLength is the shortest accepted plaintext password.
	MinPasswordLength = 6
	// MaxPasswordBytes is the bcrypt input limit. Longer passwords are rejected, never truncated.
	MaxPasswordBytes = 72
)
