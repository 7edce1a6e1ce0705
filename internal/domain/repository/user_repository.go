// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"usermgmt/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address, including the password hash.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update saves the mutable profile fields (full name and email) of an existing user.
	Update(ctx context.Context, user *entity.User) error

	// UpdatePassword atomically replaces the password hash for a single user.
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error

	// UpdateLastLogin atomically sets last_login for a single user.
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error

	// UpdateRole atomically sets role for a single user.
	UpdateRole(ctx context.Context, id uuid.UUID, role entity.Role) error

	// UpdateStatus atomically sets status and returns the updated user.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.Status) (*entity.User, error)

	// List returns users in insertion order, skipping offset rows.
	List(ctx context.Context, offset, limit int) ([]*entity.User, error)

	// Count returns the total number of users.
	Count(ctx context.Context) (int64, error)
}
