package usecase

import (
	"context"

	"usermgmt/internal/domain/entity"

	"github.com/google/uuid"
)

// DefaultPageSize is the admin user listing page size.
const DefaultPageSize = 10

// UpdateProfileInput is a partial update; nil fields are left unchanged.
type UpdateProfileInput struct {
	FullName *string
	Email    *string
}

// ChangePasswordInput defines the data required to rotate a password.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// ListUsersInput selects a page. Page values below 1 are treated as 1.
type ListUsersInput struct {
	Page     int
	PageSize int
}

// PageRef points at a neighbouring page.
type PageRef struct {
	Page  int
	Limit int
}

// Pagination holds the optional neighbours of the current page.
type Pagination struct {
	Next *PageRef
	Prev *PageRef
}

// ListUsersOutput is one page of users plus the total user count.
type ListUsersOutput struct {
	Users      []*entity.User
	Total      int64
	Pagination Pagination
}

// AccountUsecase covers self-service profile operations and admin user management.
type AccountUsecase interface {
	GetSelf(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, input *ChangePasswordInput) error

	// Admin operations. Callers are expected to have passed the admin role check.
	ListUsers(ctx context.Context, input *ListUsersInput) (*ListUsersOutput, error)
	SetUserStatus(ctx context.Context, targetID uuid.UUID, status string) (*entity.User, error)
}
