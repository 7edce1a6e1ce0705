package usecase

import (
	"context"

	"usermgmt/internal/domain/entity"
)

// EnsureAdminInput names the bootstrap administrator.
type EnsureAdminInput struct {
	FullName string
	Email    string
	Password string
}

// AdminSeedUsecase bootstraps the first administrator account.
type AdminSeedUsecase interface {
	// EnsureAdmin creates the admin, or promotes the existing account with that email and
	// resets its full name. An existing account keeps its password. Running it twice is a no-op.
	// created reports whether a new account was inserted.
	EnsureAdmin(ctx context.Context, input *EnsureAdminInput) (user *entity.User, created bool, err error)
}
