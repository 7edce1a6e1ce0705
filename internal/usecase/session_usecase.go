package usecase

import (
	"context"

	"usermgmt/internal/domain/entity"
)

// SessionUsecase resolves a bearer token into the identity it was issued for.
type SessionUsecase interface {
	// Authenticate returns ErrUnauthenticated for bad or expired tokens and for subjects
	// that no longer resolve to a user. It does not look at role or status.
	Authenticate(ctx context.Context, token string) (*entity.User, error)
}
