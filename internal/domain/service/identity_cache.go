package service

import (
	"context"

	"usermgmt/internal/domain/entity"

	"github.com/google/uuid"
)

// IdentityCache keeps recently resolved session identities so that authenticated
// requests do not hit the store on every call. Entries never carry the password hash.
type IdentityCache interface {
	// Get returns the cached user, or nil on a miss.
	Get(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	Set(ctx context.Context, user *entity.User) error

	// Invalidate drops the entry after any write to the user record.
	Invalidate(ctx context.Context, userID uuid.UUID) error
}
