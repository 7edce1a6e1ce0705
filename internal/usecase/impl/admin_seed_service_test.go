package impl

import (
	"context"
	"strings"
	"testing"

	"usermgmt/internal/domain/entity"
	domainerrors "usermgmt/internal/domain/errors"
	"usermgmt/internal/domain/repository"
	"usermgmt/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAdminSeedService(d *testDeps) usecase.AdminSeedUsecase {
	return NewAdminSeedService(AdminSeedServiceParams{
		TxManager:     d.txManager,
		Hasher:        d.hasher,
		IdentityCache: d.cache,
		Logger:        newDiscardLogger(),
	})
}

var adminInput = &usecase.EnsureAdminInput{
	FullName: "Site Admin",
	Email:    "admin@example.com",
	Password: "adminpass",
}

func TestEnsureAdmin_CreatesWhenMissing(t *testing.T) {
	d := newTestDeps(t)
	d.expectTx()
	d.userRepo.EXPECT().FindByEmail(mock.Anything, "admin@example.com").Return(nil, repository.ErrUserNotFound)
	d.hasher.EXPECT().Hash("adminpass").Return("$2a$hash", nil)
	d.userRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.Role == entity.RoleAdmin && u.Status == entity.StatusActive && u.PasswordHash == "$2a$hash"
		})).
		Return(nil)

	user, created, err := newAdminSeedService(d).EnsureAdmin(context.Background(), adminInput)

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "Site Admin", user.FullName)
	assert.Equal(t, entity.RoleAdmin, user.Role)
}

func TestEnsureAdmin_PromotesExistingAccount(t *testing.T) {
	d := newTestDeps(t)
	d.expectTx()
	existing := entity.NewUser("Old Name", "admin@example.com", "$2a$existing")
	d.userRepo.EXPECT().FindByEmail(mock.Anything, "admin@example.com").Return(existing, nil)
	d.userRepo.EXPECT().
		Update(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.FullName == "Site Admin" && u.Email == "admin@example.com"
		})).
		Return(nil)
	d.userRepo.EXPECT().UpdateRole(mock.Anything, existing.ID, entity.RoleAdmin).Return(nil)
	d.cache.EXPECT().Invalidate(mock.Anything, existing.ID).Return(nil)

	user, created, err := newAdminSeedService(d).EnsureAdmin(context.Background(), adminInput)

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, existing.ID, user.ID)
	assert.Equal(t, entity.RoleAdmin, user.Role)
}

func TestEnsureAdmin_RejectsPasswordLengthForNewAccount(t *testing.T) {
	for name, password := range map[string]string{
		"too short":         "123",
		"over bcrypt limit": strings.Repeat("a", entity.MaxPasswordBytes+1),
	} {
		t.Run(name, func(t *testing.T) {
			d := newTestDeps(t)
			d.expectTx()
			d.userRepo.EXPECT().FindByEmail(mock.Anything, "admin@example.com").Return(nil, repository.ErrUserNotFound)

			_, _, err := newAdminSeedService(d).EnsureAdmin(context.Background(), &usecase.EnsureAdminInput{
				FullName: "Site Admin",
				Email:    "admin@example.com",
				Password: password,
			})

			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestEnsureAdmin_RequiresIdentity(t *testing.T) {
	d := newTestDeps(t)

	_, _, err := newAdminSeedService(d).EnsureAdmin(context.Background(), &usecase.EnsureAdminInput{Password: "adminpass"})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestEnsureAdmin_PropagatesStoreFailure(t *testing.T) {
	d := newTestDeps(t)
	d.expectTx()
	storeErr := domainerrors.NewDatabaseExecuteError(errors.New("boom"), "lookup")
	d.userRepo.EXPECT().FindByEmail(mock.Anything, "admin@example.com").Return(nil, storeErr)

	_, _, err := newAdminSeedService(d).EnsureAdmin(context.Background(), adminInput)

	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
}
