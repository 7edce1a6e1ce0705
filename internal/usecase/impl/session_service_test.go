package impl

import (
	"context"
	"testing"

	"usermgmt/internal/domain/entity"
	domainerrors "usermgmt/internal/domain/errors"
	"usermgmt/internal/domain/repository"
	"usermgmt/internal/domain/service"
	"usermgmt/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestSessionService(d *testDeps) usecase.SessionUsecase {
	return NewSessionService(SessionServiceParams{
		UserRepo:      d.userRepo,
		TokenService:  d.tokens,
		IdentityCache: d.cache,
		Recorder:      d.recorder,
		Logger:        newDiscardLogger(),
	})
}

func TestSessionService_Authenticate_InvalidToken(t *testing.T) {
	d := newTestDeps(t)
	srv := newTestSessionService(d)

	d.tokens.EXPECT().Verify("bogus").Return(uuid.Nil, errors.New("signature is invalid"))
	d.expectAuthAttempt(opSession, service.OutcomeRejected)

	_, err := srv.Authenticate(context.Background(), "bogus")

	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestSessionService_Authenticate_CacheHit(t *testing.T) {
	d := newTestDeps(t)
	srv := newTestSessionService(d)

	user := entity.NewUser("Jane", "jane@example.com", "")
	d.tokens.EXPECT().Verify("tok").Return(user.ID, nil)
	d.cache.EXPECT().Get(mock.Anything, user.ID).Return(user, nil)

	got, err := srv.Authenticate(context.Background(), "tok")

	require.NoError(t, err)
	assert.Same(t, user, got)
}

func TestSessionService_Authenticate_CacheMissLoadsAndStores(t *testing.T) {
	d := newTestDeps(t)
	srv := newTestSessionService(d)

	user := entity.NewUser("Jane", "jane@example.com", "h")
	d.tokens.EXPECT().Verify("tok").Return(user.ID, nil)
	d.cache.EXPECT().Get(mock.Anything, user.ID).Return(nil, nil)
	d.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)
	d.cache.EXPECT().Set(mock.Anything, user).Return(nil)

	got, err := srv.Authenticate(context.Background(), "tok")

	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestSessionService_Authenticate_CacheErrorFallsBackToStore(t *testing.T) {
	d := newTestDeps(t)
	srv := newTestSessionService(d)

	user := entity.NewUser("Jane", "jane@example.com", "h")
	d.tokens.EXPECT().Verify("tok").Return(user.ID, nil)
	d.cache.EXPECT().Get(mock.Anything, user.ID).Return(nil, errors.New("redis down"))
	d.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)
	d.cache.EXPECT().Set(mock.Anything, user).Return(errors.New("redis down"))

	got, err := srv.Authenticate(context.Background(), "tok")

	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestSessionService_Authenticate_UnknownSubject(t *testing.T) {
	d := newTestDeps(t)
	srv := newTestSessionService(d)

	id := uuid.New()
	d.tokens.EXPECT().Verify("tok").Return(id, nil)
	d.cache.EXPECT().Get(mock.Anything, id).Return(nil, nil)
	d.userRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrUserNotFound)
	d.expectAuthAttempt(opSession, service.OutcomeRejected)

	_, err := srv.Authenticate(context.Background(), "tok")

	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestSessionService_Authenticate_InactiveUserStillResolves(t *testing.T) {
	d := newTestDeps(t)
	srv := newTestSessionService(d)

	user := entity.NewUser("Jane", "jane@example.com", "h")
	user.Status = entity.StatusInactive
	d.tokens.EXPECT().Verify("tok").Return(user.ID, nil)
	d.cache.EXPECT().Get(mock.Anything, user.ID).Return(nil, nil)
	d.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)
	d.cache.EXPECT().Set(mock.Anything, user).Return(nil)

	got, err := srv.Authenticate(context.Background(), "tok")

	require.NoError(t, err)
	assert.Equal(t, entity.StatusInactive, got.Status)
}

func TestSessionService_Authenticate_StoreFailure(t *testing.T) {
	d := newTestDeps(t)
	srv := newTestSessionService(d)

	id := uuid.New()
	d.tokens.EXPECT().Verify("tok").Return(id, nil)
	d.cache.EXPECT().Get(mock.Anything, id).Return(nil, nil)
	d.userRepo.EXPECT().FindByID(mock.Anything, id).
		Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("timeout"), "failed to find user by id"))
	d.expectAuthAttempt(opSession, service.OutcomeError)

	_, err := srv.Authenticate(context.Background(), "tok")

	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrUnauthenticated)
}
