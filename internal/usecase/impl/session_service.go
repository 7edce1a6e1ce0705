package impl

import (
	"context"
	"log/slog"

	deliverycontext "usermgmt/internal/delivery/context"
	"usermgmt/internal/domain/entity"
	domainerrors "usermgmt/internal/domain/errors"
	"usermgmt/internal/domain/repository"
	"usermgmt/internal/domain/service"
	"usermgmt/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type sessionService struct {
	userRepo     repository.UserRepository
	tokenService service.TokenService
	cache        service.IdentityCache
	recorder     service.AuthRecorder
	logger       *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	UserRepo      repository.UserRepository
	TokenService  service.TokenService
	IdentityCache service.IdentityCache
	Recorder      service.AuthRecorder
	Logger        *slog.Logger
}

func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		userRepo:     params.UserRepo,
		tokenService: params.TokenService,
		cache:        params.IdentityCache,
		recorder:     params.Recorder,
		logger:       params.Logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Authenticate verifies the token and resolves its subject, consulting the identity cache first.
// Cache failures are logged and fall through to the store.
func (srv *sessionService) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	userID, err := srv.tokenService.Verify(token)
	if err != nil {
		srv.recorder.RecordAuthAttempt(opSession, service.OutcomeRejected)

		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, err.Error())
	}

	cached, err := srv.cache.Get(ctx, userID)
	if err != nil {
		srv.log(ctx).Warn("Identity cache lookup failed", slog.Any("error", err))
	}
	if cached != nil {
		return cached, nil
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.recorder.RecordAuthAttempt(opSession, service.OutcomeRejected)

			return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "token subject no longer exists")
		}
		srv.recorder.RecordAuthAttempt(opSession, service.OutcomeError)

		return nil, errors.Wrap(err, "failed to resolve session identity")
	}

	if err := srv.cache.Set(ctx, user); err != nil {
		srv.log(ctx).Warn("Failed to cache identity", slog.Any("error", err))
	}

	return user, nil
}
