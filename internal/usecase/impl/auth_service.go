// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	deliverycontext "usermgmt/internal/delivery/context"
	"usermgmt/internal/domain/entity"
	domainerrors "usermgmt/internal/domain/errors"
	"usermgmt/internal/domain/repository"
	"usermgmt/internal/domain/service"
	"usermgmt/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Operation labels used for auth attempt metrics.
const (
	opSignup         = "signup"
	opLogin          = "login"
	opLogout         = "logout"
	opChangePassword = "change_password"
	opSession        = "session"
)

// dummyPassword is hashed once and compared against on unknown-email logins.
const dummyPassword = "usermgmt-timing-equalizer"

type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	cache        service.IdentityCache
	recorder     service.AuthRecorder
	logger       *slog.Logger

	dummyHashOnce sync.Once
	dummyHash     string
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	UserRepo      repository.UserRepository
	Hasher        service.PasswordHasher
	TokenService  service.TokenService
	IdentityCache service.IdentityCache
	Recorder      service.AuthRecorder
	Logger        *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		cache:        params.IdentityCache,
		recorder:     params.Recorder,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup creates an active regular user and issues a session token.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.AuthOutput, error) {
	fullName := strings.TrimSpace(input.FullName)
	if fullName == "" {
		srv.recorder.RecordAuthAttempt(opSignup, service.OutcomeRejected)

		return nil, domainerrors.ErrValidationFailed.WithDetails(map[string]string{"fullName": "Name is required"})
	}
	if err := checkPasswordLength("password", input.Password); err != nil {
		srv.recorder.RecordAuthAttempt(opSignup, service.OutcomeRejected)

		return nil, err
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.recorder.RecordAuthAttempt(opSignup, service.OutcomeError)

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := entity.NewUser(fullName, input.Email, passwordHash)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, err := userRepo.FindByEmail(ctx, user.Email)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check existing user")
		}

		return userRepo.Create(ctx, user)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			srv.log(ctx).Info("Signup rejected, email already registered", slog.String("email", user.Email))
			srv.recorder.RecordAuthAttempt(opSignup, service.OutcomeRejected)

			return nil, err
		}
		srv.recorder.RecordAuthAttempt(opSignup, service.OutcomeError)

		return nil, errors.Wrap(err, "failed to register user")
	}

	token, err := srv.issueToken(ctx, user.ID)
	if err != nil {
		srv.recorder.RecordAuthAttempt(opSignup, service.OutcomeError)

		return nil, err
	}

	srv.log(ctx).Info("User registered", slog.String("user_id", user.ID.String()))
	srv.recorder.RecordAuthAttempt(opSignup, service.OutcomeSuccess)

	return &usecase.AuthOutput{Token: token, User: user}, nil
}

// Login verifies credentials. Unknown email and wrong password are indistinguishable to the caller.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.hasher.Check(input.Password, srv.dummyPasswordHash())
			srv.recorder.RecordAuthAttempt(opLogin, service.OutcomeRejected)

			return nil, domainerrors.ErrInvalidCredentials
		}
		srv.recorder.RecordAuthAttempt(opLogin, service.OutcomeError)

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.recorder.RecordAuthAttempt(opLogin, service.OutcomeRejected)

		return nil, domainerrors.ErrInvalidCredentials
	}

	if !user.IsActive() {
		srv.log(ctx).Info("Login rejected for inactive account", slog.String("user_id", user.ID.String()))
		srv.recorder.RecordAuthAttempt(opLogin, service.OutcomeRejected)

		return nil, domainerrors.ErrAccountInactive
	}

	now := time.Now().UTC()
	if err := srv.userRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		srv.recorder.RecordAuthAttempt(opLogin, service.OutcomeError)

		return nil, errors.Wrap(err, "failed to record last login")
	}
	user.LastLogin = &now
	srv.invalidate(ctx, user.ID)

	token, err := srv.issueToken(ctx, user.ID)
	if err != nil {
		srv.recorder.RecordAuthAttempt(opLogin, service.OutcomeError)

		return nil, err
	}

	srv.recorder.RecordAuthAttempt(opLogin, service.OutcomeSuccess)

	return &usecase.AuthOutput{Token: token, User: user}, nil
}

// Logout drops any cached identity; the token itself stays valid until it expires.
func (srv *authService) Logout(ctx context.Context, userID uuid.UUID) error {
	if userID != uuid.Nil {
		srv.invalidate(ctx, userID)
	}
	srv.recorder.RecordAuthAttempt(opLogout, service.OutcomeSuccess)

	return nil
}

func (srv *authService) issueToken(ctx context.Context, userID uuid.UUID) (string, error) {
	token, err := srv.tokenService.Issue(userID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session token", slog.Any("error", err))

		return "", errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	return token, nil
}

func (srv *authService) dummyPasswordHash() string {
	srv.dummyHashOnce.Do(func() {
		hash, err := srv.hasher.Hash(dummyPassword)
		if err != nil {
			srv.logger.Warn("Failed to compute timing hash", slog.Any("error", err))

			return
		}
		srv.dummyHash = hash
	})

	return srv.dummyHash
}

func (srv *authService) invalidate(ctx context.Context, userID uuid.UUID) {
	if err := srv.cache.Invalidate(ctx, userID); err != nil {
		srv.log(ctx).Warn("Failed to invalidate cached identity", slog.String("user_id", userID.String()), slog.Any("error", err))
	}
}
