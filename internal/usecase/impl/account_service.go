package impl

import (
	"context"
	"log/slog"
	"strings"

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

type accountService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	cache     service.IdentityCache
	recorder  service.AuthRecorder
	logger    *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	UserRepo      repository.UserRepository
	Hasher        service.PasswordHasher
	IdentityCache service.IdentityCache
	Recorder      service.AuthRecorder
	Logger        *slog.Logger
}

func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		cache:     params.IdentityCache,
		recorder:  params.Recorder,
		logger:    params.Logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *accountService) GetSelf(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, mapUserLookupError(err)
	}

	return user, nil
}

// UpdateProfile applies a partial update. A changed email is checked for uniqueness in the
// same transaction as the write; the unique index catches any remaining race.
func (srv *accountService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	var updated *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return mapUserLookupError(err)
		}

		if input.FullName != nil {
			fullName := strings.TrimSpace(*input.FullName)
			if fullName == "" {
				return domainerrors.ErrValidationFailed.WithDetails(map[string]string{"fullName": "Name is required"})
			}
			user.FullName = fullName
		}

		if input.Email != nil && *input.Email != user.Email {
			existing, err := userRepo.FindByEmail(ctx, *input.Email)
			if err == nil && existing.ID != user.ID {
				return domainerrors.ErrUserAlreadyExists
			}
			if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(err, "failed to check email availability")
			}
			user.Email = *input.Email
		}

		if err := userRepo.Update(ctx, user); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to update profile")
		}
		updated = user

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.invalidate(ctx, userID)
	srv.log(ctx).Info("Profile updated", slog.String("user_id", userID.String()))

	return updated, nil
}

// ChangePassword requires the current password and re-hashes the new one.
func (srv *accountService) ChangePassword(ctx context.Context, userID uuid.UUID, input *usecase.ChangePasswordInput) error {
	if err := checkPasswordLength("newPassword", input.NewPassword); err != nil {
		return err
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return mapUserLookupError(err)
	}

	if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
		srv.recorder.RecordAuthAttempt(opChangePassword, service.OutcomeRejected)

		return domainerrors.ErrIncorrectPassword
	}

	passwordHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		srv.recorder.RecordAuthAttempt(opChangePassword, service.OutcomeError)

		return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	if err := srv.userRepo.UpdatePassword(ctx, userID, passwordHash); err != nil {
		srv.recorder.RecordAuthAttempt(opChangePassword, service.OutcomeError)

		return errors.Wrap(err, "failed to store new password")
	}

	srv.invalidate(ctx, userID)
	srv.recorder.RecordAuthAttempt(opChangePassword, service.OutcomeSuccess)
	srv.log(ctx).Info("Password changed", slog.String("user_id", userID.String()))

	return nil
}

// ListUsers returns one page in insertion order with next/prev descriptors.
func (srv *accountService) ListUsers(ctx context.Context, input *usecase.ListUsersInput) (*usecase.ListUsersOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.PageSize
	if limit < 1 {
		limit = usecase.DefaultPageSize
	}
	offset := (page - 1) * limit

	total, err := srv.userRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	users, err := srv.userRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	var pagination usecase.Pagination
	if int64(offset+len(users)) < total {
		pagination.Next = &usecase.PageRef{Page: page + 1, Limit: limit}
	}
	if offset > 0 {
		pagination.Prev = &usecase.PageRef{Page: page - 1, Limit: limit}
	}

	return &usecase.ListUsersOutput{
		Users:      users,
		Total:      total,
		Pagination: pagination,
	}, nil
}

// SetUserStatus toggles account enablement. The cached identity is dropped so the change
// is visible on the target's next request.
func (srv *accountService) SetUserStatus(ctx context.Context, targetID uuid.UUID, status string) (*entity.User, error) {
	parsed, err := entity.ParseStatus(status)
	if err != nil {
		return nil, domainerrors.ErrInvalidStatus
	}

	user, err := srv.userRepo.UpdateStatus(ctx, targetID, parsed)
	if err != nil {
		return nil, mapUserLookupError(err)
	}

	srv.invalidate(ctx, targetID)
	srv.log(ctx).Info("User status changed",
		slog.String("target_user_id", targetID.String()),
		slog.String("status", parsed.String()),
	)

	return user, nil
}

func (srv *accountService) invalidate(ctx context.Context, userID uuid.UUID) {
	if err := srv.cache.Invalidate(ctx, userID); err != nil {
		srv.log(ctx).Warn("Failed to invalidate cached identity", slog.String("user_id", userID.String()), slog.Any("error", err))
	}
}

// mapUserLookupError turns the repository's not-found into the 404 domain error.
func mapUserLookupError(err error) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound
	}

	return errors.Wrap(err, "failed to load user")
}
