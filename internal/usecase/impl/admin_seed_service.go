package impl

import (
	"context"
	"log/slog"
	"strings"

	"usermgmt/internal/domain/entity"
	domainerrors "usermgmt/internal/domain/errors"
	"usermgmt/internal/domain/repository"
	"usermgmt/internal/domain/service"
	"usermgmt/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type adminSeedService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	cache     service.IdentityCache
	logger    *slog.Logger
}

// AdminSeedServiceParams holds dependencies for AdminSeedService, injected by Fx.
type AdminSeedServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	Hasher        service.PasswordHasher
	IdentityCache service.IdentityCache
	Logger        *slog.Logger
}

func NewAdminSeedService(params AdminSeedServiceParams) usecase.AdminSeedUsecase {
	return &adminSeedService{
		txManager: params.TxManager,
		hasher:    params.Hasher,
		cache:     params.IdentityCache,
		logger:    params.Logger,
	}
}

func (srv *adminSeedService) EnsureAdmin(ctx context.Context, input *usecase.EnsureAdminInput) (*entity.User, bool, error) {
	fullName := strings.TrimSpace(input.FullName)
	email := strings.TrimSpace(input.Email)
	if fullName == "" || email == "" {
		return nil, false, domainerrors.ErrValidationFailed.WithDetails(map[string]string{
			"admin": "admin fullName and email must be configured",
		})
	}

	var (
		admin   *entity.User
		created bool
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		existing, err := userRepo.FindByEmail(ctx, email)
		switch {
		case err == nil:
			existing.FullName = fullName
			if err := userRepo.Update(ctx, existing); err != nil {
				return errors.Wrap(err, "failed to rename admin")
			}
			if err := userRepo.UpdateRole(ctx, existing.ID, entity.RoleAdmin); err != nil {
				return errors.Wrap(err, "failed to promote admin")
			}
			existing.Role = entity.RoleAdmin
			admin = existing

			return nil
		case !errors.Is(err, repository.ErrUserNotFound):
			return errors.Wrap(err, "failed to look up admin")
		}

		if err := checkPasswordLength("admin.password", input.Password); err != nil {
			return err
		}

		hash, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}

		user := entity.NewUser(fullName, email, hash)
		user.Role = entity.RoleAdmin
		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create admin")
		}
		admin, created = user, true

		return nil
	})
	if err != nil {
		return nil, false, err
	}

	if !created {
		if err := srv.cache.Invalidate(ctx, admin.ID); err != nil {
			srv.logger.Warn("Failed to invalidate cached identity", slog.Any("error", err))
		}
	}

	srv.logger.Info("Admin account ensured",
		slog.String("user_id", admin.ID.String()),
		slog.String("email", admin.Email),
		slog.Bool("created", created),
	)

	return admin, created, nil
}
