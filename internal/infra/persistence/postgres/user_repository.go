// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"usermgmt/internal/domain/entity"
	domainerrors "usermgmt/internal/domain/errors"
	"usermgmt/internal/domain/repository"
	"usermgmt/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by exact email match.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("email = ?", email).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user. A unique-index race on email surfaces as ErrUserAlreadyExists.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("invalid user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update writes full name and email. The password hash has its own statement so a concurrent
// profile edit cannot overwrite a password change.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"full_name":  user.FullName,
			"email":      user.Email,
			"updated_at": now,
		})
	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrUserUpdateFailed.WrapMessage("invalid user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	user.UpdatedAt = now

	return nil
}

// UpdatePassword sets password_hash in a single statement.
func (repo *userRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"password_hash": passwordHash,
			"updated_at":    time.Now(),
		})
	if err := result.Error; err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrUserUpdateFailed.WrapMessage("invalid password hash")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update password")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// UpdateLastLogin sets last_login without touching any other column.
func (repo *userRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		UpdateColumn("last_login", at)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update last login")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// UpdateRole sets role in a single statement.
func (repo *userRepository) UpdateRole(ctx context.Context, id uuid.UUID, role entity.Role) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"role":       role.String(),
			"updated_at": time.Now(),
		})
	if err := result.Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("role rejected by store")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user role")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// UpdateStatus sets status in a single statement and returns the row as written.
func (repo *userRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.Status) (*entity.User, error) {
	var userM model.UserModel
	result := repo.db.WithContext(ctx).
		Model(&userM).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     status.String(),
			"updated_at": time.Now(),
		})
	if err := result.Error; err != nil {
		if isCheckConstraintViolation(err) {
			return nil, domainerrors.ErrInvalidStatus.WrapMessage("status rejected by store")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update user status")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrUserNotFound
	}

	return toUserDomain(&userM), nil
}

// List returns a page of users in insertion order.
func (repo *userRepository) List(ctx context.Context, offset, limit int) ([]*entity.User, error) {
	var userMs []*model.UserModel
	err := repo.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&userMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userMs))
	for _, userM := range userMs {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// Count returns the total number of users.
func (repo *userRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.UserModel{}).Count(&total).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count users")
	}

	return total, nil
}

func toUserDomain(userM *model.UserModel) *entity.User {
	if userM == nil {
		return nil
	}

	return &entity.User{
		ID:           userM.ID,
		FullName:     userM.FullName,
		Email:        userM.Email,
		PasswordHash: userM.PasswordHash,
		Role:         entity.Role(userM.Role),
		Status:       entity.Status(userM.Status),
		LastLogin:    userM.LastLogin,
		CreatedAt:    userM.CreatedAt,
		UpdatedAt:    userM.UpdatedAt,
	}
}

func fromUserDomain(user *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:           user.ID,
		FullName:     user.FullName,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         user.Role.String(),
		Status:       user.Status.String(),
		LastLogin:    user.LastLogin,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}
