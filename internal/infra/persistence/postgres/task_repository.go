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
)

type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository is the constructor for taskRepository.
func NewTaskRepository(db *gorm.DB) repository.TaskRepository {
	return &taskRepository{db: db}
}

func (repo *taskRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	var taskM model.TaskModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&taskM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTaskNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find task by id")
	}

	return toTaskDomain(&taskM), nil
}

// ListByOwner returns the owner's tasks, newest first.
func (repo *taskRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Task, error) {
	var taskMs []*model.TaskModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Find(&taskMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list tasks")
	}

	tasks := make([]*entity.Task, 0, len(taskMs))
	for _, taskM := range taskMs {
		tasks = append(tasks, toTaskDomain(taskM))
	}

	return tasks, nil
}

func (repo *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	taskM := fromTaskDomain(task)

	if err := repo.db.WithContext(ctx).Create(taskM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create task")
	}

	task.CreatedAt = taskM.CreatedAt
	task.UpdatedAt = taskM.UpdatedAt

	return nil
}

// Update is scoped by both id and owner so a task can never be modified through another account.
func (repo *taskRepository) Update(ctx context.Context, task *entity.Task) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.TaskModel{}).
		Where("id = ? AND user_id = ?", task.ID, task.OwnerUserID).
		Updates(map[string]any{
			"title":       task.Title,
			"description": task.Description,
			"status":      string(task.Status),
			"updated_at":  now,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update task")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	task.UpdatedAt = now

	return nil
}

func (repo *taskRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&model.TaskModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete task")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

func toTaskDomain(taskM *model.TaskModel) *entity.Task {
	return &entity.Task{
		ID:          taskM.ID,
		OwnerUserID: taskM.UserID,
		Title:       taskM.Title,
		Description: taskM.Description,
		Status:      entity.TaskStatus(taskM.Status),
		CreatedAt:   taskM.CreatedAt,
		UpdatedAt:   taskM.UpdatedAt,
	}
}

func fromTaskDomain(task *entity.Task) *model.TaskModel {
	return &model.TaskModel{
		ID:          task.ID,
		UserID:      task.OwnerUserID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}
