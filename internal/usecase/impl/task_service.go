package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "usermgmt/internal/delivery/context"
	"usermgmt/internal/domain/entity"
	domainerrors "usermgmt/internal/domain/errors"
	"usermgmt/internal/domain/repository"
	"usermgmt/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type taskService struct {
	txManager repository.TransactionManager
	taskRepo  repository.TaskRepository
	logger    *slog.Logger
}

// TaskServiceParams holds dependencies for TaskService, injected by Fx.
type TaskServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	TaskRepo  repository.TaskRepository
	Logger    *slog.Logger
}

func NewTaskService(params TaskServiceParams) usecase.TaskUsecase {
	return &taskService{
		txManager: params.TxManager,
		taskRepo:  params.TaskRepo,
		logger:    params.Logger,
	}
}

func (srv *taskService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *taskService) ListTasks(ctx context.Context, ownerID uuid.UUID) ([]*entity.Task, error) {
	tasks, err := srv.taskRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tasks")
	}

	return tasks, nil
}

func (srv *taskService) CreateTask(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateTaskInput) (*entity.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails(map[string]string{"title": "Title is required"})
	}

	task := entity.NewTask(ownerID, title, input.Description)
	if err := srv.taskRepo.Create(ctx, task); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to create task")
	}

	srv.log(ctx).Info("Task created", slog.String("task_id", task.ID.String()))

	return task, nil
}

func (srv *taskService) GetTask(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	task, err := srv.taskRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapTaskLookupError(err)
	}

	return task, nil
}

// UpdateTask checks existence, then ownership, then applies the partial update.
func (srv *taskService) UpdateTask(ctx context.Context, ownerID, id uuid.UUID, input *usecase.UpdateTaskInput) (*entity.Task, error) {
	var updated *entity.Task

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		taskRepo := repoFactory.TaskRepo()

		task, err := loadOwnedTask(ctx, taskRepo, ownerID, id)
		if err != nil {
			return err
		}

		if input.Title != nil {
			title := strings.TrimSpace(*input.Title)
			if title == "" {
				return domainerrors.ErrValidationFailed.WithDetails(map[string]string{"title": "Title is required"})
			}
			task.Title = title
		}
		if input.Description != nil {
			task.Description = *input.Description
		}
		if input.Status != nil {
			status, err := entity.ParseTaskStatus(*input.Status)
			if err != nil {
				return domainerrors.ErrValidationFailed.WithDetails(map[string]string{
					"status": "Status must be one of pending, completed",
				})
			}
			task.Status = status
		}

		if err := taskRepo.Update(ctx, task); err != nil {
			return mapTaskLookupError(err)
		}
		updated = task

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (srv *taskService) DeleteTask(ctx context.Context, ownerID, id uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		taskRepo := repoFactory.TaskRepo()

		if _, err := loadOwnedTask(ctx, taskRepo, ownerID, id); err != nil {
			return err
		}

		if err := taskRepo.Delete(ctx, ownerID, id); err != nil {
			return mapTaskLookupError(err)
		}
		srv.log(ctx).Info("Task deleted", slog.String("task_id", id.String()))

		return nil
	})
}

func loadOwnedTask(ctx context.Context, taskRepo repository.TaskRepository, ownerID, id uuid.UUID) (*entity.Task, error) {
	task, err := taskRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapTaskLookupError(err)
	}
	if !task.IsOwnedBy(ownerID) {
		return nil, domainerrors.ErrTaskOwnershipViolation
	}

	return task, nil
}

func mapTaskLookupError(err error) error {
	if errors.Is(err, repository.ErrTaskNotFound) {
		return domainerrors.ErrTaskNotFound
	}

	return errors.Wrap(err, "failed to access task")
}
