package usecase

import (
	"context"

	"usermgmt/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateTaskInput defines the data required to create a task.
type CreateTaskInput struct {
	Title       string
	Description string
}

// UpdateTaskInput is a partial update; nil fields are left unchanged.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *string
}

// TaskUsecase is the owner-scoped task API.
type TaskUsecase interface {
	// ListTasks returns the owner's tasks, newest first.
	ListTasks(ctx context.Context, ownerID uuid.UUID) ([]*entity.Task, error)
	CreateTask(ctx context.Context, ownerID uuid.UUID, input *CreateTaskInput) (*entity.Task, error)

	// GetTask loads a task regardless of owner. It backs the ownership middleware.
	GetTask(ctx context.Context, id uuid.UUID) (*entity.Task, error)

	UpdateTask(ctx context.Context, ownerID, id uuid.UUID, input *UpdateTaskInput) (*entity.Task, error)
	DeleteTask(ctx context.Context, ownerID, id uuid.UUID) error
}
