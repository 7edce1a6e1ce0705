package repository

import (
	"context"
	"errors"

	"usermgmt/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTaskNotFound is returned when a task does not exist or is not visible to the caller.
var ErrTaskNotFound = errors.New("task not found")

// TaskRepository persists owner-scoped tasks.
type TaskRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Task, error)

	// ListByOwner returns the owner's tasks, newest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Task, error)

	Create(ctx context.Context, task *entity.Task) error

	// Update saves title, description and status. The write is scoped to the task's owner;
	// ErrTaskNotFound is returned when no row matches both id and owner.
	Update(ctx context.Context, task *entity.Task) error

	// Delete removes the task with the given id owned by ownerID.
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}
