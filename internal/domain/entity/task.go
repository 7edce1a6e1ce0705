package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// TaskStatus is the progress state of a Task.
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
)

// IsValid checks if the TaskStatus is a valid value.
func (s TaskStatus) IsValid() bool {
	return s == TaskStatusPending || s == TaskStatusCompleted
}

// ParseTaskStatus converts a raw string into a TaskStatus.
func ParseTaskStatus(s string) (TaskStatus, error) {
	status := TaskStatus(s)
	if !status.IsValid() {
		return "", errors.Wrapf(ErrInvalidEnum, "task status %q", s)
	}

	return status, nil
}

// Task is an ownership-scoped resource. Only its owner may change or delete it.
type Task struct {
	ID          uuid.UUID
	OwnerUserID uuid.UUID // Set at creation, immutable.
	Title       string
	Description string
	Status      TaskStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTask builds a pending task owned by ownerID.
func NewTask(ownerID uuid.UUID, title, description string) *Task {
	return &Task{
		ID:          newID(),
		OwnerUserID: ownerID,
		Title:       title,
		Description: description,
		Status:      TaskStatusPending,
	}
}

// IsOwnedBy reports whether userID owns the task.
func (t *Task) IsOwnedBy(userID uuid.UUID) bool {
	return t.OwnerUserID == userID
}
