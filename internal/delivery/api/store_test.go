package api

import (
	"context"
	"slices"
	"sync"
	"time"

	"usermgmt/internal/domain/entity"
	domainerrors "usermgmt/internal/domain/errors"
	"usermgmt/internal/domain/repository"

	"github.com/google/uuid"
)

// memoryStore is an in-process stand-in for PostgreSQL used by the HTTP tests.
type memoryStore struct {
	mu    sync.Mutex
	users []*entity.User
	tasks []*entity.Task
}

func (s *memoryStore) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(s)
}

func (s *memoryStore) UserRepo() repository.UserRepository { return (*memoryUsers)(s) }
func (s *memoryStore) TaskRepo() repository.TaskRepository { return (*memoryTasks)(s) }

type memoryUsers memoryStore

func cloneUser(u *entity.User) *entity.User {
	c := *u

	return &c
}

func (r *memoryUsers) find(match func(*entity.User) bool) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if match(u) {
			return cloneUser(u), nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memoryUsers) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.ID == id })
}

func (r *memoryUsers) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.Email == email })
}

func (r *memoryUsers) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return domainerrors.ErrUserAlreadyExists
		}
	}

	now := time.Now()
	user.CreatedAt, user.UpdatedAt = now, now
	r.users = append(r.users, cloneUser(user))

	return nil
}

func (r *memoryUsers) Update(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.ID == user.ID {
			u.FullName, u.Email = user.FullName, user.Email
			u.UpdatedAt = time.Now()

			return nil
		}
	}

	return repository.ErrUserNotFound
}

func (r *memoryUsers) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.ID == id {
			u.PasswordHash = passwordHash
			u.UpdatedAt = time.Now()

			return nil
		}
	}

	return repository.ErrUserNotFound
}

func (r *memoryUsers) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.ID == id {
			u.LastLogin = &at

			return nil
		}
	}

	return repository.ErrUserNotFound
}

func (r *memoryUsers) UpdateRole(ctx context.Context, id uuid.UUID, role entity.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.ID == id {
			u.Role = role

			return nil
		}
	}

	return repository.ErrUserNotFound
}

func (r *memoryUsers) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.Status) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.ID == id {
			u.Status = status

			return cloneUser(u), nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memoryUsers) List(ctx context.Context, offset, limit int) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*entity.User
	for i := offset; i < len(r.users) && len(out) < limit; i++ {
		out = append(out, cloneUser(r.users[i]))
	}

	return out, nil
}

func (r *memoryUsers) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return int64(len(r.users)), nil
}

type memoryTasks memoryStore

func (r *memoryTasks) FindByID(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range r.tasks {
		if t.ID == id {
			c := *t

			return &c, nil
		}
	}

	return nil, repository.ErrTaskNotFound
}

func (r *memoryTasks) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*entity.Task
	for _, t := range slices.Backward(r.tasks) {
		if t.OwnerUserID == ownerID {
			c := *t
			out = append(out, &c)
		}
	}

	return out, nil
}

func (r *memoryTasks) Create(ctx context.Context, task *entity.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	task.CreatedAt, task.UpdatedAt = now, now
	c := *task
	r.tasks = append(r.tasks, &c)

	return nil
}

func (r *memoryTasks) Update(ctx context.Context, task *entity.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range r.tasks {
		if t.ID == task.ID && t.OwnerUserID == task.OwnerUserID {
			t.Title, t.Description, t.Status = task.Title, task.Description, task.Status
			t.UpdatedAt = time.Now()

			return nil
		}
	}

	return repository.ErrTaskNotFound
}

func (r *memoryTasks) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, t := range r.tasks {
		if t.ID == id && t.OwnerUserID == ownerID {
			r.tasks = slices.Delete(r.tasks, i, i+1)

			return nil
		}
	}

	return repository.ErrTaskNotFound
}
