package impl

import (
	"context"
	"testing"

	"usermgmt/internal/domain/entity"
	domainerrors "usermgmt/internal/domain/errors"
	"usermgmt/internal/domain/repository"
	"usermgmt/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestTaskService(d *testDeps) usecase.TaskUsecase {
	return NewTaskService(TaskServiceParams{
		TxManager: d.txManager,
		TaskRepo:  d.taskRepo,
		Logger:    newDiscardLogger(),
	})
}

func TestTaskService_CreateAndList(t *testing.T) {
	d := newTestDeps(t)
	srv := newTestTaskService(d)
	owner := uuid.New()

	d.taskRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(task *entity.Task) bool {
			return task.OwnerUserID == owner && task.Title == "Write report" && task.Status == entity.TaskStatusPending
		})).
		Return(nil)

	task, err := srv.CreateTask(context.Background(), owner, &usecase.CreateTaskInput{Title: "Write report"})
	require.NoError(t, err)
	assert.Equal(t, owner, task.OwnerUserID)

	d.taskRepo.EXPECT().ListByOwner(mock.Anything, owner).Return([]*entity.Task{task}, nil)

	tasks, err := srv.ListTasks(context.Background(), owner)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestTaskService_CreateTask_BlankTitle(t *testing.T) {
	d := newTestDeps(t)
	srv := newTestTaskService(d)

	_, err := srv.CreateTask(context.Background(), uuid.New(), &usecase.CreateTaskInput{Title: "  "})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestTaskService_GetTask_NotFound(t *testing.T) {
	d := newTestDeps(t)
	srv := newTestTaskService(d)

	id := uuid.New()
	d.taskRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrTaskNotFound)

	_, err := srv.GetTask(context.Background(), id)

	assert.ErrorIs(t, err, domainerrors.ErrTaskNotFound)
}

func TestTaskService_UpdateTask_Owner(t *testing.T) {
	d := newTestDeps(t)
	srv := newTestTaskService(d)

	owner := uuid.New()
	task := entity.NewTask(owner, "Write report", "")
	d.expectTx()
	d.taskRepo.EXPECT().FindByID(mock.Anything, task.ID).Return(task, nil)
	d.taskRepo.EXPECT().
		Update(mock.Anything, mock.MatchedBy(func(updated *entity.Task) bool {
			return updated.Status == entity.TaskStatusCompleted && updated.Title == "Write report"
		})).
		Return(nil)

	got, err := srv.UpdateTask(context.Background(), owner, task.ID, &usecase.UpdateTaskInput{Status: ptr("completed")})

	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusCompleted, got.Status)
}

func TestTaskService_UpdateTask_Rejections(t *testing.T) {
	owner := uuid.New()

	tests := []struct {
		name    string
		caller  uuid.UUID
		found   bool
		input   usecase.UpdateTaskInput
		wantErr error
	}{
		{name: "missing task", caller: owner, found: false, wantErr: domainerrors.ErrTaskNotFound},
		{name: "other owner", caller: uuid.New(), found: true, wantErr: domainerrors.ErrTaskOwnershipViolation},
		{name: "invalid status", caller: owner, found: true, input: usecase.UpdateTaskInput{Status: ptr("archived")}, wantErr: domainerrors.ErrValidationFailed},
		{name: "blank title", caller: owner, found: true, input: usecase.UpdateTaskInput{Title: ptr("")}, wantErr: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDeps(t)
			srv := newTestTaskService(d)

			task := entity.NewTask(owner, "Write report", "")
			d.expectTx()
			if tt.found {
				d.taskRepo.EXPECT().FindByID(mock.Anything, task.ID).Return(task, nil)
			} else {
				d.taskRepo.EXPECT().FindByID(mock.Anything, task.ID).Return(nil, repository.ErrTaskNotFound)
			}

			_, err := srv.UpdateTask(context.Background(), tt.caller, task.ID, &tt.input)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTaskService_DeleteTask(t *testing.T) {
	d := newTestDeps(t)
	srv := newTestTaskService(d)

	owner := uuid.New()
	task := entity.NewTask(owner, "Write report", "")
	d.expectTx()
	d.taskRepo.EXPECT().FindByID(mock.Anything, task.ID).Return(task, nil).Twice()
	d.taskRepo.EXPECT().Delete(mock.Anything, owner, task.ID).Return(nil)

	require.NoError(t, srv.DeleteTask(context.Background(), owner, task.ID))

	err := srv.DeleteTask(context.Background(), uuid.New(), task.ID)
	assert.ErrorIs(t, err, domainerrors.ErrTaskOwnershipViolation)
}
