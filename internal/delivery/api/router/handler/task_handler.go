package handler

import (
	"net/http"

	"usermgmt/internal/delivery/api/response"
	deliverycontext "usermgmt/internal/delivery/context"
	domainerrors "usermgmt/internal/domain/errors"
	"usermgmt/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TaskHandlerParams holds dependencies for TaskHandler, injected by Fx.
type TaskHandlerParams struct {
	fx.In

	TaskUC usecase.TaskUsecase
}

// TaskHandler serves the owner-scoped task routes.
type TaskHandler struct {
	taskUC usecase.TaskUsecase
}

func NewTaskHandler(params TaskHandlerParams) *TaskHandler {
	return &TaskHandler{
		taskUC: params.TaskUC,
	}
}

// CreateTaskRequest is the body of POST /tasks.
type CreateTaskRequest struct {
	Title       string `json:"title" validate:"required,max=200" msg:"required=Title is required;max=Title must be 200 characters or fewer"`
	Description string `json:"description" validate:"max=2000" msg:"max=Description must be 2000 characters or fewer"`
}

// UpdateTaskRequest is the body of PUT /tasks/:id. Omitted fields are kept.
type UpdateTaskRequest struct {
	Title       *string `json:"title" validate:"omitnil,min=1,max=200" msg:"min=Title is required;max=Title must be 200 characters or fewer"`
	Description *string `json:"description" validate:"omitnil,max=2000" msg:"max=Description must be 2000 characters or fewer"`
	Status      *string `json:"status" validate:"omitnil,oneof=pending completed" msg:"oneof=Status must be pending or completed"`
}

func (h *TaskHandler) ListTasks(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	tasks, err := h.taskUC.ListTasks(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}

	return response.List(c, response.NewTaskViews(tasks), len(tasks), nil)
}

func (h *TaskHandler) CreateTask(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	var req CreateTaskRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	task, err := h.taskUC.CreateTask(c.Request().Context(), identity.ID, &usecase.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, response.NewTaskView(task))
}

// UpdateTask expects RequireTaskOwner to have run.
func (h *TaskHandler) UpdateTask(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	task, ok := deliverycontext.GetTask(c)
	if !ok {
		return domainerrors.ErrTaskNotFound
	}

	var req UpdateTaskRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	updated, err := h.taskUC.UpdateTask(c.Request().Context(), identity.ID, task.ID, &usecase.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, response.NewTaskView(updated))
}

// DeleteTask expects RequireTaskOwner to have run.
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	task, ok := deliverycontext.GetTask(c)
	if !ok {
		return domainerrors.ErrTaskNotFound
	}

	if err := h.taskUC.DeleteTask(c.Request().Context(), identity.ID, task.ID); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, struct{}{})
}
