package handler

import (
	"net/http"
	"strconv"

	"usermgmt/internal/delivery/api/response"
	deliverycontext "usermgmt/internal/delivery/context"
	domainerrors "usermgmt/internal/domain/errors"
	"usermgmt/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
}

// AccountHandler serves the self-service profile routes and the admin user routes.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
}

func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
	}
}

// UpdateDetailsRequest is the body of PUT /users/updatedetails. Omitted fields are kept.
type UpdateDetailsRequest struct {
	FullName *string `json:"fullName" validate:"omitnil,min=1" msg:"min=Name is required"`
	Email    *string `json:"email" validate:"omitnil,email" msg:"email=Please include a valid email"`
}

// UpdatePasswordRequest is the body of PUT /users/updatepassword.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required" msg:"required=Current password is required"`
	NewPassword     string `json:"newPassword" validate:"min=6,max=72" msg:"min=Please enter a password with 6 or more characters;max=Password must be 72 bytes or fewer"`
}

// SetStatusRequest is the body of PUT /users/admin/users/:id/status.
type SetStatusRequest struct {
	Status string `json:"status" validate:"required" msg:"required=Status is required"`
}

func (h *AccountHandler) GetMe(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	user, err := h.accountUC.GetSelf(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, response.NewUserView(user))
}

func (h *AccountHandler) UpdateDetails(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	var req UpdateDetailsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.accountUC.UpdateProfile(c.Request().Context(), identity.ID, &usecase.UpdateProfileInput{
		FullName: req.FullName,
		Email:    req.Email,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, response.NewUserView(user))
}

func (h *AccountHandler) UpdatePassword(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	var req UpdatePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	err := h.accountUC.ChangePassword(c.Request().Context(), identity.ID, &usecase.ChangePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		return err
	}

	return response.Message(c, http.StatusOK, "Password updated successfully")
}

// ListUsers serves GET /users/admin/users?page=N. A missing or unparsable page means page 1.
func (h *AccountHandler) ListUsers(c echo.Context) error {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		page = 1
	}

	out, err := h.accountUC.ListUsers(c.Request().Context(), &usecase.ListUsersInput{
		Page:     page,
		PageSize: usecase.DefaultPageSize,
	})
	if err != nil {
		return err
	}

	views := response.NewUserViews(out.Users)

	return response.List(c, views, len(views), response.NewPaginationView(out.Pagination))
}

func (h *AccountHandler) SetUserStatus(c echo.Context) error {
	targetID, err := pathUUID(c, "id", domainerrors.ErrUserNotFound)
	if err != nil {
		return err
	}

	var req SetStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.accountUC.SetUserStatus(c.Request().Context(), targetID, req.Status)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, response.NewUserView(user))
}
