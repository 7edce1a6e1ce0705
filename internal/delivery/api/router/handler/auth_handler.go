package handler

import (
	"log/slog"
	"net/http"

	"usermgmt/internal/delivery/api/response"
	deliverycontext "usermgmt/internal/delivery/context"
	"usermgmt/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves signup, login and logout.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// SignupRequest is the body of POST /auth/signup.
type SignupRequest struct {
	FullName string `json:"fullName" validate:"required" msg:"required=Name is required"`
	Email    string `json:"email" validate:"required,email" msg:"required=Please include a valid email;email=Please include a valid email"`
	Password string `json:"password" validate:"min=6,max=72" msg:"min=Please enter a password with 6 or more characters;max=Password must be 72 bytes or fewer"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" msg:"required=Please include a valid email;email=Please include a valid email"`
	Password string `json:"password" validate:"required" msg:"required=Password is required"`
}

func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.authUC.Signup(c.Request().Context(), &usecase.SignupInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return response.Authenticated(c, http.StatusCreated, out.Token, response.NewUserView(out.User))
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return response.Authenticated(c, http.StatusOK, out.Token, response.NewUserView(out.User))
}

// Logout always acknowledges. Tokens stay valid until they expire.
func (h *AuthHandler) Logout(c echo.Context) error {
	userID := uuid.Nil
	if user, ok := deliverycontext.GetIdentity(c); ok {
		userID = user.ID
	}

	if err := h.authUC.Logout(c.Request().Context(), userID); err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
			Warn("Logout bookkeeping failed", slog.Any("error", err))
	}

	return response.Message(c, http.StatusOK, "User logged out successfully")
}
