package middleware

import (
	"fmt"
	"strings"

	deliverycontext "usermgmt/internal/delivery/context"
	"usermgmt/internal/domain/entity"
	domainerrors "usermgmt/internal/domain/errors"
	"usermgmt/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerScheme = "Bearer"

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	TaskUC    usecase.TaskUsecase
}

// AuthMiddleware guards routes with session, role and ownership checks.
type AuthMiddleware struct {
	sessionUC usecase.SessionUsecase
	taskUC    usecase.TaskUsecase
}

func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		sessionUC: params.SessionUC,
		taskUC:    params.TaskUC,
	}
}

// Authenticate requires "Authorization: Bearer <token>" and attaches the resolved identity.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := m.resolve(c)
		if err != nil {
			return err
		}
		if user == nil {
			return domainerrors.ErrUnauthenticated
		}

		deliverycontext.SetIdentity(c, user)

		return next(c)
	}
}

// Identify attaches the identity when a valid bearer token is present and lets
// anonymous requests through. Invalid tokens are treated as anonymous.
func (m *AuthMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if user, err := m.resolve(c); err == nil && user != nil {
			deliverycontext.SetIdentity(c, user)
		}

		return next(c)
	}
}

// resolve returns nil, nil when no Authorization header is sent.
func (m *AuthMiddleware) resolve(c echo.Context) (*entity.User, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return nil, nil
	}

	scheme, token, found := strings.Cut(header, " ")
	token = strings.TrimSpace(token)
	if !found || !strings.EqualFold(scheme, bearerScheme) || token == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	return m.sessionUC.Authenticate(c.Request().Context(), token)
}

// RequireRole admits only identities whose role is one of roles. It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := deliverycontext.GetIdentity(c)
			if !ok {
				return domainerrors.ErrUnauthenticated
			}

			if !user.HasRole(roles...) {
				return domainerrors.ErrForbidden.WithMessage(fmt.Sprintf(
					"User role %s is not authorized to access this route (requires: %s)",
					user.Role, entity.Roles(roles),
				))
			}

			return next(c)
		}
	}
}

// RequireTaskOwner loads the task named by the path param and admits only its owner.
// The loaded task is stored on the context for the handler.
func (m *AuthMiddleware) RequireTaskOwner(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := deliverycontext.GetIdentity(c)
			if !ok {
				return domainerrors.ErrUnauthenticated
			}

			taskID, err := uuid.Parse(c.Param(param))
			if err != nil {
				return domainerrors.ErrTaskNotFound
			}

			task, err := m.taskUC.GetTask(c.Request().Context(), taskID)
			if err != nil {
				return err
			}

			if !task.IsOwnedBy(user.ID) {
				return domainerrors.ErrTaskOwnershipViolation
			}

			deliverycontext.SetTask(c, task)

			return next(c)
		}
	}
}
