package context

import (
	"context"
	"log/slog"

	"usermgmt/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// SetIdentity attaches the authenticated user to both the echo context and the request
// context, and tags the request logger with the user id.
func SetIdentity(c echo.Context, user *entity.User) {
	c.Set(string(KeyIdentity), user)

	ctx := context.WithValue(c.Request().Context(), KeyIdentity, user)
	if logger := GetLogger(ctx); logger != nil {
		ctx = WithLogger(ctx, logger.With(slog.String("user_id", user.ID.String())))
	}
	c.SetRequest(c.Request().WithContext(ctx))
}

// GetIdentity returns the authenticated user, or false on public routes.
func GetIdentity(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(string(KeyIdentity)).(*entity.User)

	return user, ok && user != nil
}

// IdentityFromContext is the context.Context counterpart of GetIdentity.
func IdentityFromContext(ctx context.Context) (*entity.User, bool) {
	user, ok := ctx.Value(KeyIdentity).(*entity.User)

	return user, ok && user != nil
}

// SetTask stores the task loaded by the ownership check for the handler.
func SetTask(c echo.Context, task *entity.Task) {
	c.Set(string(KeyTask), task)
}

func GetTask(c echo.Context) (*entity.Task, bool) {
	task, ok := c.Get(string(KeyTask)).(*entity.Task)

	return task, ok && task != nil
}
