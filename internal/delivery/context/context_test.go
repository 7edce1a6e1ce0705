package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"usermgmt/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEchoContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	return e.NewContext(req, httptest.NewRecorder())
}

func TestRequestID(t *testing.T) {
	c := newEchoContext()
	generated := GetRequestID(c)
	assert.NotEmpty(t, generated)

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))

	ctx := WithRequestID(context.Background(), "req-2")
	assert.Equal(t, "req-2", GetRequestIDFromContext(ctx))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.Default()
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))

	scoped := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestIdentity(t *testing.T) {
	c := newEchoContext()

	_, ok := GetIdentity(c)
	assert.False(t, ok)

	var buf bytes.Buffer
	ctx := WithLogger(c.Request().Context(), slog.New(slog.NewTextHandler(&buf, nil)))
	c.SetRequest(c.Request().WithContext(ctx))

	user := entity.NewUser("Jane Doe", "jane@example.com", "h")
	SetIdentity(c, user)

	got, ok := GetIdentity(c)
	require.True(t, ok)
	assert.Equal(t, user.ID, got.ID)

	fromCtx, ok := IdentityFromContext(c.Request().Context())
	require.True(t, ok)
	assert.Equal(t, user.ID, fromCtx.ID)

	GetLogger(c.Request().Context()).Info("scoped")
	assert.Contains(t, buf.String(), "user_id="+user.ID.String())
}

func TestTask(t *testing.T) {
	c := newEchoContext()

	_, ok := GetTask(c)
	assert.False(t, ok)

	task := entity.NewTask(entity.NewUser("a", "b", "c").ID, "title", "")
	SetTask(c, task)

	got, ok := GetTask(c)
	require.True(t, ok)
	assert.Equal(t, task.ID, got.ID)
}
