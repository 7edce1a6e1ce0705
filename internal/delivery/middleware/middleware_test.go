package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"usermgmt/config"
	deliverycontext "usermgmt/internal/delivery/context"
	domainerrors "usermgmt/internal/domain/errors"
	"usermgmt/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	e := echo.New()
	mw := NewRequestIDMiddleware(slog.New(slog.DiscardHandler))

	var seen string
	var hasLogger bool
	e.GET("/", func(c echo.Context) error {
		seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		hasLogger = deliverycontext.GetLogger(c.Request().Context()) != nil

		return c.NoContent(http.StatusOK)
	}, mw.Process)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotEmpty(t, seen)
	assert.True(t, hasLogger)
	assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_ReusesClientID(t *testing.T) {
	e := echo.New()
	mw := NewRequestIDMiddleware(slog.New(slog.DiscardHandler))
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, mw.Process)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "client-id")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "client-id", rec.Header().Get(deliverycontext.HeaderXRequestID))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, strings.Repeat("x", maxRequestIDLength+1))
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Len(t, rec.Header().Get(deliverycontext.HeaderXRequestID), 36)
}

func TestLoggerMiddleware_LogsFailuresOutsideDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	mw := NewLoggerMiddleware(logger, &config.Config{})

	e := echo.New()
	e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, mw.Handle)
	e.GET("/missing", func(c echo.Context) error { return domainerrors.ErrTaskNotFound }, mw.Handle)

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Empty(t, buf.String())

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Contains(t, buf.String(), `"status":404`)
	assert.Contains(t, buf.String(), `"level":"WARN"`)
}

func TestLoggerMiddleware_DebugLogsEverythingButHealth(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = true
	mw := NewLoggerMiddleware(logger, cfg)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, mw.Handle)
	e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, mw.Handle)

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Empty(t, buf.String())

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok?x=1", nil))
	assert.Contains(t, buf.String(), `"route":"/ok"`)
	assert.Contains(t, buf.String(), `"query":"x=1"`)
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	m := metrics.New(&config.Config{})
	mw := NewMetricsMiddleware(m)

	e := echo.New()
	e.Use(mw.Handle)
	e.DELETE("/tasks/:id", func(c echo.Context) error { return domainerrors.ErrTaskOwnershipViolation })

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, "/tasks/abc", nil))
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, "/tasks/def", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues(http.MethodDelete, "/tasks/:id", "403")))
}

func TestStatusFromError(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, statusFromError(domainerrors.ErrUnauthenticated.WrapMessage("ctx")))
	assert.Equal(t, http.StatusServiceUnavailable, statusFromError(echo.NewHTTPError(http.StatusServiceUnavailable)))
	assert.Equal(t, http.StatusInternalServerError, statusFromError(assert.AnError))
}
