package middleware

import (
	"net/http"
	"time"

	domainerrors "usermgmt/internal/domain/errors"
	"usermgmt/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MetricsMiddleware records request counts and latencies per route template.
type MetricsMiddleware struct {
	metrics *metrics.Metrics
}

func NewMetricsMiddleware(m *metrics.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m}
}

func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil {
			status = statusFromError(err)
		}

		// Unmatched requests share one label so arbitrary paths cannot explode cardinality.
		route := c.Path()
		if route == "" {
			route = "unmatched"
		}

		m.metrics.ObserveHTTPRequest(c.Request().Method, route, status, time.Since(start))

		return err
	}
}

// statusFromError predicts the status the central error handler will write for err.
func statusFromError(err error) int {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
