package middleware

import (
	"log/slog"
	"strings"
	"time"

	"usermgmt/config"
	deliverycontext "usermgmt/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes one access log line per request. Outside debug mode only
// failed requests are logged.
type LoggerMiddleware struct {
	logger    *slog.Logger
	debug     bool
	skipPaths []string
}

func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config) *LoggerMiddleware {
	skip := []string{"/health"}
	if cfg.Metrics != nil && cfg.Metrics.Enabled {
		skip = append(skip, cfg.Metrics.Path)
	}

	return &LoggerMiddleware{
		logger:    logger,
		debug:     cfg.Env.Debug,
		skipPaths: skip,
	}
}

// Handle runs the next handler and logs the outcome.
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		if !m.skipped(c.Request().URL.Path) {
			m.logRequest(c, start, err)
		}

		return err
	}
}

func (m *LoggerMiddleware) skipped(path string) bool {
	for _, p := range m.skipPaths {
		if strings.EqualFold(path, p) {
			return true
		}
	}

	return false
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	status := c.Response().Status
	// The central error handler has not written the response yet.
	if err != nil {
		status = statusFromError(err)
	}

	level := slog.LevelInfo
	switch {
	case status >= 500:
		level = slog.LevelError
	case status >= 400:
		level = slog.LevelWarn
	}

	if !m.debug && level == slog.LevelInfo {
		return
	}

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.String("route", c.Path()),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}

	if len(req.URL.RawQuery) > 0 {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}

	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).
		LogAttrs(req.Context(), level, "HTTP Request", fields...)
}
