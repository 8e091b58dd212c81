package middleware

import (
	"log/slog"
	"strings"
	"time"

	deliverycontext "legalsite/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware logs one line per request
type LoggerMiddleware struct {
	logger *slog.Logger
	skip   []string
}

// NewLoggerMiddleware creates a new logger middleware. Requests whose path
// starts with one of skipPrefixes are not logged.
func NewLoggerMiddleware(logger *slog.Logger, skipPrefixes ...string) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		skip:   skipPrefixes,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.skipped(c.Request().URL.Path) {
			return next(c)
		}

		start := time.Now()
		err := next(c)
		m.logRequest(c, start, err)

		return err
	}
}

func (m *LoggerMiddleware) skipped(path string) bool {
	for _, prefix := range m.skip {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	return false
}

// logRequest logs request details
func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	status := res.Status
	if err != nil {
		if httpErr, ok := err.(*echo.HTTPError); ok {
			status = httpErr.Code
		}
	}

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("locale", deliverycontext.GetLocale(c).Lang()),
	}

	if len(req.URL.RawQuery) > 0 {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}

	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelInfo
	if status >= 400 {
		logLevel = slog.LevelWarn
	}
	if status >= 500 {
		logLevel = slog.LevelError
	}

	// Request-scoped logger already carries request_id
	deliverycontext.LoggerFrom(req.Context(), m.logger).
		LogAttrs(req.Context(), logLevel, "HTTP Request", fields...)
}
