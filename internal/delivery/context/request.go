package context

import (
	"context"

	"github.com/labstack/echo/v4"
)

// RequestID returns the id assigned by the request id middleware. Outside
// that middleware it falls back to the request context, then to "".
func RequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestID).(string); ok && id != "" {
		return id
	}

	return RequestIDFrom(c.Request().Context())
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestID, requestID)
}

// RequestIDFrom returns the request id stored in ctx, or "".
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}
