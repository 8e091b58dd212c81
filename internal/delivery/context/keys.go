// Package context carries per-request values (request id, logger, locale)
// across echo and context.Context boundaries.
package context

type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
)

// Keys for values stored on echo.Context.
const (
	echoRequestID = "request_id"
	echoLocale    = "locale"
)

// HeaderXRequestID is the header the request id travels in, both inbound and
// toward the content service.
const HeaderXRequestID = "X-Request-Id"
