// Package middleware contains the site's echo middleware and error handler.
package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	deliverycontext "legalsite/internal/delivery/context"
	"legalsite/internal/delivery/http/response"
	"legalsite/internal/delivery/http/view"
	"legalsite/internal/domain/entity"
	domainerrors "legalsite/internal/domain/errors"
	"legalsite/internal/errors"
	"legalsite/internal/infra/fallback"
	"legalsite/internal/locale"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware renders errors as HTML pages or JSON envelopes
type ErrorMiddleware struct {
	logger *slog.Logger
	store  *fallback.Store
}

// NewErrorMiddleware creates a new error handling middleware. Error pages
// use the bundled service navigation so they render without the content service.
func NewErrorMiddleware(logger *slog.Logger, store *fallback.Store) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
		store:  store,
	}
}

type httpFailure struct {
	status  int
	code    string
	message string
	details any
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	logger := deliverycontext.LoggerFrom(c.Request().Context(), m.logger)

	if c.Response().Committed {
		logger.Warn("Error after response was committed", slog.Any("error", err))

		return
	}

	failure := classify(err)
	if failure.status >= http.StatusInternalServerError {
		logger.Error("Unhandled error",
			slog.Any("error", err),
			slog.String("path", c.Request().URL.Path),
			slog.String("method", c.Request().Method),
		)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(failure.status)

		return
	}

	if wantsJSON(c) {
		_ = response.Error(c, failure.status, failure.code, failure.message, failure.details)

		return
	}

	page := view.PageError
	if failure.status == http.StatusNotFound {
		page = view.PageNotFound
	}

	data := view.NewPage(requestLocale(c), c.Request().URL.RequestURI(), m.store.ServiceNav())
	data.Body = view.ErrorBody{Status: failure.status}

	if renderErr := c.Render(failure.status, page, data); renderErr != nil {
		logger.Error("Failed to render error page", slog.Any("error", renderErr))
		_ = c.String(failure.status, http.StatusText(failure.status))
	}
}

func classify(err error) httpFailure {
	if validationErr, ok := errors.AsType[*domainerrors.ValidationError](err); ok {
		return httpFailure{
			status:  validationErr.HTTPCode(),
			code:    validationErr.ErrorCode(),
			message: validationErr.Message(),
			details: validationErr.Fields(),
		}
	}

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		failure := httpFailure{
			status:  appErr.HTTPCode(),
			code:    appErr.ErrorCode(),
			message: appErr.Message(),
		}
		if failure.status == http.StatusNotFound {
			failure.code = domainerrors.ErrNotFound.ErrorCode()
		}

		return failure
	}

	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		failure := httpFailure{
			status:  httpErr.Code,
			code:    "HTTP_ERROR",
			message: http.StatusText(httpErr.Code),
		}
		if msg, ok := httpErr.Message.(string); ok {
			failure.message = msg
		}
		if httpErr.Code == http.StatusNotFound {
			failure.code = domainerrors.ErrNotFound.ErrorCode()
		}

		return failure
	}

	return httpFailure{
		status:  http.StatusInternalServerError,
		code:    domainerrors.ErrInternalError.ErrorCode(),
		message: "Internal server error, please try again later",
	}
}

func wantsJSON(c echo.Context) bool {
	if strings.HasPrefix(c.Request().URL.Path, "/api/") {
		return true
	}

	accept := c.Request().Header.Get(echo.HeaderAccept)

	return strings.Contains(accept, echo.MIMEApplicationJSON) && !strings.Contains(accept, echo.MIMETextHTML)
}

// requestLocale picks the error page language from the route, the first
// path segment or the Accept-Language header, in that order.
func requestLocale(c echo.Context) locale.Context {
	if lc, ok := deliverycontext.LookupLocale(c); ok {
		return lc
	}

	segment, _, _ := strings.Cut(strings.TrimPrefix(c.Request().URL.Path, "/"), "/")
	if lang := entity.Language(segment); lang.IsValid() {
		return locale.NewContext(lang)
	}

	return locale.NewContext(locale.Negotiate(c.Request().Header.Get("Accept-Language")))
}
