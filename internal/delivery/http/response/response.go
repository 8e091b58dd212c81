// Package response writes the JSON envelopes of the site API.
package response

import (
	"net/http"

	deliverycontext "legalsite/internal/delivery/context"
	domainerrors "legalsite/internal/domain/errors"
	"legalsite/internal/errors"

	"github.com/labstack/echo/v4"
)

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, DataEnvelope{
		Data: data,
		Meta: meta(c),
	})
}

// Error returns an error response. Details are dropped for 5xx errors.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if statusCode >= http.StatusInternalServerError {
		details = nil
	}

	return c.JSON(statusCode, ErrorEnvelope{
		Error: &ErrorBody{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: meta(c),
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// AppError writes err as its AppError envelope. Validation errors carry their
// per-field messages as details. Anything else is returned for the central
// error handler.
func AppError(c echo.Context, err error) error {
	if validationErr, ok := errors.AsType[*domainerrors.ValidationError](err); ok {
		return Error(c, validationErr.HTTPCode(), validationErr.ErrorCode(), validationErr.Message(), validationErr.Fields())
	}

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		var details any
		if d := appErr.Details(); d != "" {
			details = d
		}

		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
	}

	return errors.WithStack(err)
}

func meta(c echo.Context) *Meta {
	m := &Meta{RequestID: deliverycontext.RequestID(c)}
	if lc, ok := deliverycontext.LookupLocale(c); ok {
		m.Locale = lc.Lang()
	}

	return m
}
