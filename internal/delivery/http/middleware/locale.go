package middleware

import (
	"strings"

	deliverycontext "legalsite/internal/delivery/context"
	domainerrors "legalsite/internal/domain/errors"
	"legalsite/internal/errors"
	"legalsite/internal/locale"

	"github.com/labstack/echo/v4"
)

// LocaleParam is the route parameter holding the locale segment.
const LocaleParam = "locale"

// Locale resolves the :locale route segment. Only the exact lower-case codes
// are served; anything else fails with ErrUnknownLocale, which renders as
// not found.
func Locale(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		code := c.Param(LocaleParam)
		if code != strings.ToLower(strings.TrimSpace(code)) {
			return errors.WithStack(domainerrors.ErrUnknownLocale.WithDetails(code))
		}

		lc, err := locale.Parse(code)
		if err != nil {
			return errors.WithStack(err)
		}

		deliverycontext.SetLocale(c, lc)

		return next(c)
	}
}
