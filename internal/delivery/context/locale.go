package context

import (
	"legalsite/internal/locale"

	"github.com/labstack/echo/v4"
)

// SetLocale stores the locale resolved from the route.
func SetLocale(c echo.Context, lc locale.Context) {
	c.Set(echoLocale, lc)
}

// LookupLocale returns the locale resolved from the route, if any.
func LookupLocale(c echo.Context) (locale.Context, bool) {
	lc, ok := c.Get(echoLocale).(locale.Context)

	return lc, ok
}

// GetLocale returns the locale resolved from the route, or the default
// locale when no locale middleware ran.
func GetLocale(c echo.Context) locale.Context {
	if lc, ok := LookupLocale(c); ok {
		return lc
	}

	return locale.Default()
}
