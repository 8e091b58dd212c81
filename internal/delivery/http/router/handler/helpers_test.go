package handler

import (
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "legalsite/internal/delivery/context"
	"legalsite/internal/delivery/http/validator"
	"legalsite/internal/delivery/http/view"
	"legalsite/internal/domain/entity"
	"legalsite/internal/infra/fallback"
	logs "legalsite/internal/infra/log"
	"legalsite/internal/infra/richtext"
	"legalsite/internal/locale"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	renderer, err := view.NewRenderer(richtext.NewRenderer(), "/placeholder.svg", logs.Discard())
	require.NoError(t, err)

	e := echo.New()
	e.Renderer = renderer
	e.Validator = validator.New()

	return e
}

// newLocaleContext builds a context as if the locale middleware had run for lang.
func newLocaleContext(e *echo.Echo, method, target, body string, lang entity.Language) (echo.Context, *httptest.ResponseRecorder) {
	var req = httptest.NewRequest(method, target, nil)
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	deliverycontext.SetLocale(c, locale.NewContext(lang))

	return c, rec
}

//nolint:gochecknoglobals
var store = fallback.NewStore()
