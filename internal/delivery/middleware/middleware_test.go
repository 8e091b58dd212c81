package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "legalsite/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantKeep bool
	}{
		{"reuses client id", "abc-123", true},
		{"generates when missing", "", false},
		{"rejects unsafe id", "bad id\n", false},
		{"rejects overlong id", strings.Repeat("a", 200), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var ctxID string
			handler := NewRequestIDMiddleware(slog.Default()).Process(func(c echo.Context) error {
				ctxID = deliverycontext.RequestIDFrom(c.Request().Context())
				assert.NotSame(t, slog.Default(), deliverycontext.LoggerFrom(c.Request().Context(), nil))

				return c.NoContent(http.StatusNoContent)
			})
			require.NoError(t, handler(c))

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEmpty(t, got)
			assert.Equal(t, got, ctxID)
			assert.Equal(t, got, deliverycontext.RequestID(c))
			if tt.wantKeep {
				assert.Equal(t, tt.header, got)
			} else {
				assert.NotEqual(t, tt.header, got)
			}
		})
	}
}

func TestLoggerMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	mw := NewLoggerMiddleware(logger, "/static")

	e := echo.New()
	ok := func(c echo.Context) error { return c.String(http.StatusOK, "ok") }

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/en/search?q=law", nil), rec)
	require.NoError(t, mw.Handle(ok)(c))
	assert.Contains(t, buf.String(), `"uri":"/en/search"`)
	assert.Contains(t, buf.String(), `"query":"q=law"`)
	assert.Contains(t, buf.String(), `"status":200`)

	buf.Reset()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/static/site.css", nil), httptest.NewRecorder())
	require.NoError(t, mw.Handle(ok)(c))
	assert.Empty(t, buf.String())

	buf.Reset()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/missing", nil), httptest.NewRecorder())
	err := mw.Handle(func(echo.Context) error { return echo.ErrNotFound })(c)
	require.Error(t, err)
	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), `"status":404`)
}
