package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "legalsite/internal/delivery/context"
	"legalsite/internal/domain/entity"
	domainerrors "legalsite/internal/domain/errors"
	"legalsite/internal/errors"
	"legalsite/internal/locale"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-1")

	return c, rec
}

func TestSuccess(t *testing.T) {
	c, rec := newContext()
	deliverycontext.SetLocale(c, locale.NewContext(entity.LanguageArabic))

	require.NoError(t, Success(c, http.StatusCreated, map[string]string{"email": "a@b.co"}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"email":"a@b.co"},"meta":{"request_id":"req-1","locale":"ar"}}`, rec.Body.String())
}

func TestError_HidesDetailsOn5xx(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Error(c, http.StatusServiceUnavailable, "CONTENT_UNAVAILABLE", "down", "cms timeout"))

	var body ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "CONTENT_UNAVAILABLE", body.Error.Code)
	assert.Nil(t, body.Error.Details)
	assert.Equal(t, "req-1", body.Meta.RequestID)
	assert.Empty(t, body.Meta.Locale)
}

func TestAppError(t *testing.T) {
	t.Run("validation fields become details", func(t *testing.T) {
		c, rec := newContext()

		err := AppError(c, domainerrors.NewValidationError(map[string]string{"email": "required"}))
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":{"code":"VALIDATION_FAILED","message":"input validation failed","details":{"email":"required"}},"meta":{"request_id":"req-1"}}`, rec.Body.String())
	})

	t.Run("app error", func(t *testing.T) {
		c, rec := newContext()

		require.NoError(t, AppError(c, errors.Wrap(domainerrors.ErrAlreadySubscribed, "subscribe")))
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), `"ALREADY_SUBSCRIBED"`)
	})

	t.Run("plain error is returned", func(t *testing.T) {
		c, rec := newContext()

		boom := errors.New("boom")
		err := AppError(c, boom)
		require.Error(t, err)
		assert.True(t, errors.Is(err, boom))
		assert.Zero(t, rec.Body.Len())
	})
}
