package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"legalsite/config"
	"legalsite/internal/delivery/http/middleware"
	"legalsite/internal/domain/entity"
	domainerrors "legalsite/internal/domain/errors"
	"legalsite/internal/errors"
	logs "legalsite/internal/infra/log"
	mockusecase "legalsite/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestSubscriberHandler(t *testing.T, limiter *middleware.RateLimiter) (*SubscriberHandler, *mockusecase.MockSubscriberUsecase) {
	t.Helper()

	uc := mockusecase.NewMockSubscriberUsecase(t)

	return NewSubscriberHandler(SubscriberHandlerParams{
		SubscriberUC: uc,
		Limiter:      limiter,
		Logger:       logs.Discard(),
	}), uc
}

func postForm(e *echo.Echo, target string, form url.Values, lang entity.Language) (echo.Context, *httptest.ResponseRecorder) {
	c, rec := newLocaleContext(e, http.MethodPost, target, form.Encode(), lang)
	c.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)

	return c, rec
}

func TestSubscriberHandler_SubscribeForm(t *testing.T) {
	e := newTestEcho(t)

	tests := []struct {
		name     string
		redirect string
		err      error
		want     string
	}{
		{
			name:     "success returns to the page",
			redirect: "/ar/services/employment-law",
			want:     "/ar/services/employment-law?subscribed=1#subscribe",
		},
		{
			name:     "validation failure keeps the email",
			redirect: "/ar",
			err:      errors.WithStack(domainerrors.NewValidationError(map[string]string{"email": "must be a valid email address"})),
			want:     "/ar?email=reader%40example.com&subscribe_error=invalid#subscribe",
		},
		{
			name:     "duplicate",
			redirect: "/ar/blog?page=2",
			err:      errors.WithStack(domainerrors.ErrAlreadySubscribed),
			want:     "/ar/blog?email=reader%40example.com&page=2&subscribe_error=exists#subscribe",
		},
		{
			name:     "content service down",
			redirect: "/ar",
			err:      domainerrors.NewRemoteError(errors.New("dial tcp"), "POST /api/subscribers"),
			want:     "/ar?email=reader%40example.com&subscribe_error=unavailable#subscribe",
		},
		{
			name:     "foreign redirect falls back to home",
			redirect: "https://evil.example/",
			want:     "/ar?subscribed=1#subscribe",
		},
		{
			name:     "previous outcome is replaced",
			redirect: "/ar?subscribe_error=invalid&email=old%40example.com",
			want:     "/ar?subscribed=1#subscribe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, uc := newTestSubscriberHandler(t, nil)
			uc.EXPECT().Subscribe(mock.Anything, "reader@example.com", entity.LanguageArabic).
				Return(&entity.Subscriber{Email: "reader@example.com"}, tt.err).Once()

			form := url.Values{"email": {"reader@example.com"}, "redirect": {tt.redirect}}
			c, rec := postForm(e, "/ar/subscribe", form, entity.LanguageArabic)

			require.NoError(t, h.SubscribeForm(c))
			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, tt.want, rec.Header().Get("Location"))
		})
	}
}

func TestSubscriberHandler_SubscribeForm_RateLimited(t *testing.T) {
	e := newTestEcho(t)
	limiter := middleware.NewRateLimiter(&config.Config{
		RateLimit: &config.RateLimitConfig{Requests: 1, Interval: time.Hour},
	})
	h, uc := newTestSubscriberHandler(t, limiter)
	uc.EXPECT().Subscribe(mock.Anything, "reader@example.com", entity.LanguageEnglish).
		Return(&entity.Subscriber{Email: "reader@example.com"}, nil).Once()

	form := url.Values{"email": {"reader@example.com"}, "redirect": {"/en"}}

	c, rec := postForm(e, "/en/subscribe", form, entity.LanguageEnglish)
	require.NoError(t, h.SubscribeForm(c))
	assert.Equal(t, "/en?subscribed=1#subscribe", rec.Header().Get("Location"))

	c, rec = postForm(e, "/en/subscribe", form, entity.LanguageEnglish)
	require.NoError(t, h.SubscribeForm(c))
	assert.Equal(t, "/en?email=reader%40example.com&subscribe_error=limited#subscribe", rec.Header().Get("Location"))
}

func TestSubscriberHandler_SubscribeAPI(t *testing.T) {
	e := newTestEcho(t)

	t.Run("created", func(t *testing.T) {
		h, uc := newTestSubscriberHandler(t, nil)
		at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
		uc.EXPECT().Subscribe(mock.Anything, "reader@example.com", entity.LanguageArabic).
			Return(&entity.Subscriber{ID: 9, Email: "reader@example.com", SubscribedAt: at}, nil)

		c, rec := newLocaleContext(e, http.MethodPost, "/api/subscribers", `{"email":"reader@example.com","locale":"ar"}`, entity.LanguageEnglish)
		c.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

		require.NoError(t, h.SubscribeAPI(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var body struct {
			Data entity.Subscriber `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "reader@example.com", body.Data.Email)
		assert.True(t, at.Equal(body.Data.SubscribedAt))
	})

	t.Run("already subscribed", func(t *testing.T) {
		h, uc := newTestSubscriberHandler(t, nil)
		uc.EXPECT().Subscribe(mock.Anything, "reader@example.com", entity.LanguageEnglish).
			Return(nil, errors.WithStack(domainerrors.ErrAlreadySubscribed))

		c, rec := newLocaleContext(e, http.MethodPost, "/api/subscribers", `{"email":"reader@example.com"}`, entity.LanguageEnglish)
		c.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

		require.NoError(t, h.SubscribeAPI(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":"ALREADY_SUBSCRIBED"`)
	})

	t.Run("missing email", func(t *testing.T) {
		h, _ := newTestSubscriberHandler(t, nil)

		c, rec := newLocaleContext(e, http.MethodPost, "/api/subscribers", `{"locale":"ar"}`, entity.LanguageEnglish)
		c.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

		require.NoError(t, h.SubscribeAPI(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"email":"is required"`)
	})

	t.Run("unsupported locale", func(t *testing.T) {
		h, _ := newTestSubscriberHandler(t, nil)

		c, rec := newLocaleContext(e, http.MethodPost, "/api/subscribers", `{"email":"a@b.co","locale":"fr"}`, entity.LanguageEnglish)
		c.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

		require.NoError(t, h.SubscribeAPI(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "must be one of: en ar")
	})
}

func TestSubscribeErrorKey(t *testing.T) {
	assert.Equal(t, "limited", subscribeErrorKey(errors.WithStack(domainerrors.ErrRateLimited)))
	assert.Equal(t, "unavailable", subscribeErrorKey(errors.New("boom")))
}
