package handler

import (
	"log/slog"
	"net/http"
	"net/url"

	deliverycontext "legalsite/internal/delivery/context"
	"legalsite/internal/delivery/http/middleware"
	"legalsite/internal/delivery/http/response"
	"legalsite/internal/domain/entity"
	domainerrors "legalsite/internal/domain/errors"
	"legalsite/internal/errors"
	"legalsite/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SubscribeInput is the body of the subscribe API.
type SubscribeInput struct {
	Email  string `json:"email" form:"email" validate:"required"`
	Locale string `json:"locale" form:"locale" validate:"omitempty,oneof=en ar"`
}

// SubscriberHandlerParams holds dependencies for SubscriberHandler, injected by Fx.
type SubscriberHandlerParams struct {
	fx.In

	SubscriberUC usecase.SubscriberUsecase
	Limiter      *middleware.RateLimiter
	Logger       *slog.Logger
}

// SubscriberHandler handles newsletter signups from the footer form and the API.
type SubscriberHandler struct {
	uc      usecase.SubscriberUsecase
	limiter *middleware.RateLimiter
	logger  *slog.Logger
}

// NewSubscriberHandler is the constructor for SubscriberHandler
func NewSubscriberHandler(params SubscriberHandlerParams) *SubscriberHandler {
	limiter := params.Limiter
	if limiter == nil {
		limiter = middleware.NewRateLimiter(nil)
	}

	return &SubscriberHandler{
		uc:      params.SubscriberUC,
		limiter: limiter,
		logger:  params.Logger,
	}
}

// SubscribeForm handles the footer form post. The outcome is carried back to
// the originating page as query parameters, so a reload never resubmits.
func (h *SubscriberHandler) SubscribeForm(c echo.Context) error {
	lc := deliverycontext.GetLocale(c)

	target := c.FormValue("redirect")
	if !isLocalPath(target) {
		target = "/" + lc.Lang()
	}

	email := c.FormValue("email")

	if !h.limiter.Allow(c) {
		return c.Redirect(http.StatusSeeOther, withFormState(target, email, "limited"))
	}

	if _, err := h.uc.Subscribe(c.Request().Context(), email, lc.Language); err != nil {
		key := subscribeErrorKey(err)
		deliverycontext.LoggerFrom(c.Request().Context(), h.logger).Info("newsletter signup rejected",
			slog.String("reason", key),
			slog.Any("error", err),
		)

		return c.Redirect(http.StatusSeeOther, withFormState(target, email, key))
	}

	return c.Redirect(http.StatusSeeOther, withFormState(target, "", ""))
}

// SubscribeAPI handles POST /api/subscribers.
func (h *SubscriberHandler) SubscribeAPI(c echo.Context) error {
	var input SubscribeInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid subscribe input")
	}
	if err := c.Validate(&input); err != nil {
		return response.AppError(c, err)
	}

	lang := entity.LanguageEnglish
	if input.Locale != "" {
		lang = entity.Language(input.Locale)
	}

	subscriber, err := h.uc.Subscribe(c.Request().Context(), input.Email, lang)
	if err != nil {
		return response.AppError(c, err)
	}

	return response.Success(c, http.StatusCreated, subscriber)
}

// subscribeErrorKey maps a signup failure onto its footer message key.
func subscribeErrorKey(err error) string {
	switch {
	case errors.Is(err, domainerrors.ErrValidationFailed):
		return "invalid"
	case errors.Is(err, domainerrors.ErrAlreadySubscribed):
		return "exists"
	case errors.Is(err, domainerrors.ErrRateLimited):
		return "limited"
	default:
		return "unavailable"
	}
}

// withFormState appends the signup outcome to a local path. An empty errKey means success.
func withFormState(target, email, errKey string) string {
	u, err := url.Parse(target)
	if err != nil {
		u = &url.URL{Path: "/"}
	}

	query := u.Query()
	query.Del(paramSubscribed)
	query.Del(paramSubscribeError)
	query.Del(paramSubscribeEmail)
	if errKey == "" {
		query.Set(paramSubscribed, "1")
	} else {
		query.Set(paramSubscribeError, errKey)
		if email != "" {
			query.Set(paramSubscribeEmail, email)
		}
	}
	u.RawQuery = query.Encode()
	u.Fragment = "subscribe"

	return u.String()
}
