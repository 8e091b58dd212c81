package handler

import (
	"log/slog"
	"net/http"

	"legalsite/internal/delivery/http/response"
	"legalsite/internal/domain/entity"
	"legalsite/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SearchQuery is the query string of the search API.
type SearchQuery struct {
	Query  string `query:"q"`
	Locale string `query:"locale" validate:"omitempty,oneof=en ar"`
}

// SearchHandlerParams holds dependencies for SearchHandler, injected by Fx.
type SearchHandlerParams struct {
	fx.In

	SearchUC usecase.SearchUsecase
	Logger   *slog.Logger
}

// SearchHandler serves search results as JSON.
type SearchHandler struct {
	uc     usecase.SearchUsecase
	logger *slog.Logger
}

// NewSearchHandler is the constructor for SearchHandler
func NewSearchHandler(params SearchHandlerParams) *SearchHandler {
	return &SearchHandler{
		uc:     params.SearchUC,
		logger: params.Logger,
	}
}

// Search handles GET /api/search?q=&locale=. A degraded outcome is still a 200.
func (h *SearchHandler) Search(c echo.Context) error {
	var input SearchQuery
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid search query")
	}
	if err := c.Validate(&input); err != nil {
		return response.AppError(c, err)
	}

	lang := entity.LanguageEnglish
	if input.Locale != "" {
		lang = entity.Language(input.Locale)
	}

	outcome := h.uc.Search(c.Request().Context(), input.Query, lang)

	return response.Success(c, http.StatusOK, outcome)
}
