package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"legalsite/internal/domain/entity"
	domainerrors "legalsite/internal/domain/errors"
	"legalsite/internal/errors"
	"legalsite/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ContactHandlerParams holds dependencies for ContactHandler, injected by Fx.
type ContactHandlerParams struct {
	fx.In

	ContactUC usecase.ContactUsecase
	Logger    *slog.Logger
}

// ContactHandler serves contact QR codes for team members.
type ContactHandler struct {
	uc     usecase.ContactUsecase
	logger *slog.Logger
}

// NewContactHandler is the constructor for ContactHandler
func NewContactHandler(params ContactHandlerParams) *ContactHandler {
	return &ContactHandler{
		uc:     params.ContactUC,
		logger: params.Logger,
	}
}

// QRCode handles GET /:locale/team/:id/contact/:file where file is
// "<channel>.png".
func (h *ContactHandler) QRCode(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrTeamMemberNotFound.WithDetails(c.Param("id")))
	}

	file := c.Param("file")
	if !strings.HasSuffix(file, ".png") {
		return errors.WithStack(domainerrors.ErrNotFound.WithDetails(file))
	}
	channel := entity.ContactChannel(strings.TrimSuffix(file, ".png"))

	png, err := h.uc.ContactQR(c.Request().Context(), id, channel)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=3600")

	return c.Blob(http.StatusOK, "image/png", png)
}
