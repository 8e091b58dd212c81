// Package handler contains the echo handlers of the site.
package handler

import (
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"legalsite/config"
	deliverycontext "legalsite/internal/delivery/context"
	"legalsite/internal/delivery/http/view"
	"legalsite/internal/domain/entity"
	"legalsite/internal/locale"
	"legalsite/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Query parameters the subscribe form redirect adds to the page URL.
const (
	paramSubscribed     = "subscribed"
	paramSubscribeError = "subscribe_error"
	paramSubscribeEmail = "email"
)

// PageHandlerParams holds dependencies for PageHandler, injected by Fx.
type PageHandlerParams struct {
	fx.In

	ContentUC usecase.ContentUsecase
	SearchUC  usecase.SearchUsecase
	ContactUC usecase.ContactUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// PageHandler renders the locale-prefixed HTML pages
type PageHandler struct {
	contentUC     usecase.ContentUsecase
	searchUC      usecase.SearchUsecase
	contactUC     usecase.ContactUsecase
	defaultLocale entity.Language
	logger        *slog.Logger
}

// NewPageHandler is the constructor for PageHandler
func NewPageHandler(params PageHandlerParams) *PageHandler {
	defaultLocale := entity.LanguageEnglish
	if params.Config != nil && params.Config.Site != nil {
		if lang, err := entity.ParseLanguage(params.Config.Site.DefaultLocale); err == nil {
			defaultLocale = lang
		}
	}

	return &PageHandler{
		contentUC:     params.ContentUC,
		searchUC:      params.SearchUC,
		contactUC:     params.ContactUC,
		defaultLocale: defaultLocale,
		logger:        params.Logger,
	}
}

// Root redirects to the best matching locale. Without an Accept-Language
// header the configured default locale is used.
func (h *PageHandler) Root(c echo.Context) error {
	lang := h.defaultLocale
	if accept := c.Request().Header.Get("Accept-Language"); accept != "" {
		lang = locale.Negotiate(accept)
	}

	return c.Redirect(http.StatusFound, "/"+lang.String())
}

// Home renders the home page
func (h *PageHandler) Home(c echo.Context) error {
	home := h.contentUC.HomePage(c.Request().Context())

	body := view.HomeBody{
		Hero:         home.Hero.Data,
		Services:     home.Services.Data,
		Team:         h.teamCards(home.Team.Data),
		Testimonials: home.Testimonials.Data,
	}

	return c.Render(http.StatusOK, view.PageHome, h.page(c, "", home.IsDegraded(), body))
}

// Service renders one service. Unknown slugs render the not-found page.
func (h *PageHandler) Service(c echo.Context) error {
	result, err := h.contentUC.ServiceDetail(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}

	lc := deliverycontext.GetLocale(c)
	title := result.Data.Title.Get(lc.Language)

	return c.Render(http.StatusOK, view.PageService, h.page(c, title, result.IsDegraded(), view.ServiceBody{Service: result.Data}))
}

// Search renders the search page for ?q=
func (h *PageHandler) Search(c echo.Context) error {
	lc := deliverycontext.GetLocale(c)
	outcome := h.searchUC.Search(c.Request().Context(), c.QueryParam("q"), lc.Language)

	body := view.SearchBody{
		Outcome: outcome,
		Team:    h.teamCards(outcome.Results.Team),
	}
	title := view.Translate(lc.Language, "search.title")

	return c.Render(http.StatusOK, view.PageSearch, h.page(c, title, outcome.State == entity.SearchDegraded, body))
}

// Blog renders one page of posts for ?page=
func (h *PageHandler) Blog(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	result := h.contentUC.BlogPage(c.Request().Context(), page, 0)

	lc := deliverycontext.GetLocale(c)
	title := view.Translate(lc.Language, "blog.title")

	return c.Render(http.StatusOK, view.PageBlog, h.page(c, title, result.IsDegraded(), view.BlogBody{Page: result.Data}))
}

// BlogPost renders one post
func (h *PageHandler) BlogPost(c echo.Context) error {
	result, err := h.contentUC.BlogPost(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}

	lc := deliverycontext.GetLocale(c)
	title := result.Data.Title.Get(lc.Language)

	return c.Render(http.StatusOK, view.PageBlogPost, h.page(c, title, result.IsDegraded(), view.BlogPostBody{Post: result.Data}))
}

// Toggle redirects ?path= to the same page in the other language
func (h *PageHandler) Toggle(c echo.Context) error {
	lc := deliverycontext.GetLocale(c)

	path := c.QueryParam("path")
	if !isLocalPath(path) {
		path = "/" + lc.Lang()
	}

	return c.Redirect(http.StatusFound, locale.SwitchPath(path, lc.Language.Other()))
}

func (h *PageHandler) page(c echo.Context, title string, degraded bool, body any) view.Page {
	lc := deliverycontext.GetLocale(c)
	nav := h.contentUC.ServiceNav(c.Request().Context())

	p := view.NewPage(lc, pageURI(c.Request().URL), nav.Data)
	p.Title = title
	p.Query = strings.TrimSpace(c.QueryParam("q"))
	p.Subscribe = subscribeForm(c, lc)
	p.Degraded = degraded || nav.IsDegraded()
	p.Body = body

	return p
}

func (h *PageHandler) teamCards(members []entity.TeamMember) []view.TeamCard {
	cards := make([]view.TeamCard, 0, len(members))
	for _, m := range members {
		cards = append(cards, view.TeamCard{
			Member:   m,
			WhatsApp: template.URL(h.contactUC.ContactLink(m, entity.ContactWhatsApp)), //nolint:gosec
			Tel:      template.URL(h.contactUC.ContactLink(m, entity.ContactPhone)),    //nolint:gosec
			Mailto:   template.URL(h.contactUC.ContactLink(m, entity.ContactEmail)),    //nolint:gosec
		})
	}

	return cards
}

// subscribeForm restores the footer form state carried by the subscribe redirect.
func subscribeForm(c echo.Context, lc locale.Context) view.SubscribeForm {
	form := view.SubscribeForm{
		Email:   c.QueryParam(paramSubscribeEmail),
		Success: c.QueryParam(paramSubscribed) == "1",
	}
	if key := c.QueryParam(paramSubscribeError); key != "" {
		form.Error = view.Translate(lc.Language, "subscribe."+key)
	}

	return form
}

// pageURI returns the request path and query without the subscribe form state.
func pageURI(u *url.URL) string {
	query := u.Query()
	query.Del(paramSubscribed)
	query.Del(paramSubscribeError)
	query.Del(paramSubscribeEmail)

	if encoded := query.Encode(); encoded != "" {
		return u.Path + "?" + encoded
	}

	return u.Path
}

// isLocalPath accepts site-relative paths only.
func isLocalPath(path string) bool {
	return strings.HasPrefix(path, "/") && !strings.HasPrefix(path, "//") && !strings.Contains(path, "\\")
}
