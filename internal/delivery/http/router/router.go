// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"legalsite/internal/delivery/http/middleware"
	"legalsite/internal/delivery/http/router/handler"
	"legalsite/internal/delivery/http/view"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PageHandler       *handler.PageHandler
	SearchHandler     *handler.SearchHandler
	SubscriberHandler *handler.SubscriberHandler
	ContactHandler    *handler.ContactHandler
	RateLimiter       *middleware.RateLimiter
}

// router holds all the handlers that need to be registered.
type router struct {
	pageHandler       *handler.PageHandler
	searchHandler     *handler.SearchHandler
	subscriberHandler *handler.SubscriberHandler
	contactHandler    *handler.ContactHandler
	rateLimiter       *middleware.RateLimiter
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		pageHandler:       params.PageHandler,
		searchHandler:     params.SearchHandler,
		subscriberHandler: params.SubscriberHandler,
		contactHandler:    params.ContactHandler,
		rateLimiter:       params.RateLimiter,
	}
}

// RegisterRoutes sets up all the site routes.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Pre(echomiddleware.RemoveTrailingSlash())

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Bundled assets referenced by fallback content
	e.FileFS("/placeholder.svg", "placeholder.svg", view.Static())
	e.FileFS("/man.png", "man.png", view.Static())
	e.StaticFS("/static", view.Static())

	e.GET("/", r.pageHandler.Root)

	// JSON API
	api := e.Group("/api")
	api.Use(echomiddleware.CORS())
	{
		api.GET("/search", r.searchHandler.Search)
		api.POST("/subscribers", r.subscriberHandler.SubscribeAPI, r.rateLimiter.Limit)
	}

	// Pages, always under a locale segment
	site := e.Group("/:"+middleware.LocaleParam, middleware.Locale)
	{
		site.GET("", r.pageHandler.Home)
		site.GET("/services/:slug", r.pageHandler.Service)
		site.GET("/search", r.pageHandler.Search)
		site.GET("/blog", r.pageHandler.Blog)
		site.GET("/blog/:slug", r.pageHandler.BlogPost)
		site.GET("/toggle", r.pageHandler.Toggle)
		site.POST("/subscribe", r.subscriberHandler.SubscribeForm)
		site.GET("/team/:id/contact/:file", r.contactHandler.QRCode)
	}
}
