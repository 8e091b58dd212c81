// Package http serves the site pages and its JSON API.
package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"legalsite/config"
	"legalsite/internal/delivery"
	sitemiddleware "legalsite/internal/delivery/http/middleware"
	"legalsite/internal/delivery/http/router"
	"legalsite/internal/delivery/http/validator"
	"legalsite/internal/delivery/http/view"
	"legalsite/internal/delivery/middleware"
	"legalsite/internal/domain/lifecycle"
	"legalsite/internal/errors"
	"legalsite/internal/infra/fallback"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	Renderer     *view.Renderer
	Store        *fallback.Store
	RouterParams router.RouterParams
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	echoServer := NewEcho(params)

	srv := &httpServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: echoServer,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// NewEcho builds the configured echo instance with every route registered.
func NewEcho(params ServerParams) *echo.Echo {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HidePort = true
	echoServer.Server.ReadTimeout = params.Cfg.HTTP.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = params.Cfg.HTTP.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = params.Cfg.HTTP.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = params.Cfg.HTTP.Timeouts.IdleTimeout

	// 1. Recover middleware first (to catch panics early)
	echoServer.Use(echomiddleware.Recover())

	// 2. Request ID middleware (must be before logger to include in logs)
	requestIDMiddleware := middleware.NewRequestIDMiddleware(params.Logger)
	echoServer.Use(requestIDMiddleware.Process)

	// 3. Logger middleware, quiet for assets and health checks
	loggerMiddleware := middleware.NewLoggerMiddleware(params.Logger, "/static", "/health")
	echoServer.Use(loggerMiddleware.Handle)

	// 4. Request body size limit
	echoServer.Use(echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize))

	// Assets on disk override the bundled ones
	if params.Cfg.Site != nil && params.Cfg.Site.StaticDir != "" {
		onlyGET := func(c echo.Context) bool {
			return c.Request().Method != http.MethodGet
		}
		echoServer.Use(echomiddleware.StaticWithConfig(echomiddleware.StaticConfig{
			Root:    params.Cfg.Site.StaticDir,
			Skipper: onlyGET,
		}))
	}

	errorMiddleware := sitemiddleware.NewErrorMiddleware(params.Logger, params.Store)
	echoServer.HTTPErrorHandler = errorMiddleware.HandleHTTPError

	echoServer.Validator = validator.New()
	echoServer.Renderer = params.Renderer

	r := router.NewRouter(params.RouterParams)
	r.RegisterRoutes(echoServer)

	return echoServer
}

func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting site HTTP server", slog.String("host_port", hostPort))
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down site HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
