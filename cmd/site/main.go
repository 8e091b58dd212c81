package main

import (
	"context"
	"log/slog"
	"os"

	"legalsite/config"
	"legalsite/internal/delivery"
	"legalsite/internal/delivery/http"
	"legalsite/internal/delivery/http/middleware"
	"legalsite/internal/delivery/http/router/handler"
	"legalsite/internal/delivery/http/view"
	"legalsite/internal/domain/service"
	"legalsite/internal/infra/contact"
	"legalsite/internal/infra/fallback"
	logs "legalsite/internal/infra/log"
	"legalsite/internal/infra/pubsub"
	"legalsite/internal/infra/qrcode"
	"legalsite/internal/infra/richtext"
	"legalsite/internal/infra/strapi"
	"legalsite/internal/usecase/impl"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		fallback.NewStore,
	)
}

func injectRepo() fx.Option {
	return strapi.Module
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			contact.NewPhoneNormalizerFromConfig,
			richtext.NewRenderer,
			newQRCodeService,
		),
	)
}

func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewContentService,
			impl.NewSearchService,
			impl.NewSubscriberService,
			impl.NewContactService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewRateLimiter,
			newRenderer,
		),
	)
}

// newRenderer parses the page templates once at startup
func newRenderer(rich service.RichTextRenderer, cfg *config.Config, logger *slog.Logger) (*view.Renderer, error) {
	return view.NewRenderer(rich, cfg.Site.PlaceholderPath, logger)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPageHandler,
			handler.NewSearchHandler,
			handler.NewSubscriberHandler,
			handler.NewContactHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
