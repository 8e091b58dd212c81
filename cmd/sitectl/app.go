package main

import (
	"log/slog"
	"os"
	"strings"

	"legalsite/config"
	"legalsite/internal/infra/fallback"
	logs "legalsite/internal/infra/log"
	"legalsite/internal/infra/strapi"
	"legalsite/internal/usecase"
	"legalsite/internal/usecase/impl"

	"github.com/spf13/cobra"
)

// app builds the usecases a command needs from the persistent flags.
type app struct {
	contentURL string
	verbose    bool

	newSearch func(cmd *cobra.Command) (usecase.SearchUsecase, error)
}

func newApp() *app {
	a := &app{}
	a.newSearch = a.searchUsecase

	return a
}

// loadConfig reads the site config when one is found and falls back to
// defaults otherwise, so sitectl works outside the deployment tree.
func (a *app) loadConfig(logger *slog.Logger) *config.Config {
	cfg, err := config.New()
	if err != nil {
		logger.Debug("using default configuration", slog.Any("error", err))
		cfg = &config.Config{}
		cfg.ApplyDefaults()
	}
	if a.contentURL != "" {
		cfg.Content.BaseURL = strings.TrimRight(a.contentURL, "/")
	}

	return cfg
}

func (a *app) logger() *slog.Logger {
	if !a.verbose {
		return logs.Discard()
	}

	logger, err := logs.NewWithWriter(os.Stderr, config.Log{Pretty: true, Level: "debug"}, "sitectl")
	if err != nil {
		return logs.Discard()
	}

	return logger
}

func (a *app) searchUsecase(_ *cobra.Command) (usecase.SearchUsecase, error) {
	logger := a.logger()
	cfg := a.loadConfig(logger)
	client := strapi.NewClientFromConfig(cfg, logger)

	return impl.NewSearchService(strapi.NewSearchRepository(client), fallback.NewStore(), cfg, logger), nil
}
