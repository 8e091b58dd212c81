package impl

import (
	"io"
	"log/slog"

	"legalsite/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func testConfig(join string) *config.Config {
	return &config.Config{
		Content: &config.ContentConfig{
			BaseURL:     "http://cms.test",
			SearchJoin:  join,
			MaxPageSize: 50,
		},
	}
}
