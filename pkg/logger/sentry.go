package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
	// MinLevel determines which log levels reach Sentry (warn sends warnings and errors).
	MinLevel slog.Level
}

// NewWithSentry creates a logger that sends logs to both stdout and Sentry.
// If DSN is empty only stdout logging is enabled, so local runs need no setup.
// Context extractors are applied to logs sent to both destinations.
func NewWithSentry(cfg Config, extractors ...ContextExtractor) *slog.Logger {
	return newWithSentry(os.Stdout, cfg, extractors...)
}

func newWithSentry(w io.Writer, cfg Config, extractors ...ContextExtractor) *slog.Logger {
	stdout := jsonHandler(w, ParseLevel(cfg.Level))

	if cfg.Sentry.DSN == "" {
		return withService(slog.New(withContext(stdout, extractors...)), cfg.Service)
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.Sentry.DSN,
		Environment: cfg.Sentry.Environment,
		EnableLogs:  true,
	}); err != nil {
		slog.New(stdout).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return withService(slog.New(withContext(stdout, extractors...)), cfg.Service)
	}

	// Errors create issues; warnings are kept as searchable logs.
	// Skipped email deliveries are logged at warn, so they show up next to the errors.
	eventLevel := []slog.Level{slog.LevelError}
	logLevel := []slog.Level{slog.LevelWarn, slog.LevelError}
	if cfg.Sentry.MinLevel == slog.LevelError {
		logLevel = []slog.Level{slog.LevelError}
	}

	sentryHandler := sentryslog.Option{
		EventLevel: eventLevel,
		LogLevel:   logLevel,
	}.NewSentryHandler(context.Background())

	h := withContext(fanout{stdout, sentryHandler}, extractors...)
	return withService(slog.New(h), cfg.Service)
}
