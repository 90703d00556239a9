// Package logger builds the service's structured loggers.
//
// Loggers are log/slog JSON loggers whose records are enriched by context
// extractors, functions that pull request-scoped values such as the request
// ID out of the context on every call:
//
//	log := logger.New(middlewares.RequestIDExtractor())
//	log.InfoContext(ctx, "contact request received", slog.String("email", email))
//	// {"level":"INFO","msg":"contact request received","email":"...","request_id":"01J..."}
//
// NewWithSentry additionally forwards warnings and errors to Sentry when
// SENTRY_DSN is set and falls back to stdout-only logging otherwise:
//
//	var cfg logger.Config
//	_ = env.Parse(&cfg)
//	log := logger.NewWithSentry(cfg, middlewares.RequestIDExtractor())
//
// NewNope returns a logger that discards everything. Packages use it as the
// default when no logger is injected.
package logger
