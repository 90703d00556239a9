package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config holds logger settings parsed from the environment.
type Config struct {
	// Level is one of debug, info, warn, error. Unknown values fall back to info.
	Level string `env:"LOG_LEVEL" envDefault:"info"`
	// Service is attached to every record as "service".
	Service string `env:"SERVICE_NAME" envDefault:"techtonic-site"`
	Sentry  SentryConfig
}

// ParseLevel maps a level name to slog.Level.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New creates a JSON-formatted logger on stdout with optional context extractors.
func New(extractors ...ContextExtractor) *slog.Logger {
	return NewWithWriter(os.Stdout, slog.LevelInfo, extractors...)
}

// NewWithWriter creates a JSON-formatted logger writing to w at the given level.
func NewWithWriter(w io.Writer, level slog.Level, extractors ...ContextExtractor) *slog.Logger {
	return slog.New(withContext(jsonHandler(w, level), extractors...))
}

// NewNope returns a logger that drops every record.
// Packages fall back to it when no logger is injected.
func NewNope() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func jsonHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
}

// withService tags l with the service name, if any.
func withService(l *slog.Logger, service string) *slog.Logger {
	if service == "" {
		return l
	}
	return l.With(slog.String("service", service))
}
