package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"

	"github.com/techtonic/site"
	"github.com/techtonic/site/middlewares"
	"github.com/techtonic/site/pkg/colophon"
	"github.com/techtonic/site/pkg/contact"
	"github.com/techtonic/site/pkg/logger"
	"github.com/techtonic/site/pkg/mailer"
	"github.com/techtonic/site/pkg/mailer/resend"
)

type config struct {
	Address         string        `env:"ADDRESS" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`
	AllowOrigins    []string      `env:"CORS_ALLOW_ORIGINS" envDefault:"*" envSeparator:","`

	Log     logger.Config
	Resend  resend.Config
	Contact contact.Config
}

func main() {
	// Local overrides first; Load never replaces variables that are already set.
	for _, f := range []string{".env.local", ".env"} {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("failed to load env file", "file", f, "error", err)
		}
	}

	cfg, err := env.ParseAs[config]()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	log := logger.NewWithSentry(cfg.Log, middlewares.RequestIDExtractor())

	section, err := colophon.Default()
	if err != nil {
		log.Error("invalid colophon content", "error", err)
		os.Exit(1)
	}

	if limit := deliveryLimit(cfg.RequestTimeout); limit > 0 && cfg.Contact.DeliveryTimeout > limit {
		log.Warn("contact delivery timeout exceeds request budget, capping",
			"delivery_timeout", cfg.Contact.DeliveryTimeout, "capped_to", limit)
		cfg.Contact.DeliveryTimeout = limit
	}

	var sender mailer.Sender
	if cfg.Resend.Configured() {
		s, err := resend.New(cfg.Resend,
			resend.WithHTTPClient(&http.Client{Timeout: cfg.Contact.DeliveryTimeout}),
		)
		if err != nil {
			log.Error("invalid resend configuration", "error", err)
			os.Exit(1)
		}
		sender = s
	} else {
		log.Warn("RESEND_API_KEY not set, contact notifications will not be emailed")
	}

	app := site.New(
		site.WithCustomLogger(log),
		site.WithMiddleware(
			middlewares.RequestID(),
			middlewares.Recover(),
			middlewares.CORS(middlewares.WithAllowOrigins(cfg.AllowOrigins...)),
			middlewares.Timeout(cfg.RequestTimeout),
		),
		site.WithErrorHandler(site.JSONErrorHandler),
		site.WithNotFoundHandler(func(site.Context) error {
			return site.ErrNotFound("Not found")
		}),
		site.WithMethodNotAllowedHandler(func(site.Context) error {
			return site.ErrMethodNotAllowed("Method not allowed")
		}),
		site.WithHandlers(
			colophon.NewHandler(section),
			contact.NewHandler(sender, cfg.Contact),
		),
		site.WithStaticFiles("/static/", colophon.Assets, "static"),
		site.WithHealthChecks(
			site.WithReadinessCheck("content", section.Healthcheck),
		),
	)

	if err := app.Run(cfg.Address,
		site.Logger(log),
		site.ShutdownTimeout(cfg.ShutdownTimeout),
		site.ShutdownHook(flushSentry),
	); err != nil {
		log.Error("application error", "error", err)
		os.Exit(1)
	}
}

// deliveryLimit leaves a quarter of the request timeout for the handler to
// log the outcome and answer after an email send gives up.
func deliveryLimit(requestTimeout time.Duration) time.Duration {
	return requestTimeout - requestTimeout/4
}

// flushSentry delivers buffered events before the process exits.
func flushSentry(ctx context.Context) error {
	timeout := 2 * time.Second
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
	}
	if !sentry.Flush(timeout) {
		return errors.New("sentry: flush timed out")
	}
	return nil
}
