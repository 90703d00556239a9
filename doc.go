// Package site is the web layer of the TechTonic marketing site.
//
// It serves the colophon section page and the contact endpoint that forwards
// meeting requests by email. The package re-exports the core types from
// internal so feature packages depend on a small, stable surface:
//
//	app := site.New(
//	    site.WithCustomLogger(log),
//	    site.WithMiddleware(
//	        middlewares.RequestID(),
//	        middlewares.Recover(),
//	    ),
//	    site.WithErrorHandler(site.JSONErrorHandler),
//	    site.WithHandlers(
//	        colophon.NewHandler(section),
//	        contact.NewHandler(sender, contactCfg),
//	    ),
//	    site.WithHealthChecks(),
//	)
//
//	if err := app.Run(":8080", site.Logger(log)); err != nil {
//	    log.Error("server stopped", slog.Any("error", err))
//	}
//
// # Handlers
//
// Handlers implement [Handler] and receive their collaborators through
// constructors. Failures are returned, not written: return an [HTTPError]
// for a specific status and message, or any other error for a generic 500.
// [JSONErrorHandler] renders both as {"error": "..."}.
//
// # Packages
//
//   - pkg/contact: POST /api/contact, best-effort email notification
//   - pkg/contactform: client-side form controller for the contact dialog
//   - pkg/colophon: the colophon section page and its scroll animations
//   - pkg/mailer, pkg/mailer/resend: email delivery capability and Resend adapter
//   - pkg/logger, pkg/health, pkg/sanitizer: supporting infrastructure
//   - middlewares: request IDs, panic recovery, timeouts, CORS
package site
