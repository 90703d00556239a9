// Package internal holds the web core of the site: the App, the request
// Context, routing, typed HTTP errors and the server runtime.
//
// Import "github.com/techtonic/site" instead, which re-exports the public API.
//
// # Core Types
//
//   - App: owns the chi router, the middleware chain and graceful shutdown
//   - Context: request/response access, JSON and HTML rendering, logging
//   - Router: interface handlers use to declare routes
//   - Handler: implemented by types that declare routes on a Router
//   - HandlerFunc: route handler returning an error
//   - Middleware: wraps a HandlerFunc
//   - ErrorHandler: renders errors returned by handlers
//
// # Context as context.Context
//
// Context embeds context.Context, so handlers pass it straight to blocking
// calls such as email delivery:
//
//	func (h *Handler) submit(c site.Context) error {
//	    delivery := h.notifier.Deliver(c, req)
//	    ...
//	}
//
// # Handlers
//
// Handlers receive dependencies through their constructors and declare
// routes in Routes:
//
//	func (h *Handler) Routes(r site.Router) {
//	    r.POST("/api/contact", h.submit)
//	}
//
// # Errors
//
// Handlers return errors instead of writing failure responses. *HTTPError
// values carry their own status and user-facing message; everything else is
// treated as an internal failure. JSONErrorHandler renders both as
// {"error": "..."} bodies:
//
//	return site.ErrBadRequest("Missing required fields")
//
// # Server Lifecycle
//
// App.Run listens, serves and shuts down gracefully on SIGINT/SIGTERM,
// running shutdown hooks with the configured timeout.
package internal
