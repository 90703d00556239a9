package internal

// Handler declares routes on a router.
//
// Example:
//
//	type ContactHandler struct {
//	    notifier *contact.Notifier
//	}
//
//	func (h *ContactHandler) Routes(r site.Router) {
//	    r.POST("/api/contact", h.submit)
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc is the signature for route handlers.
// Returning a non-nil error hands the error to the App's ErrorHandler.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc to add cross-cutting concerns.
// Middleware can inspect or modify the request, short-circuit processing,
// or wrap the response.
//
// Example:
//
//	func JSONOnly(next site.HandlerFunc) site.HandlerFunc {
//	    return func(c site.Context) error {
//	        if !strings.HasPrefix(c.Header("Content-Type"), "application/json") {
//	            return site.ErrUnsupportedMediaType("Expected JSON")
//	        }
//	        return next(c)
//	    }
//	}
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler handles errors returned from handlers.
type ErrorHandler func(Context, error) error
