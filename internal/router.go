package internal

import (
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
)

// Router is what handlers see when declaring routes.
type Router interface {
	// GET registers h for GET (and HEAD) requests on path.
	GET(path string, h HandlerFunc, mw ...Middleware)

	// POST registers h for POST requests on path.
	POST(path string, h HandlerFunc, mw ...Middleware)

	// Method registers h for an arbitrary HTTP method.
	Method(method, path string, h HandlerFunc, mw ...Middleware)

	// Route mounts a sub-router under pattern.
	Route(pattern string, fn func(r Router))
}

// chiRouter registers Context-based handlers on a chi.Router.
type chiRouter struct {
	mux chi.Router
	app *App
}

func (r *chiRouter) GET(path string, h HandlerFunc, mw ...Middleware) {
	r.Method(http.MethodGet, path, h, mw...)
}

func (r *chiRouter) POST(path string, h HandlerFunc, mw ...Middleware) {
	r.Method(http.MethodPost, path, h, mw...)
}

func (r *chiRouter) Method(method, path string, h HandlerFunc, mw ...Middleware) {
	r.mux.Method(method, path, r.app.wrapHandler(chain(h, mw)))
}

func (r *chiRouter) Route(pattern string, fn func(Router)) {
	r.mux.Route(pattern, func(sub chi.Router) {
		fn(&chiRouter{mux: sub, app: r.app})
	})
}

// chain applies route middleware so that mw[0] runs first.
func chain(h HandlerFunc, mw []Middleware) HandlerFunc {
	for _, m := range slices.Backward(mw) {
		h = m(h)
	}
	return h
}

// adaptMiddleware turns a Middleware into chi middleware. Each layer gets its
// own Context; the request is read back from it when calling next, so values
// stored with Set and SetContext travel down the chain.
func (a *App) adaptMiddleware(mw Middleware) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handler := mw(func(c Context) error {
				next.ServeHTTP(c.Response(), c.Request())
				return nil
			})
			c := newContext(w, r, a)
			if err := handler(c); err != nil {
				a.handleError(c, err)
			}
		})
	}
}
