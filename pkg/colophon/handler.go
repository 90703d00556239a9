package colophon

import (
	"net/http"
	"time"

	"github.com/techtonic/site"
)

// Handler serves the page containing the colophon section.
type Handler struct {
	section *Section
	now     func() time.Time
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithClock sets the clock used for the date picker minimum.
func WithClock(now func() time.Time) HandlerOption {
	return func(h *Handler) {
		if now != nil {
			h.now = now
		}
	}
}

// NewHandler creates a Handler for section.
func NewHandler(section *Section, opts ...HandlerOption) *Handler {
	h := &Handler{section: section, now: time.Now}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes implements site.Handler.
func (h *Handler) Routes(r site.Router) {
	r.GET("/", h.index)
}

func (h *Handler) index(c site.Context) error {
	return c.Render(http.StatusOK, h.section.ComponentAt(h.now))
}
