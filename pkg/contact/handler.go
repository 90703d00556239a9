package contact

import (
	"net/http"
	"time"

	"github.com/techtonic/site"
	"github.com/techtonic/site/pkg/mailer"
)

// Path is the route the contact form posts to.
const Path = "/api/contact"

// Handler accepts contact form submissions.
type Handler struct {
	notifier *Notifier
	now      func() time.Time
}

// Option configures a Handler.
type Option func(*Handler)

// WithClock sets the clock used for submission timestamps.
func WithClock(now func() time.Time) Option {
	return func(h *Handler) {
		if now != nil {
			h.now = now
		}
	}
}

// WithNotifier replaces the notifier built from the sender.
func WithNotifier(n *Notifier) Option {
	return func(h *Handler) {
		if n != nil {
			h.notifier = n
		}
	}
}

// NewHandler creates the contact handler.
// A nil sender disables email delivery.
func NewHandler(sender mailer.Sender, cfg Config, opts ...Option) *Handler {
	h := &Handler{now: time.Now}
	for _, opt := range opts {
		opt(h)
	}
	if h.notifier == nil {
		h.notifier = NewNotifier(sender, cfg, WithNotifierClock(h.now))
	}
	return h
}

// Routes implements site.Handler.
func (h *Handler) Routes(r site.Router) {
	r.POST(Path, h.submit)
}

func (h *Handler) submit(c site.Context) error {
	var req Request
	if err := c.DecodeJSON(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		return site.ErrBadRequest(MissingFieldsMessage, site.WithError(err))
	}

	c.LogInfo("new contact form submission",
		"email", req.Email,
		"description", req.Description,
		"date", req.Date,
		"timestamp", FormatTimestamp(h.now()),
	)

	logDelivery(c, h.notifier.Deliver(c.Context(), req))

	return c.JSON(http.StatusOK, Response{
		Success: true,
		Message: SuccessMessage,
	})
}

// logDelivery is the only place a Delivery is inspected.
// Delivery failures never change the response.
func logDelivery(c site.Context, d Delivery) {
	switch d.Outcome {
	case OutcomeSent:
		c.LogInfo("contact notification sent", "recipient", d.Recipient)
	case OutcomeSkipped:
		c.LogWarn("email delivery not configured, notification skipped", "hint", "set RESEND_API_KEY")
	case OutcomeFailed:
		c.LogError("contact notification failed", "recipient", d.Recipient, "error", d.Err)
	}
}
