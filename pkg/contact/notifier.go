package contact

import (
	"context"
	"fmt"
	"time"

	"github.com/techtonic/site/pkg/mailer"
)

// Outcome describes what happened to a notification.
type Outcome string

const (
	OutcomeSent    Outcome = "sent"
	OutcomeSkipped Outcome = "skipped" // no sender configured
	OutcomeFailed  Outcome = "failed"
)

// Delivery is the result of a notification attempt.
// Err is set only when Outcome is OutcomeFailed.
type Delivery struct {
	Outcome   Outcome
	Recipient string
	Err       error
}

// Notifier emails the site owner about submissions.
type Notifier struct {
	mailer *mailer.Mailer
	config Config
	now    func() time.Time
}

// NotifierOption configures a Notifier.
type NotifierOption func(*Notifier)

// WithNotifierClock sets the clock used for the "Submitted at" footer.
func WithNotifierClock(now func() time.Time) NotifierOption {
	return func(n *Notifier) {
		if now != nil {
			n.now = now
		}
	}
}

// NewNotifier creates a Notifier. A nil sender means delivery is not
// configured and every Deliver call is skipped.
func NewNotifier(sender mailer.Sender, cfg Config, opts ...NotifierOption) *Notifier {
	n := &Notifier{config: cfg, now: time.Now}
	if sender != nil {
		n.mailer = mailer.New(sender)
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Configured reports whether a sender is available.
func (n *Notifier) Configured() bool {
	return n.mailer != nil
}

// Deliver sends the notification for req. Provider errors and panics are
// reported in the returned Delivery rather than as an error.
//
// The send runs detached from ctx cancellation and is bounded by
// Config.DeliveryTimeout, so it finishes before the request deadline.
func (n *Notifier) Deliver(ctx context.Context, req Request) (d Delivery) {
	d = Delivery{Recipient: n.config.Recipient}
	if !n.Configured() {
		d.Outcome = OutcomeSkipped
		return d
	}

	defer func() {
		if r := recover(); r != nil {
			d.Outcome = OutcomeFailed
			d.Err = fmt.Errorf("%w: panic: %v", mailer.ErrSendFailed, r)
		}
	}()

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), n.config.deliveryTimeout())
	defer cancel()

	email, err := buildEmail(n.config, req, n.now())
	if err == nil {
		err = n.mailer.Send(ctx, email)
	}
	if err != nil {
		d.Outcome = OutcomeFailed
		d.Err = err
		return d
	}

	d.Outcome = OutcomeSent
	return d
}
