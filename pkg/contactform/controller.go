package contactform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/techtonic/site/pkg/logger"
)

// DefaultEndpoint is the contact submission route.
const DefaultEndpoint = "/api/contact"

// Button labels.
const (
	LabelSubmit     = "Book Meeting"
	LabelSubmitting = "Sending..."
	LabelPickDate   = "Pick a date"
)

// State is the submission state of the form.
type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
)

// Field names accepted by UpdateField.
const (
	FieldEmail       = "email"
	FieldDescription = "description"
	FieldDate        = "date"
)

// Doer sends HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Values is a snapshot of the form fields.
type Values struct {
	Email       string
	Description string
	Date        time.Time // zero when no date is selected
}

// Controller holds the dialog state. It is safe for concurrent use.
type Controller struct {
	mu     sync.Mutex
	state  State
	values Values

	endpoint string
	client   Doer
	notifier Notifier
	dialog   Dialog
	now      func() time.Time
	logger   *slog.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithEndpoint sets the URL submissions are posted to.
func WithEndpoint(url string) Option {
	return func(c *Controller) {
		if url != "" {
			c.endpoint = url
		}
	}
}

// WithHTTPClient sets the client used to post submissions.
func WithHTTPClient(d Doer) Option {
	return func(c *Controller) {
		if d != nil {
			c.client = d
		}
	}
}

// WithNotifier sets the toast sink.
func WithNotifier(n Notifier) Option {
	return func(c *Controller) {
		if n != nil {
			c.notifier = n
		}
	}
}

// WithDialog sets the dialog closed after a successful submission.
func WithDialog(d Dialog) Option {
	return func(c *Controller) {
		if d != nil {
			c.dialog = d
		}
	}
}

// WithClock sets the clock used by the date picker.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLogger sets the logger for transport failures.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates an idle Controller with empty fields.
func New(opts ...Option) *Controller {
	c := &Controller{
		state:    StateIdle,
		endpoint: DefaultEndpoint,
		client:   http.DefaultClient,
		notifier: nopNotifier{},
		dialog:   nopDialog{},
		now:      time.Now,
		logger:   logger.NewNope(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// UpdateField sets a field by name. The date value uses DateLayout and is
// interpreted in the clock's location.
func (c *Controller) UpdateField(name, value string) error {
	switch name {
	case FieldEmail:
		c.SetEmail(value)
	case FieldDescription:
		c.SetDescription(value)
	case FieldDate:
		if value == "" {
			c.ClearDate()
			return nil
		}
		d, err := time.ParseInLocation(DateLayout, value, c.now().Location())
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDate, err)
		}
		return c.SelectDate(d)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return nil
}

// SetEmail sets the email field.
func (c *Controller) SetEmail(v string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values.Email = v
}

// SetDescription sets the description field.
func (c *Controller) SetDescription(v string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values.Description = v
}

// SelectDate sets the preferred date. Days disabled by the picker are
// rejected with ErrDateInPast and leave the field unchanged.
func (c *Controller) SelectDate(d time.Time) error {
	if c.DateDisabled(d) {
		return ErrDateInPast
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values.Date = startOfDay(d)
	return nil
}

// ClearDate unsets the date field.
func (c *Controller) ClearDate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values.Date = time.Time{}
}

// DateDisabled reports whether the picker disables d's day.
// A day is disabled when it starts before now, which includes today.
func (c *Controller) DateDisabled(d time.Time) bool {
	return startOfDay(d).Before(c.now())
}

// Values returns the current field values.
func (c *Controller) Values() Values {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values
}

// State returns the submission state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Disabled reports whether the dialog buttons are disabled.
func (c *Controller) Disabled() bool {
	return c.State() == StateSubmitting
}

// SubmitLabel returns the submit button caption.
func (c *Controller) SubmitLabel() string {
	if c.Disabled() {
		return LabelSubmitting
	}
	return LabelSubmit
}

// DateLabel returns the date picker caption.
func (c *Controller) DateLabel() string {
	v := c.Values()
	if v.Date.IsZero() {
		return LabelPickDate
	}
	return FormatDate(v.Date)
}

type payload struct {
	Email       string `json:"email"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

// Submit sends the form. It returns ErrMissingFields without a request when
// a field is empty, ErrSubmissionInFlight when another Submit is running,
// and ErrSubmitFailed when the request fails. Fields are cleared and the
// dialog closed only on success.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.state == StateSubmitting {
		c.mu.Unlock()
		return ErrSubmissionInFlight
	}
	v := c.values
	if v.Email == "" || v.Description == "" || v.Date.IsZero() {
		c.mu.Unlock()
		c.notifier.Notify(MissingInformation)
		return ErrMissingFields
	}
	c.state = StateSubmitting
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.state = StateIdle
		c.mu.Unlock()
	}()

	if err := c.post(ctx, payload{
		Email:       v.Email,
		Description: v.Description,
		Date:        FormatDate(v.Date),
	}); err != nil {
		c.logger.WarnContext(ctx, "contact submission failed", "endpoint", c.endpoint, "error", err)
		c.notifier.Notify(SendFailed)
		return fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}

	c.notifier.Notify(MessageSent)
	c.mu.Lock()
	c.values = Values{}
	c.mu.Unlock()
	c.dialog.Close()
	return nil
}

func (c *Controller) post(ctx context.Context, p payload) error {
	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}
