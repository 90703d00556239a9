package contact

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	texttemplate "text/template"
	"time"

	"github.com/google/uuid"

	"github.com/techtonic/site/pkg/mailer"
)

// TimestampLayout formats submission timestamps: RFC 3339, UTC, milliseconds.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Tag marks notification emails in the provider dashboard.
const Tag = "contact_request"

//go:embed templates
var templatesFS embed.FS

var newlines = strings.NewReplacer("\r\n", "<br>", "\n", "<br>")

var (
	htmlTemplate = template.Must(
		template.New("notification.html").
			Funcs(template.FuncMap{"nl2br": nl2br}).
			ParseFS(templatesFS, "templates/notification.html"),
	)
	textTemplate = texttemplate.Must(
		texttemplate.New("notification.txt").ParseFS(templatesFS, "templates/notification.txt"),
	)
)

// nl2br escapes s and turns its line breaks into <br>.
func nl2br(s string) template.HTML {
	return template.HTML(newlines.Replace(template.HTMLEscapeString(s))) //nolint:gosec // input escaped above
}

type notificationData struct {
	Request
	SubmittedAt string
}

// Subject returns the notification subject for a submission.
func Subject(email string) string {
	return "New Contact Request from " + email
}

// FormatTimestamp renders t the way submissions are logged and mailed.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// buildEmail composes the notification for req.
func buildEmail(cfg Config, req Request, submittedAt time.Time) (*mailer.Email, error) {
	data := notificationData{Request: req, SubmittedAt: FormatTimestamp(submittedAt)}

	var html, text bytes.Buffer
	if err := htmlTemplate.Execute(&html, data); err != nil {
		return nil, fmt.Errorf("render html body: %w", err)
	}
	if err := textTemplate.Execute(&text, data); err != nil {
		return nil, fmt.Errorf("render text body: %w", err)
	}

	email := &mailer.Email{
		From:    cfg.From,
		To:      []string{cfg.Recipient},
		ReplyTo: req.Email,
		Subject: Subject(req.Email),
		HTML:    html.String(),
		Text:    text.String(),
		Headers: map[string]string{
			// Keeps mail clients from threading repeated notifications together.
			"X-Entity-Ref-ID": uuid.NewString(),
		},
		Tags: mailer.SimpleTags(Tag),
	}
	if cfg.Archive != "" {
		email.BCC = []string{cfg.Archive}
	}
	return email, nil
}
