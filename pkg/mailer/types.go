package mailer

import (
	"fmt"
	"strings"
)

// Tags represents email tags that are either presence-only (struct{}{})
// or name-value pairs. Adapters convert them to the provider's format.
type Tags map[string]any

// SimpleTags creates presence-only tags from a list of tag names.
func SimpleTags(names ...string) Tags {
	t := make(Tags, len(names))
	for _, n := range names {
		t[n] = struct{}{}
	}
	return t
}

// Recipient formats a name and email into RFC 5322 address format.
// Returns "Name <email>" if name is provided, otherwise just email.
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}

// Email represents a fully prepared email message ready for sending.
type Email struct {
	Headers map[string]string // Custom headers
	Tags    Tags              // Provider-specific tags
	Subject string
	HTML    string // HTML body
	Text    string // Plain text alternative
	From    string // Overrides the provider's default sender
	ReplyTo string
	To      []string // At least one required
	BCC     []string // Hidden copies, e.g. an archive mailbox
}

// Validate checks the fields every provider requires.
func (e *Email) Validate() error {
	if len(e.To) == 0 || strings.TrimSpace(e.To[0]) == "" {
		return ErrNoRecipient
	}
	if e.Subject == "" {
		return ErrNoSubject
	}
	if e.HTML == "" {
		return ErrNoContent
	}
	return nil
}
