package mailer

import (
	"context"
	"errors"
)

// Mailer validates emails and hands them to a Sender.
type Mailer struct {
	sender Sender
}

// New creates a Mailer delivering through sender.
func New(sender Sender) *Mailer {
	return &Mailer{sender: sender}
}

// Send validates email and delivers it.
// Provider errors are returned joined with ErrSendFailed.
func (m *Mailer) Send(ctx context.Context, email *Email) error {
	if err := email.Validate(); err != nil {
		return err
	}

	if err := m.sender.Send(ctx, email); err != nil {
		return errors.Join(ErrSendFailed, err)
	}

	return nil
}
