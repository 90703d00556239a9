package mailer

import "context"

// Sender is the email delivery capability implemented by provider adapters.
type Sender interface {
	// Send delivers an email message.
	// The Email must have To, Subject and HTML set.
	Send(ctx context.Context, email *Email) error
}

// SenderFunc adapts a function to the Sender interface.
type SenderFunc func(ctx context.Context, email *Email) error

// Send implements Sender.
func (f SenderFunc) Send(ctx context.Context, email *Email) error {
	return f(ctx, email)
}
