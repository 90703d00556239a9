// Package mailer defines the provider-agnostic email delivery capability.
//
// A [Sender] delivers a fully prepared [Email]; provider adapters such as
// [github.com/techtonic/site/pkg/mailer/resend] implement it. [Mailer] wraps
// a Sender and validates messages before they leave the process:
//
//	m := mailer.New(resend.New(cfg))
//	err := m.Send(ctx, &mailer.Email{
//		To:      []string{"contact@techtonic.tn"},
//		Subject: "New Contact Request from jane@example.com",
//		HTML:    body,
//		Tags:    mailer.SimpleTags("contact_request"),
//	})
//
// Validation failures are returned as [ErrNoRecipient], [ErrNoSubject] or
// [ErrNoContent]; provider failures are joined with [ErrSendFailed].
package mailer
