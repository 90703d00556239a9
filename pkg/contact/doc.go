// Package contact handles contact form submissions.
//
// The Handler accepts POST /api/contact with a JSON body of email,
// description and preferred date. Every accepted submission is logged and
// answered with the same success message. Notifying the site owner by email
// is best effort: the Notifier reports what happened as a Delivery, and the
// handler only logs it.
//
//	sender, _ := resend.New(resendCfg)
//	app := site.New(
//	    site.WithErrorHandler(site.JSONErrorHandler),
//	    site.WithHandlers(contact.NewHandler(sender, contactCfg)),
//	)
//
// Passing a nil sender disables delivery; submissions are still accepted
// and a warning is logged for each one.
package contact
