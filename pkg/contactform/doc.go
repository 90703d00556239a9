// Package contactform drives the "Book a Meeting" dialog from Go.
//
// A Controller owns the dialog's field values and its idle/submitting state.
// Submit checks that every field is filled, formats the chosen date in the
// long form used by the site ("March 3rd, 2025"), posts the submission to
// the contact endpoint once and reports the result through a Notifier.
//
//	form := contactform.New(
//	    contactform.WithEndpoint("https://techtonic.tn/api/contact"),
//	    contactform.WithNotifier(toasts),
//	    contactform.WithDialog(dialog),
//	)
//	form.SetEmail("jane@example.com")
//	form.SetDescription("PFE mobile app")
//	_ = form.SelectDate(time.Now().AddDate(0, 0, 7))
//	err := form.Submit(ctx)
//
// The date picker rejects every day that starts before the current moment,
// so the earliest selectable day is tomorrow.
package contactform
