package contactform

import "errors"

var (
	ErrMissingFields      = errors.New("contactform: missing information")
	ErrSubmissionInFlight = errors.New("contactform: submission already in flight")
	ErrSubmitFailed       = errors.New("contactform: failed to send message")
	ErrDateInPast         = errors.New("contactform: date is not selectable")
	ErrUnknownField       = errors.New("contactform: unknown field")
	ErrInvalidDate        = errors.New("contactform: invalid date")
)
