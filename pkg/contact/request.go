package contact

import "errors"

// Response messages.
const (
	MissingFieldsMessage = "Missing required fields"
	SuccessMessage       = "Your request has been received. We'll contact you soon!"
)

// ErrMissingFields is returned by Request.Validate when a field is absent.
var ErrMissingFields = errors.New("contact: missing required fields")

// Request is a contact form submission.
// A JSON null decodes to the empty string and counts as missing.
type Request struct {
	Email       string `json:"email"`
	Description string `json:"description"`
	Date        string `json:"date"` // preformatted by the client, e.g. "March 3rd, 2025"
}

// Missing returns the JSON names of empty fields in declaration order.
func (r Request) Missing() []string {
	var missing []string
	if r.Email == "" {
		missing = append(missing, "email")
	}
	if r.Description == "" {
		missing = append(missing, "description")
	}
	if r.Date == "" {
		missing = append(missing, "date")
	}
	return missing
}

// Validate returns ErrMissingFields when any field is empty.
// Values are not trimmed or format-checked.
func (r Request) Validate() error {
	if len(r.Missing()) > 0 {
		return ErrMissingFields
	}
	return nil
}

// Response is the body of a successful submission.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
