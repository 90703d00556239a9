package contact_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techtonic/site/pkg/contact"
)

func TestRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     contact.Request
		missing []string
	}{
		{
			name: "complete",
			req:  contact.Request{Email: "jane@example.com", Description: "Need a website", Date: "March 3rd, 2025"},
		},
		{
			name:    "missing email",
			req:     contact.Request{Description: "Need a website", Date: "March 3rd, 2025"},
			missing: []string{"email"},
		},
		{
			name:    "missing description",
			req:     contact.Request{Email: "jane@example.com", Date: "March 3rd, 2025"},
			missing: []string{"description"},
		},
		{
			name:    "missing date",
			req:     contact.Request{Email: "jane@example.com", Description: "Need a website"},
			missing: []string{"date"},
		},
		{
			name:    "all missing",
			missing: []string{"email", "description", "date"},
		},
		{
			name: "whitespace is not trimmed",
			req:  contact.Request{Email: " ", Description: " ", Date: " "},
		},
		{
			name: "email format is not checked",
			req:  contact.Request{Email: "not-an-email", Description: "x", Date: "tomorrow"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.missing, tt.req.Missing())
			if len(tt.missing) > 0 {
				require.ErrorIs(t, tt.req.Validate(), contact.ErrMissingFields)
			} else {
				require.NoError(t, tt.req.Validate())
			}
		})
	}
}
