// Package sanitizer cleans author-supplied markup before it is rendered.
package sanitizer

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	inlinePolicy *bluemonday.Policy
	initOnce     sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()

		// Inline formatting only: section copy lives inside headings and
		// footers, so block elements would break the layout.
		inlinePolicy = bluemonday.NewPolicy()
		inlinePolicy.AllowStandardURLs()
		inlinePolicy.AllowURLSchemes("mailto", "https")
		inlinePolicy.AllowElements("br", "strong", "b", "em", "i", "span")
		inlinePolicy.AllowAttrs("href").OnElements("a")
		inlinePolicy.RequireNoFollowOnLinks(true)
	})
}

// StripHTML removes every tag and returns plain text.
// Use for attribute values such as aria-label and title.
func StripHTML(s string) string {
	initPolicies()
	return strictPolicy.Sanitize(s)
}

// InlineHTML keeps inline formatting (strong, em, br, span and links) and
// drops everything else, including scripts, event handlers and
// javascript: URLs.
func InlineHTML(s string) string {
	initPolicies()
	return inlinePolicy.Sanitize(s)
}

// SanitizeHTMLCustom applies a custom bluemonday policy.
// Returns input unchanged if policy is nil.
func SanitizeHTMLCustom(s string, policy *bluemonday.Policy) string {
	if policy == nil {
		return s
	}
	return policy.Sanitize(s)
}
