package sanitizer_test

import (
	"testing"

	"github.com/microcosm-cc/bluemonday"
	"github.com/stretchr/testify/assert"

	"github.com/techtonic/site/pkg/sanitizer"
)

func TestStripHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text", "Built by students", "Built by students"},
		{"inline tags", "Built by <em>students</em>", "Built by students"},
		{"script removed with content", "<script>alert(1)</script>Hello", "Hello"},
		{"link text kept", `<a href="https://techtonic.tn">TechTonic</a>`, "TechTonic"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, sanitizer.StripHTML(tt.input))
		})
	}
}

func TestInlineHTML(t *testing.T) {
	t.Parallel()

	t.Run("keeps inline formatting", func(t *testing.T) {
		t.Parallel()
		in := "Built by students, <em>for students</em>.<br>"
		out := sanitizer.InlineHTML(in)
		assert.Contains(t, out, "<em>for students</em>")
		assert.Contains(t, out, "<br")
	})

	t.Run("drops block elements", func(t *testing.T) {
		t.Parallel()
		out := sanitizer.InlineHTML("<div><p>Remote</p></div>")
		assert.Equal(t, "Remote", out)
	})

	t.Run("removes event handlers", func(t *testing.T) {
		t.Parallel()
		out := sanitizer.InlineHTML(`<strong onclick="steal()">Tunisia</strong>`)
		assert.Equal(t, "<strong>Tunisia</strong>", out)
	})

	t.Run("removes scripts", func(t *testing.T) {
		t.Parallel()
		out := sanitizer.InlineHTML(`Hi<script>alert("x")</script>`)
		assert.Equal(t, "Hi", out)
	})

	t.Run("links get nofollow", func(t *testing.T) {
		t.Parallel()
		out := sanitizer.InlineHTML(`<a href="https://techtonic.tn">site</a>`)
		assert.Contains(t, out, `href="https://techtonic.tn"`)
		assert.Contains(t, out, "nofollow")
	})

	t.Run("javascript urls dropped", func(t *testing.T) {
		t.Parallel()
		out := sanitizer.InlineHTML(`<a href="javascript:alert(1)">x</a>`)
		assert.NotContains(t, out, "javascript:")
	})
}

func TestSanitizeHTMLCustom(t *testing.T) {
	t.Parallel()

	t.Run("applies policy", func(t *testing.T) {
		t.Parallel()
		policy := bluemonday.NewPolicy()
		policy.AllowElements("b")
		assert.Equal(t, "<b>ok</b>no", sanitizer.SanitizeHTMLCustom("<b>ok</b><i>no</i>", policy))
	})

	t.Run("nil policy returns input", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "<i>x</i>", sanitizer.SanitizeHTMLCustom("<i>x</i>", nil))
	})
}
