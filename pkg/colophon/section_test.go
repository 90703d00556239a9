package colophon_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techtonic/site/pkg/colophon"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	s, err := colophon.Default()
	require.NoError(t, err)

	assert.Equal(t, "04 / Contact", s.Label)
	assert.Equal(t, "GET IN TOUCH", s.Title)
	assert.Equal(t, "Book a Meeting", s.CTA)

	headings := make([]string, 0, len(s.Columns))
	for _, c := range s.Columns {
		headings = append(headings, c.Heading)
	}
	assert.Equal(t, []string{"Services", "We Serve", "Stack", "Pricing", "Contact", "Location"}, headings)
	assert.Equal(t, colophon.Item{Text: "Email", Href: "mailto:contact@techtonic.tn"}, s.Columns[4].Items[0])
	assert.Len(t, s.Columns[1].Items, 5)

	header := s.Animations.Header
	assert.Equal(t, map[string]float64{"x": -60, "opacity": 0}, header.From)
	assert.InDelta(t, 1.0, header.Duration, 1e-9)
	assert.Equal(t, "power3.out", header.Ease)
	assert.Equal(t, "top 85%", header.Trigger.Start)
	assert.Equal(t, []string{"play", "none", "none", "reverse"}, header.Trigger.ToggleActions)

	grid := s.Animations.Grid
	assert.Equal(t, map[string]float64{"y": 40, "opacity": 0}, grid.From)
	assert.InDelta(t, 0.8, grid.Duration, 1e-9)
	assert.InDelta(t, 0.1, grid.Stagger, 1e-9)

	footer := s.Animations.Footer
	assert.Equal(t, map[string]float64{"y": 20, "opacity": 0}, footer.From)
	assert.Equal(t, "top 95%", footer.Trigger.Start)

	require.NoError(t, s.Healthcheck(context.Background()))
}

const validAnimations = `
animations:
  header: {from: {x: -60}, duration: 1, trigger: {start: top 85%, toggle_actions: [play, none, none, reverse]}}
  grid: {from: {y: 40}, duration: 0.8, stagger: 0.1, trigger: {start: top 85%, toggle_actions: [play, none, none, reverse]}}
  footer: {from: {y: 20}, duration: 0.8, trigger: {start: top 95%, toggle_actions: [play, none, none, reverse]}}
`

func TestLoad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{
			name: "valid with default ease",
			doc:  "title: HELLO\ncolumns: [{heading: A, items: [{text: a}]}]\n" + validAnimations,
		},
		{
			name:    "missing title",
			doc:     "columns: [{heading: A}]\n" + validAnimations,
			wantErr: colophon.ErrInvalidSection,
		},
		{
			name:    "no columns",
			doc:     "title: HELLO\n" + validAnimations,
			wantErr: colophon.ErrInvalidSection,
		},
		{
			name:    "missing animations",
			doc:     "title: HELLO\ncolumns: [{heading: A}]\n",
			wantErr: colophon.ErrInvalidSection,
		},
		{
			name: "negative stagger",
			doc: "title: HELLO\ncolumns: [{heading: A}]\n" + `
animations:
  header: {duration: 1, trigger: {start: top, toggle_actions: [a, b, c, d]}}
  grid: {duration: 1, stagger: -0.1, trigger: {start: top, toggle_actions: [a, b, c, d]}}
  footer: {duration: 1, trigger: {start: top, toggle_actions: [a, b, c, d]}}
`,
			wantErr: colophon.ErrInvalidSection,
		},
		{
			name: "three toggle actions",
			doc: "title: HELLO\ncolumns: [{heading: A}]\n" + `
animations:
  header: {duration: 1, trigger: {start: top, toggle_actions: [a, b, c]}}
  grid: {duration: 1, trigger: {start: top, toggle_actions: [a, b, c, d]}}
  footer: {duration: 1, trigger: {start: top, toggle_actions: [a, b, c, d]}}
`,
			wantErr: colophon.ErrInvalidSection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fsys := fstest.MapFS{"section.yaml": &fstest.MapFile{Data: []byte(tt.doc)}}
			s, err := colophon.Load(fsys, "section.yaml")

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, colophon.DefaultEase, s.Animations.Grid.Ease)
		})
	}
}

func TestLoad_ReadAndParseErrors(t *testing.T) {
	t.Parallel()

	_, err := colophon.Load(fstest.MapFS{}, "missing.yaml")
	require.Error(t, err)

	fsys := fstest.MapFS{"bad.yaml": &fstest.MapFile{Data: []byte("title: [unterminated")}}
	_, err = colophon.Load(fsys, "bad.yaml")
	require.Error(t, err)
	require.NotErrorIs(t, err, colophon.ErrInvalidSection)
}

func TestHealthcheck_DetectsInvalidSection(t *testing.T) {
	t.Parallel()

	s, err := colophon.Default()
	require.NoError(t, err)

	broken := *s
	broken.Columns = nil
	require.ErrorIs(t, broken.Healthcheck(context.Background()), colophon.ErrInvalidSection)
}
