package colophon

import (
	"context"
	"embed"
	"encoding/json"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/techtonic/site/pkg/contactform"
	"github.com/techtonic/site/pkg/sanitizer"
)

//go:embed templates
var templatesFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// tween is the object handed to gsap.from.
type tween struct {
	From          map[string]float64 `json:"from"`
	Duration      float64            `json:"duration"`
	Stagger       float64            `json:"stagger,omitempty"`
	Ease          string             `json:"ease"`
	ScrollTrigger scrollTrigger      `json:"scrollTrigger"`
}

type scrollTrigger struct {
	Start         string `json:"start"`
	ToggleActions string `json:"toggleActions"`
}

// JSON returns the GSAP tween for a as JSON.
func (a Animation) JSON() (string, error) {
	b, err := json.Marshal(tween{
		From:     a.From,
		Duration: a.Duration,
		Stagger:  a.Stagger,
		Ease:     a.Ease,
		ScrollTrigger: scrollTrigger{
			Start:         a.Trigger.Start,
			ToggleActions: strings.Join(a.Trigger.ToggleActions, " "),
		},
	})
	if err != nil {
		return "", err
	}
	return string(b), nil
}

type dialogView struct {
	Endpoint    string
	MinDate     string
	SubmitLabel string
	DateLabel   string
}

type view struct {
	*Section
	HeaderAnimation string
	GridAnimation   string
	FooterAnimation string
	Copyright       template.HTML
	Tagline         template.HTML
	Dialog          dialogView
}

func (s *Section) view(now time.Time) (view, error) {
	v := view{
		Section:   s,
		Copyright: template.HTML(sanitizer.InlineHTML(s.Footer.Copyright)), //nolint:gosec // sanitized
		Tagline:   template.HTML(sanitizer.InlineHTML(s.Footer.Tagline)),   //nolint:gosec // sanitized
		Dialog: dialogView{
			Endpoint:    contactform.DefaultEndpoint,
			MinDate:     contactform.EarliestDate(now).Format(contactform.DateLayout),
			SubmitLabel: contactform.LabelSubmit,
			DateLabel:   contactform.LabelPickDate,
		},
	}

	var err error
	if v.HeaderAnimation, err = s.Animations.Header.JSON(); err != nil {
		return v, err
	}
	if v.GridAnimation, err = s.Animations.Grid.JSON(); err != nil {
		return v, err
	}
	if v.FooterAnimation, err = s.Animations.Footer.JSON(); err != nil {
		return v, err
	}
	return v, nil
}

// Component renders the full page using the current time for the date picker.
func (s *Section) Component() templ.Component {
	return s.ComponentAt(time.Now)
}

// ComponentAt renders the full page with now as the date picker clock.
func (s *Section) ComponentAt(now func() time.Time) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		v, err := s.view(now())
		if err != nil {
			return err
		}
		return pageTemplate.ExecuteTemplate(w, "page.html", v)
	})
}
