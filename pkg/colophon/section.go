package colophon

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultEase is used for animations that do not set one.
const DefaultEase = "power3.out"

var ErrInvalidSection = errors.New("colophon: invalid section")

//go:embed section.yaml
var contentFS embed.FS

// Assets holds the stylesheet and script served under /static/.
//
//go:embed static
var Assets embed.FS

// Section is the colophon content.
type Section struct {
	ID         string     `yaml:"id"`
	Label      string     `yaml:"label"`
	Title      string     `yaml:"title"`
	CTA        string     `yaml:"cta"`
	Columns    []Column   `yaml:"columns"`
	Footer     Footer     `yaml:"footer"`
	Animations Animations `yaml:"animations"`
}

// Column is one heading with its list of items.
type Column struct {
	Heading string `yaml:"heading"`
	Items   []Item `yaml:"items"`
}

// Item is a list entry, rendered as a link when Href is set.
type Item struct {
	Text string `yaml:"text"`
	Href string `yaml:"href"`
}

// Footer is the copyright line and tagline. Both may contain inline markup.
type Footer struct {
	Copyright string `yaml:"copyright"`
	Tagline   string `yaml:"tagline"`
}

// Animations are the scroll-triggered entrances of the three blocks.
type Animations struct {
	Header Animation `yaml:"header"`
	Grid   Animation `yaml:"grid"`
	Footer Animation `yaml:"footer"`
}

// Animation is a "from" tween started by a scroll trigger.
type Animation struct {
	From     map[string]float64 `yaml:"from"`
	Duration float64            `yaml:"duration"`
	Stagger  float64            `yaml:"stagger"`
	Ease     string             `yaml:"ease"`
	Trigger  Trigger            `yaml:"trigger"`
}

// Trigger describes when an animation plays.
type Trigger struct {
	Start         string   `yaml:"start"`
	ToggleActions []string `yaml:"toggle_actions"`
}

// Default loads the embedded section.
func Default() (*Section, error) {
	return Load(contentFS, "section.yaml")
}

// Load reads and validates a section from fsys.
func Load(fsys fs.FS, name string) (*Section, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("colophon: read %s: %w", name, err)
	}

	var s Section
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("colophon: parse %s: %w", name, err)
	}

	for _, a := range []*Animation{&s.Animations.Header, &s.Animations.Grid, &s.Animations.Footer} {
		if a.Ease == "" {
			a.Ease = DefaultEase
		}
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the section is renderable.
func (s *Section) Validate() error {
	var errs []error
	if strings.TrimSpace(s.Title) == "" {
		errs = append(errs, errors.New("title is required"))
	}
	if len(s.Columns) == 0 {
		errs = append(errs, errors.New("at least one column is required"))
	}
	for i, c := range s.Columns {
		if c.Heading == "" {
			errs = append(errs, fmt.Errorf("column %d: heading is required", i))
		}
	}

	for _, a := range []struct {
		name string
		anim Animation
	}{
		{"header", s.Animations.Header},
		{"grid", s.Animations.Grid},
		{"footer", s.Animations.Footer},
	} {
		if err := a.anim.validate(); err != nil {
			errs = append(errs, fmt.Errorf("animation %s: %w", a.name, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidSection, errors.Join(errs...))
	}
	return nil
}

func (a Animation) validate() error {
	switch {
	case a.Duration <= 0:
		return errors.New("duration must be positive")
	case a.Stagger < 0:
		return errors.New("stagger must not be negative")
	case a.Trigger.Start == "":
		return errors.New("trigger start is required")
	case len(a.Trigger.ToggleActions) != 4:
		return fmt.Errorf("want 4 toggle actions, got %d", len(a.Trigger.ToggleActions))
	}
	return nil
}

// Healthcheck reports whether the section is still valid.
// It matches health.CheckFunc.
func (s *Section) Healthcheck(context.Context) error {
	return s.Validate()
}
