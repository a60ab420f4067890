package e2e

import (
	"fmt"
	"strings"
)

// StepKind names the single action a step performs.
type StepKind string

const (
	StepGoto              StepKind = "goto"
	StepViewport          StepKind = "viewport"
	StepClick             StepKind = "click"
	StepPress             StepKind = "press"
	StepScroll            StepKind = "scroll"
	StepExpectVisible     StepKind = "expect_visible"
	StepExpectHidden      StepKind = "expect_hidden"
	StepExpectEnabled     StepKind = "expect_enabled"
	StepExpectText        StepKind = "expect_text"
	StepExpectTextVisible StepKind = "expect_text_visible"
	StepExpectURL         StepKind = "expect_url"
	StepExpectTitle       StepKind = "expect_title"
	StepExpectFocus       StepKind = "expect_focus"
	StepExpectEach        StepKind = "expect_each"
)

// ScrollBottom is the only scroll target supported.
const ScrollBottom = "bottom"

type Viewport struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DesktopViewport is the size every session starts with.
var DesktopViewport = Viewport{Width: 1280, Height: 720}

type TextExpectation struct {
	Label    string `yaml:"label"`
	Contains string `yaml:"contains"`
}

// EachExpectation checks every element matching a CSS selector. Min is the
// smallest acceptable match count.
type EachExpectation struct {
	Selector string `yaml:"selector"`
	Min      int    `yaml:"min"`
	Visible  bool   `yaml:"visible"`
	Enabled  bool   `yaml:"enabled"`
	HasText  bool   `yaml:"has_text"`
}

// Step holds exactly one action. Labels refer to data-testid values.
type Step struct {
	Goto              string           `yaml:"goto,omitempty"`
	Viewport          *Viewport        `yaml:"viewport,omitempty"`
	Click             string           `yaml:"click,omitempty"`
	Press             string           `yaml:"press,omitempty"`
	Scroll            string           `yaml:"scroll,omitempty"`
	ExpectVisible     string           `yaml:"expect_visible,omitempty"`
	ExpectHidden      string           `yaml:"expect_hidden,omitempty"`
	ExpectEnabled     string           `yaml:"expect_enabled,omitempty"`
	ExpectText        *TextExpectation `yaml:"expect_text,omitempty"`
	ExpectTextVisible string           `yaml:"expect_text_visible,omitempty"`
	ExpectURL         string           `yaml:"expect_url,omitempty"`
	ExpectTitle       string           `yaml:"expect_title,omitempty"`
	ExpectFocus       []string         `yaml:"expect_focus,omitempty"`
	ExpectEach        *EachExpectation `yaml:"expect_each,omitempty"`
}

type Scenario struct {
	Name  string `yaml:"name"`
	Group string `yaml:"group"`
	Steps []Step `yaml:"steps"`
}

func (s Step) kinds() []StepKind {
	var kinds []StepKind
	add := func(set bool, k StepKind) {
		if set {
			kinds = append(kinds, k)
		}
	}
	add(s.Goto != "", StepGoto)
	add(s.Viewport != nil, StepViewport)
	add(s.Click != "", StepClick)
	add(s.Press != "", StepPress)
	add(s.Scroll != "", StepScroll)
	add(s.ExpectVisible != "", StepExpectVisible)
	add(s.ExpectHidden != "", StepExpectHidden)
	add(s.ExpectEnabled != "", StepExpectEnabled)
	add(s.ExpectText != nil, StepExpectText)
	add(s.ExpectTextVisible != "", StepExpectTextVisible)
	add(s.ExpectURL != "", StepExpectURL)
	add(s.ExpectTitle != "", StepExpectTitle)
	add(len(s.ExpectFocus) > 0, StepExpectFocus)
	add(s.ExpectEach != nil, StepExpectEach)
	return kinds
}

// Kind reports the step's action, or "" when the step is malformed.
func (s Step) Kind() StepKind {
	kinds := s.kinds()
	if len(kinds) != 1 {
		return ""
	}
	return kinds[0]
}

func (s Step) Validate() error {
	kinds := s.kinds()
	switch len(kinds) {
	case 0:
		return fmt.Errorf("step has no action")
	case 1:
	default:
		return fmt.Errorf("step sets %d actions (%v), want exactly one", len(kinds), kinds)
	}

	switch kinds[0] {
	case StepViewport:
		if s.Viewport.Width <= 0 || s.Viewport.Height <= 0 {
			return fmt.Errorf("viewport %dx%d must be positive", s.Viewport.Width, s.Viewport.Height)
		}
	case StepScroll:
		if s.Scroll != ScrollBottom {
			return fmt.Errorf("scroll target %q not supported", s.Scroll)
		}
	case StepExpectText:
		if s.ExpectText.Label == "" {
			return fmt.Errorf("expect_text needs a label")
		}
	case StepExpectEach:
		if s.ExpectEach.Selector == "" {
			return fmt.Errorf("expect_each needs a selector")
		}
	}
	return nil
}

// Expectation renders the step as a short human readable description.
func (s Step) Expectation() string {
	switch s.Kind() {
	case StepGoto:
		return "navigate to " + s.Goto
	case StepViewport:
		return fmt.Sprintf("viewport %dx%d", s.Viewport.Width, s.Viewport.Height)
	case StepClick:
		return "click " + s.Click
	case StepPress:
		return "press " + s.Press
	case StepScroll:
		return "scroll to " + s.Scroll
	case StepExpectVisible:
		return s.ExpectVisible + " is visible"
	case StepExpectHidden:
		return s.ExpectHidden + " is hidden"
	case StepExpectEnabled:
		return s.ExpectEnabled + " is enabled"
	case StepExpectText:
		return fmt.Sprintf("%s contains %q", s.ExpectText.Label, s.ExpectText.Contains)
	case StepExpectTextVisible:
		return fmt.Sprintf("text %q is visible", s.ExpectTextVisible)
	case StepExpectURL:
		return "url path is " + s.ExpectURL
	case StepExpectTitle:
		return fmt.Sprintf("title contains %q", s.ExpectTitle)
	case StepExpectFocus:
		return "focused element is one of " + strings.Join(s.ExpectFocus, ", ")
	case StepExpectEach:
		return fmt.Sprintf("every %q matches (min %d)", s.ExpectEach.Selector, s.ExpectEach.Min)
	}
	return "invalid step"
}

func (sc Scenario) Validate() error {
	if sc.Name == "" {
		return fmt.Errorf("scenario has no name")
	}
	if len(sc.Steps) == 0 {
		return fmt.Errorf("scenario %q has no steps", sc.Name)
	}
	for i, step := range sc.Steps {
		if err := step.Validate(); err != nil {
			return fmt.Errorf("scenario %q step %d: %w", sc.Name, i+1, err)
		}
	}
	return nil
}

// FullName joins group and name the way reports print them.
func (sc Scenario) FullName() string {
	if sc.Group == "" {
		return sc.Name
	}
	return sc.Group + " > " + sc.Name
}
