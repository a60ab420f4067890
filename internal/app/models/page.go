package models

// Route identifies a page by its path.
type Route string

const (
	RouteHome  Route = "/"
	RouteAbout Route = "/about"
)

// ElementKind distinguishes links from buttons.
type ElementKind string

const (
	KindLink   ElementKind = "link"
	KindButton ElementKind = "button"
)

// SectionLayout selects how a section is drawn.
type SectionLayout string

const (
	LayoutHero  SectionLayout = "hero"
	LayoutProse SectionLayout = "prose"
	LayoutCards SectionLayout = "cards"
	LayoutGrid  SectionLayout = "grid"
	LayoutList  SectionLayout = "list"
	LayoutCTA   SectionLayout = "cta"
)

// Element is a labeled, testable node. Label is rendered as data-testid and
// must be unique within a page.
type Element struct {
	Label   string
	Kind    ElementKind
	Enabled bool
	Href    string // links only
	Text    string
}

// Entry is a named record inside a section: a feature, a technology, a
// stack category.
type Entry struct {
	Name   string
	Detail string
}

type Section struct {
	ID           string
	Layout       SectionLayout
	Heading      string
	HeadingLabel string
	Body         []string
	Entries      []Entry
	Elements     []Element
}

type Page struct {
	Route    Route
	Title    string
	Sections []Section
}

// Labels returns every element label of the page in render order, heading
// labels included.
func (p Page) Labels() []string {
	var labels []string
	for _, s := range p.Sections {
		if s.HeadingLabel != "" {
			labels = append(labels, s.HeadingLabel)
		}
		for _, e := range s.Elements {
			if e.Label != "" {
				labels = append(labels, e.Label)
			}
		}
	}
	return labels
}

// Buttons returns the button elements of the page.
func (p Page) Buttons() []Element {
	var buttons []Element
	for _, s := range p.Sections {
		for _, e := range s.Elements {
			if e.Kind == KindButton {
				buttons = append(buttons, e)
			}
		}
	}
	return buttons
}
