package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/FACorreiaa/go-nextapp/internal/app/components/button"
	"github.com/FACorreiaa/go-nextapp/internal/app/models"
)

var sectionClasses = map[models.SectionLayout]string{
	models.LayoutHero:  "bg-gradient-to-r from-blue-600 to-blue-800 text-white py-20 px-4 sm:px-6 lg:px-8",
	models.LayoutProse: "py-16 px-4 sm:px-6 lg:px-8",
	models.LayoutCards: "py-20 px-4 sm:px-6 lg:px-8 bg-gray-50 dark:bg-gray-900",
	models.LayoutGrid:  "py-20 px-4 sm:px-6 lg:px-8",
	models.LayoutList:  "py-16 px-4 sm:px-6 lg:px-8",
	models.LayoutCTA:   "bg-blue-600 text-white py-16 px-4 sm:px-6 lg:px-8",
}

// PageContent renders the sections of a page in order.
func PageContent(page models.Page) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newWriter(ctx, w)
		for _, s := range page.Sections {
			renderSection(hw, s)
		}
		return hw.err
	})
}

func renderSection(hw *htmlWriter, s models.Section) {
	hw.open("section", "id", s.ID, "class", sectionClasses[s.Layout], "data-layout", string(s.Layout))
	hw.open("div", "class", "max-w-7xl mx-auto")

	if s.Layout == models.LayoutHero {
		hw.element("h1", s.Heading, "class", "text-4xl md:text-6xl font-bold mb-6 leading-tight", "data-testid", s.HeadingLabel)
	} else {
		hw.element("h2", s.Heading, "class", "text-3xl md:text-4xl font-bold mb-6", "data-testid", s.HeadingLabel)
	}
	for _, p := range s.Body {
		hw.element("p", p, "class", "text-xl mb-8 max-w-2xl")
	}

	switch s.Layout {
	case models.LayoutCards:
		hw.open("div", "class", "grid grid-cols-1 md:grid-cols-3 gap-8")
		for _, e := range s.Entries {
			hw.open("div", "class", "bg-white dark:bg-gray-800 p-8 rounded-lg shadow-md")
			hw.element("h3", e.Name, "class", "text-xl font-semibold mb-2")
			hw.element("p", e.Detail, "class", "text-gray-600 dark:text-gray-400")
			hw.close("div")
		}
		hw.close("div")
	case models.LayoutGrid:
		hw.open("div", "class", "grid grid-cols-2 md:grid-cols-4 gap-6 text-center")
		for _, e := range s.Entries {
			hw.open("div", "class", "p-6 bg-gray-50 dark:bg-gray-800 rounded-lg")
			hw.element("h3", e.Name, "class", "font-semibold")
			hw.element("p", e.Detail, "class", "text-sm text-gray-600 dark:text-gray-400")
			hw.close("div")
		}
		hw.close("div")
	case models.LayoutList:
		hw.open("ul", "class", "space-y-4")
		for _, e := range s.Entries {
			hw.open("li", "class", "flex gap-4")
			hw.open("div")
			hw.element("h3", e.Name, "class", "font-semibold")
			hw.element("p", e.Detail, "class", "text-gray-600 dark:text-gray-400")
			hw.close("div")
			hw.close("li")
		}
		hw.close("ul")
	}

	if len(s.Elements) > 0 {
		hw.open("div", "class", "flex flex-col sm:flex-row gap-4")
		for i, e := range s.Elements {
			hw.component(elementComponent(s.Layout, i, e))
		}
		hw.close("div")
	}

	hw.close("div")
	hw.close("section")
}

func elementComponent(layout models.SectionLayout, index int, e models.Element) templ.Component {
	props := button.Props{
		TestID:   e.Label,
		Disabled: !e.Enabled,
		Variant:  button.VariantInverse,
		Size:     button.SizeLg,
	}
	if e.Kind == models.KindLink {
		props.Href = e.Href
	}
	if index > 0 {
		props.Variant = button.VariantOutline
	}
	if layout == models.LayoutCTA && index == 0 {
		props.Size = button.SizeXl
	}
	return button.Button(props, button.Text(e.Text))
}

// NotFoundContent is shown for unknown routes.
func NotFoundContent() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newWriter(ctx, w)
		hw.open("section", "id", "not-found", "class", "py-20 px-4 text-center")
		hw.element("h1", "Page not found", "class", "text-4xl font-bold mb-6")
		hw.element("p", "The page you are looking for does not exist.", "class", "mb-8")
		hw.element("a", "Back to home", "href", "/", "class", "text-blue-600 underline")
		hw.close("section")
		return hw.err
	})
}
