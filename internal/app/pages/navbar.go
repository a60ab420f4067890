package pages

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/FACorreiaa/go-nextapp/internal/app/components/button"
	"github.com/FACorreiaa/go-nextapp/internal/app/models"
	"github.com/FACorreiaa/go-nextapp/internal/app/navbar"
)

const menuIcon = `<svg class="w-6 h-6" fill="none" stroke="currentColor" viewBox="0 0 24 24" aria-hidden="true"><path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M4 6h16M4 12h16M4 18h16"></path></svg>`

// Navbar renders the header for the given menu state. currentPath is where
// the menu button submits to, so toggling never changes the route.
func Navbar(n *navbar.Navbar, currentPath, activeNav string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newWriter(ctx, w)
		hw.open("nav", "class", "sticky top-0 z-50 bg-white shadow-md dark:bg-slate-900", "data-menu-state", n.State())
		hw.open("div", "class", "max-w-7xl mx-auto px-4 sm:px-6 lg:px-8")
		hw.open("div", "class", "flex justify-between items-center h-16")

		var links []models.Element
		var cta, toggle models.Element
		for _, e := range n.Elements() {
			switch e.Label {
			case navbar.LabelLogo:
				hw.open("div", "class", "flex-shrink-0")
				hw.element("a", e.Text, "href", e.Href, "class", "text-2xl font-bold text-blue-600 dark:text-blue-400", "data-testid", e.Label)
				hw.close("div")
			case navbar.LabelCTA:
				cta = e
			case navbar.LabelMenuButton:
				toggle = e
			default:
				links = append(links, e)
			}
		}

		hw.open("div", "class", "hidden md:flex space-x-8")
		for _, e := range links {
			current := ""
			if e.Text == activeNav {
				current = "page"
			}
			hw.element("a", e.Text, "href", e.Href, "class", "text-gray-700 hover:text-blue-600 transition-colors dark:text-gray-300", "data-testid", e.Label, "aria-current", current)
		}
		hw.close("div")

		hw.open("div", "class", "hidden md:flex items-center gap-4")
		hw.component(button.Button(button.Props{TestID: cta.Label, Class: "font-medium"}, button.Text(cta.Text)))
		hw.close("div")

		hw.open("form", "method", "get", "action", currentPath, "class", "md:hidden")
		hw.component(button.Button(button.Props{
			TestID:  toggle.Label,
			Type:    button.TypeSubmit,
			Variant: button.VariantGhost,
			Size:    button.SizeIcon,
			Name:    navbar.TogglesParam,
			Value:   strconv.Itoa(n.Toggles() + 1),
			Label:   "Toggle navigation menu",
		}, templ.Raw(menuIcon), button.Text(toggle.Text)))
		hw.close("form")
		hw.close("div")

		if items := n.MobileMenu(); items != nil {
			hw.open("div", "id", navbar.LabelMenu, "class", "md:hidden pb-4 space-y-2", "data-testid", navbar.LabelMenu)
			for _, e := range items {
				hw.element("a", e.Text, "href", e.Href, "class", "block px-3 py-2 rounded-md text-gray-700 hover:bg-gray-100 dark:text-gray-300 dark:hover:bg-slate-800")
			}
			hw.close("div")
		}

		hw.close("div")
		hw.close("nav")
		return hw.err
	})
}
