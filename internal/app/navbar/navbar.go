// Package navbar models the site header: a fixed set of labeled links and
// buttons plus the open/closed state of the mobile menu.
package navbar

import (
	"fmt"
	"strconv"

	"github.com/FACorreiaa/go-nextapp/internal/app/models"
)

const (
	LabelLogo       = "navbar-logo"
	LabelHome       = "nav-home"
	LabelAbout      = "nav-about"
	LabelContact    = "nav-contact"
	LabelCTA        = "navbar-cta-btn"
	LabelMenuButton = "mobile-menu-btn"
	LabelMenu       = "mobile-menu"

	// TogglesParam carries the number of toggles a request replays.
	TogglesParam = "menu_toggles"

	maxReplayedToggles = 64
)

var primaryLinks = []models.NavItem{
	{Name: "Home", URL: "/"},
	{Name: "About", URL: "/about"},
	{Name: "Contact", URL: "#contact"},
}

// Navbar owns the mobile menu state. The zero value is a closed menu; Toggle
// is the only way to change it.
type Navbar struct {
	mobileMenuOpen bool
	toggles        int
}

func New() *Navbar {
	return &Navbar{}
}

// Toggle handles a click on the mobile menu button.
func (n *Navbar) Toggle() {
	n.mobileMenuOpen = !n.mobileMenuOpen
	n.toggles++
}

func (n *Navbar) IsOpen() bool {
	return n.mobileMenuOpen
}

// Toggles reports how many clicks the navbar has handled.
func (n *Navbar) Toggles() int {
	return n.toggles
}

// Replay builds a fresh navbar and applies count clicks to it. Large counts
// are folded to their parity.
func Replay(count int) *Navbar {
	if count > maxReplayedToggles {
		count = count % 2
	}
	n := New()
	for i := 0; i < count; i++ {
		n.Toggle()
	}
	return n
}

// ParseToggles reads the toggle count of a query value. An empty value means
// no clicks happened yet.
func ParseToggles(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	count, err := strconv.Atoi(raw)
	if err != nil || count < 0 {
		return 0, fmt.Errorf("%w: %q", models.ErrInvalidToggles, raw)
	}
	return count, nil
}

// Items returns the primary navigation entries shown both on desktop and in
// the mobile menu.
func Items() []models.NavItem {
	out := make([]models.NavItem, len(primaryLinks))
	copy(out, primaryLinks)
	return out
}

// Elements returns the labeled elements the bar exposes regardless of state.
func (n *Navbar) Elements() []models.Element {
	return []models.Element{
		{Label: LabelLogo, Kind: models.KindLink, Enabled: true, Href: "/", Text: "NextApp"},
		{Label: LabelHome, Kind: models.KindLink, Enabled: true, Href: primaryLinks[0].URL, Text: primaryLinks[0].Name},
		{Label: LabelAbout, Kind: models.KindLink, Enabled: true, Href: primaryLinks[1].URL, Text: primaryLinks[1].Name},
		{Label: LabelContact, Kind: models.KindLink, Enabled: true, Href: primaryLinks[2].URL, Text: primaryLinks[2].Name},
		{Label: LabelCTA, Kind: models.KindButton, Enabled: true, Text: "Get Started"},
		{Label: LabelMenuButton, Kind: models.KindButton, Enabled: true, Text: "Menu"},
	}
}

// MobileMenu returns the links of the mobile panel, or nil while the menu is
// closed. The duplicates carry no labels so page labels stay unique.
func (n *Navbar) MobileMenu() []models.Element {
	if !n.mobileMenuOpen {
		return nil
	}
	out := make([]models.Element, 0, len(primaryLinks))
	for _, item := range primaryLinks {
		out = append(out, models.Element{Kind: models.KindLink, Enabled: true, Href: item.URL, Text: item.Name})
	}
	return out
}

// State names the current state for logs and cache keys.
func (n *Navbar) State() string {
	if n.mobileMenuOpen {
		return "open"
	}
	return "closed"
}
