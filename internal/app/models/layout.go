package models

import "github.com/a-h/templ"

type NavItem struct {
	Name string
	URL  string
}

type Navigation struct {
	Items []NavItem
}

// LayoutTempl is the view model of the site shell.
type LayoutTempl struct {
	Title     string
	ActiveNav string
	Navbar    templ.Component
	Content   templ.Component
}
