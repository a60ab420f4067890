package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/FACorreiaa/go-nextapp/internal/app/models"
)

const stylesheetPath = "/assets/css/site.css"

// LayoutPage renders the document shell around the navbar and page content.
func LayoutPage(data models.LayoutTempl) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newWriter(ctx, w)
		hw.raw("<!DOCTYPE html>")
		hw.open("html", "lang", "en")
		hw.raw(`<head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		hw.element("title", data.Title)
		hw.open("link", "rel", "stylesheet", "href", stylesheetPath)
		hw.close("head")

		hw.open("body", "class", "min-h-screen bg-white text-gray-900 dark:bg-slate-900", "data-active-nav", data.ActiveNav)
		hw.component(data.Navbar)
		hw.open("main", "id", "main")
		hw.component(data.Content)
		hw.close("main")
		hw.open("footer", "class", "py-8 text-center text-sm text-gray-500")
		hw.element("p", "NextApp. Built with Go, gin and templ.")
		hw.close("footer")
		hw.close("body")
		hw.close("html")
		return hw.err
	})
}
