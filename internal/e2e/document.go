package e2e

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// mdBreakpoint is the min-width at which md: utility classes apply.
const mdBreakpoint = 768

// Tags that never produce a box.
var unrenderedTags = []string{"head", "script", "style", "template", "title", "meta", "link", "noscript"}

// md:hidden is declared after these in the stylesheet and wins over them.
var mdDisplayClasses = []string{"md:flex", "md:block"}

const focusableSelector = "a[href], button, input, select, textarea, [tabindex]"

// DocumentDriver fetches pages over HTTP and evaluates them without a
// browser. Visibility follows the site's utility classes (hidden, md:flex,
// md:block, md:hidden) and the hidden attribute; there is no script engine
// and no layout, so scrolling is a no-op.
type DocumentDriver struct {
	client *http.Client
}

// NewDocumentDriver creates a driver whose page loads time out after
// navTimeout.
func NewDocumentDriver(navTimeout time.Duration) *DocumentDriver {
	return &DocumentDriver{client: &http.Client{Timeout: navTimeout}}
}

// NewDocumentDriverWithClient uses client for every request, e.g. one bound
// to an httptest server.
func NewDocumentDriverWithClient(client *http.Client) *DocumentDriver {
	return &DocumentDriver{client: client}
}

func (d *DocumentDriver) NewSession(_ context.Context, viewport Viewport) (Session, error) {
	return &documentSession{client: d.client, viewport: viewport}, nil
}

func (d *DocumentDriver) Close() error {
	return nil
}

type documentSession struct {
	client   *http.Client
	viewport Viewport
	location *url.URL
	doc      *goquery.Document
	focused  *goquery.Selection
}

func (s *documentSession) Goto(ctx context.Context, target string) error {
	u, err := url.Parse(target)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", target, err)
	}
	if s.location != nil {
		u = s.location.ResolveReference(u)
	}
	return s.load(ctx, u)
}

func (s *documentSession) load(ctx context.Context, u *url.URL) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("navigation failed: %w", err)
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return fmt.Errorf("parse %s: %w", u, err)
	}
	s.location = resp.Request.URL
	s.doc = doc
	s.focused = nil
	return nil
}

func (s *documentSession) SetViewport(_ context.Context, viewport Viewport) error {
	s.viewport = viewport
	return nil
}

func (s *documentSession) page() (*goquery.Document, error) {
	if s.doc == nil {
		return nil, fmt.Errorf("no page loaded")
	}
	return s.doc, nil
}

func (s *documentSession) Click(ctx context.Context, label string) error {
	doc, err := s.page()
	if err != nil {
		return err
	}
	sel := doc.Find(labelSelector(label))
	switch {
	case sel.Length() == 0:
		return fmt.Errorf("no element labeled %q", label)
	case sel.Length() > 1:
		return fmt.Errorf("label %q matches %d elements", label, sel.Length())
	case !s.visible(sel):
		return fmt.Errorf("element %q is not visible", label)
	}
	return s.activate(ctx, sel)
}

// activate performs the default action of a link or button.
func (s *documentSession) activate(ctx context.Context, sel *goquery.Selection) error {
	s.focused = sel
	switch goquery.NodeName(sel) {
	case "a":
		href, ok := sel.Attr("href")
		if !ok || strings.HasPrefix(href, "#") {
			return nil
		}
		return s.Goto(ctx, href)
	case "button":
		if _, disabled := sel.Attr("disabled"); disabled {
			return fmt.Errorf("button is disabled")
		}
		if kind := sel.AttrOr("type", "submit"); kind != "submit" {
			return nil
		}
		form := sel.Closest("form")
		if form.Length() == 0 {
			return nil
		}
		return s.submit(ctx, form, sel)
	}
	return nil
}

func (s *documentSession) submit(ctx context.Context, form, submitter *goquery.Selection) error {
	if method := strings.ToLower(form.AttrOr("method", "get")); method != "get" {
		return fmt.Errorf("form method %q not supported", method)
	}
	action, err := url.Parse(form.AttrOr("action", ""))
	if err != nil {
		return fmt.Errorf("invalid form action: %w", err)
	}
	target := s.location.ResolveReference(action)

	values := url.Values{}
	form.Find("input[name]").Each(func(_ int, in *goquery.Selection) {
		if _, disabled := in.Attr("disabled"); disabled {
			return
		}
		switch in.AttrOr("type", "text") {
		case "submit", "button", "image", "reset":
			return
		case "checkbox", "radio":
			if _, checked := in.Attr("checked"); !checked {
				return
			}
		}
		values.Add(in.AttrOr("name", ""), in.AttrOr("value", ""))
	})
	if name := submitter.AttrOr("name", ""); name != "" {
		values.Add(name, submitter.AttrOr("value", ""))
	}
	target.RawQuery = values.Encode()
	target.Fragment = ""
	return s.load(ctx, target)
}

func (s *documentSession) Press(ctx context.Context, key string) error {
	doc, err := s.page()
	if err != nil {
		return err
	}
	switch key {
	case "Tab":
		s.focused = s.nextFocusable(doc)
	case "Enter":
		if s.focused != nil {
			return s.activate(ctx, s.focused)
		}
	}
	return nil
}

// nextFocusable returns the visible focusable element after the current one
// in document order, wrapping to the first.
func (s *documentSession) nextFocusable(doc *goquery.Document) *goquery.Selection {
	var candidates []*goquery.Selection
	doc.Find(focusableSelector).Each(func(_ int, el *goquery.Selection) {
		if el.AttrOr("tabindex", "0") == "-1" {
			return
		}
		if _, disabled := el.Attr("disabled"); disabled {
			return
		}
		if goquery.NodeName(el) == "input" && el.AttrOr("type", "") == "hidden" {
			return
		}
		if s.visible(el) {
			candidates = append(candidates, el)
		}
	})
	if len(candidates) == 0 {
		return nil
	}
	if s.focused != nil {
		for i, el := range candidates {
			if el.IsSelection(s.focused) {
				return candidates[(i+1)%len(candidates)]
			}
		}
	}
	return candidates[0]
}

func (s *documentSession) ScrollToBottom(context.Context) error {
	_, err := s.page()
	return err
}

func (s *documentSession) state(sel *goquery.Selection, count int) ElementState {
	_, disabled := sel.Attr("disabled")
	return ElementState{
		Count:   count,
		Visible: s.visible(sel),
		Enabled: !disabled,
		Text:    normalizeText(sel.Text()),
	}
}

func (s *documentSession) Probe(_ context.Context, label string) (ElementState, error) {
	doc, err := s.page()
	if err != nil {
		return ElementState{}, err
	}
	sel := doc.Find(labelSelector(label))
	if sel.Length() == 0 {
		return ElementState{}, nil
	}
	return s.state(sel.First(), sel.Length()), nil
}

func (s *documentSession) Query(_ context.Context, selector string) ([]ElementState, error) {
	doc, err := s.page()
	if err != nil {
		return nil, err
	}
	sel := doc.Find(selector)
	states := make([]ElementState, 0, sel.Length())
	sel.Each(func(_ int, el *goquery.Selection) {
		states = append(states, s.state(el, sel.Length()))
	})
	return states, nil
}

// TextVisible reports whether any innermost element containing text is
// visible. Matching ignores case and collapses whitespace.
func (s *documentSession) TextVisible(_ context.Context, text string) (bool, error) {
	doc, err := s.page()
	if err != nil {
		return false, err
	}
	needle := foldText(text)
	has := func(el *goquery.Selection) bool {
		return strings.Contains(foldText(el.Text()), needle)
	}
	found := false
	doc.Find("body *").EachWithBreak(func(_ int, el *goquery.Selection) bool {
		if !has(el) {
			return true
		}
		innermost := true
		el.Children().EachWithBreak(func(_ int, child *goquery.Selection) bool {
			if has(child) {
				innermost = false
			}
			return innermost
		})
		if innermost && s.visible(el) {
			found = true
		}
		return !found
	})
	return found, nil
}

func (s *documentSession) Location(context.Context) (string, error) {
	if s.location == nil {
		return "about:blank", nil
	}
	return s.location.String(), nil
}

func (s *documentSession) Title(context.Context) (string, error) {
	doc, err := s.page()
	if err != nil {
		return "", err
	}
	return normalizeText(doc.Find("title").First().Text()), nil
}

func (s *documentSession) FocusedTag(context.Context) (string, error) {
	if s.focused == nil {
		return "BODY", nil
	}
	return strings.ToUpper(goquery.NodeName(s.focused)), nil
}

func (s *documentSession) Close() error {
	s.doc = nil
	s.focused = nil
	return nil
}

// visible reports whether sel and all of its ancestors produce a box at the
// current viewport width.
func (s *documentSession) visible(sel *goquery.Selection) bool {
	shown := true
	sel.Parents().AddSelection(sel).EachWithBreak(func(_ int, el *goquery.Selection) bool {
		if !displayed(el, s.viewport.Width) {
			shown = false
		}
		return shown
	})
	return shown
}

func displayed(el *goquery.Selection, width int) bool {
	if slices.Contains(unrenderedTags, goquery.NodeName(el)) {
		return false
	}
	if _, hidden := el.Attr("hidden"); hidden {
		return false
	}
	if goquery.NodeName(el) == "input" && el.AttrOr("type", "") == "hidden" {
		return false
	}

	classes := strings.Fields(el.AttrOr("class", ""))
	if width >= mdBreakpoint {
		if slices.Contains(classes, "md:hidden") {
			return false
		}
		if slices.ContainsFunc(classes, func(c string) bool { return slices.Contains(mdDisplayClasses, c) }) {
			return true
		}
	}
	return !slices.Contains(classes, "hidden")
}

func normalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func foldText(s string) string {
	return strings.ToLower(normalizeText(s))
}
