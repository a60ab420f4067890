// Package audit inspects rendered markup for the guarantees the end-to-end
// suite relies on: unique data-testid labels, usable buttons and a top-level
// heading.
package audit

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/FACorreiaa/go-nextapp/internal/app/models"
)

const labelAttr = "data-testid"

type Finding struct {
	Route   string
	Label   string
	Problem string
}

func (f Finding) String() string {
	if f.Label == "" {
		return fmt.Sprintf("%s: %s", f.Route, f.Problem)
	}
	return fmt.Sprintf("%s: %s: %s", f.Route, f.Label, f.Problem)
}

// Inspect parses a rendered page and reports every violation found.
func Inspect(route string, r io.Reader) ([]Finding, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", route, err)
	}

	var findings []Finding
	counts := map[string]int{}
	var order []string
	doc.Find("[" + labelAttr + "]").Each(func(_ int, s *goquery.Selection) {
		label, _ := s.Attr(labelAttr)
		if counts[label] == 0 {
			order = append(order, label)
		}
		counts[label]++
	})
	for _, label := range order {
		if counts[label] > 1 {
			findings = append(findings, Finding{
				Route:   route,
				Label:   label,
				Problem: fmt.Sprintf("%v (%d occurrences)", models.ErrDuplicateLabel, counts[label]),
			})
		}
	}

	doc.Find("button").Each(func(i int, s *goquery.Selection) {
		label, ok := s.Attr(labelAttr)
		if !ok {
			label = fmt.Sprintf("button[%d]", i)
		}
		if _, disabled := s.Attr("disabled"); disabled {
			findings = append(findings, Finding{Route: route, Label: label, Problem: "button is disabled"})
		}
		if strings.TrimSpace(s.Text()) == "" {
			findings = append(findings, Finding{Route: route, Label: label, Problem: "button has no text"})
		}
	})

	if doc.Find("h1").Length() == 0 {
		findings = append(findings, Finding{Route: route, Problem: "page has no h1"})
	}
	return findings, nil
}

// Error folds findings into a single error, nil when there are none.
func Error(findings []Finding) error {
	if len(findings) == 0 {
		return nil
	}
	lines := make([]string, 0, len(findings))
	for _, f := range findings {
		lines = append(lines, f.String())
	}
	return fmt.Errorf("markup audit failed: %s", strings.Join(lines, "; "))
}
