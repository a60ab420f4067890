package button

import (
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func render(t *testing.T, props Props, children ...string) *goquery.Document {
	t.Helper()

	var sb strings.Builder
	var err error
	if len(children) > 0 {
		err = Button(props, Text(children[0])).Render(context.Background(), &sb)
	} else {
		err = Button(props).Render(context.Background(), &sb)
	}
	if err != nil {
		t.Fatalf("failed to render button: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("failed to read rendered HTML: %v", err)
	}
	return doc
}

func TestButton(t *testing.T) {
	t.Run("it renders a button element", func(t *testing.T) {
		doc := render(t, Props{ID: "my-button", TestID: "hero-cta-primary"}, "Get Started")

		if doc.Find("button").Length() != 1 {
			t.Fatal("expected a button element to be rendered, but it wasn't")
		}
		s := doc.Find("button")
		if id, _ := s.Attr("id"); id != "my-button" {
			t.Errorf(`expected id to be "my-button", but got "%s"`, id)
		}
		if typeAttr, _ := s.Attr("type"); typeAttr != "button" {
			t.Errorf(`expected type to be "button", but got "%s"`, typeAttr)
		}
		if testID, _ := s.Attr("data-testid"); testID != "hero-cta-primary" {
			t.Errorf(`expected data-testid "hero-cta-primary", but got "%s"`, testID)
		}
		if s.Text() != "Get Started" {
			t.Errorf(`expected text "Get Started", but got "%s"`, s.Text())
		}
	})

	t.Run("it renders an anchor element when href is provided", func(t *testing.T) {
		doc := render(t, Props{ID: "my-link-button", Href: "/about"}, "About")

		if doc.Find("a").Length() == 0 {
			t.Fatal("expected an anchor element to be rendered, but it wasn't")
		}
		if href, _ := doc.Find("a").Attr("href"); href != "/about" {
			t.Errorf(`expected href to be "/about", but got "%s"`, href)
		}
		if _, ok := doc.Find("a").Attr("type"); ok {
			t.Error("anchors must not carry a type attribute")
		}
	})

	t.Run("it renders submit buttons with name and value", func(t *testing.T) {
		doc := render(t, Props{Type: TypeSubmit, Name: "menu_toggles", Value: "1"}, "Menu")

		s := doc.Find("button")
		if typeAttr, _ := s.Attr("type"); typeAttr != "submit" {
			t.Errorf(`expected type "submit", got "%s"`, typeAttr)
		}
		if name, _ := s.Attr("name"); name != "menu_toggles" {
			t.Errorf(`expected name "menu_toggles", got "%s"`, name)
		}
		if value, _ := s.Attr("value"); value != "1" {
			t.Errorf(`expected value "1", got "%s"`, value)
		}
	})

	t.Run("it applies variant and size classes", func(t *testing.T) {
		doc := render(t, Props{Variant: VariantInverse, Size: SizeLg})

		classAttr, _ := doc.Find("button").Attr("class")
		for _, class := range []string{"bg-white", "px-8", "py-3"} {
			if !strings.Contains(classAttr, class) {
				t.Errorf("expected class %q in %q", class, classAttr)
			}
		}
	})

	t.Run("custom classes override defaults", func(t *testing.T) {
		doc := render(t, Props{Class: "bg-red-600"})

		classAttr, _ := doc.Find("button").Attr("class")
		if strings.Contains(classAttr, "bg-blue-600") {
			t.Errorf("expected bg-blue-600 to be merged away, got %q", classAttr)
		}
		if !strings.Contains(classAttr, "bg-red-600") {
			t.Errorf("expected bg-red-600 in %q", classAttr)
		}
	})

	t.Run("it escapes text", func(t *testing.T) {
		doc := render(t, Props{}, "<b>bold</b>")

		if doc.Find("button b").Length() != 0 {
			t.Error("expected child text to be escaped")
		}
	})

	t.Run("disabled buttons carry the attribute", func(t *testing.T) {
		doc := render(t, Props{Disabled: true})

		if _, ok := doc.Find("button").Attr("disabled"); !ok {
			t.Error("expected disabled attribute")
		}
	})
}

func TestButtonChildren(t *testing.T) {
	doc := render(t, Props{})

	if doc.Find("button").Text() != "" {
		t.Errorf("expected button to have no child content, but it did")
	}
}
