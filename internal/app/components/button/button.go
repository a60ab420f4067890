package button

import (
	"context"
	"io"
	"strings"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"
)

type Variant string
type Size string
type Type string

const (
	VariantPrimary Variant = "primary"
	VariantOutline Variant = "outline"
	VariantInverse Variant = "inverse"
	VariantGhost   Variant = "ghost"

	SizeDefault Size = "default"
	SizeLg      Size = "lg"
	SizeXl      Size = "xl"
	SizeIcon    Size = "icon"

	TypeButton Type = "button"
	TypeSubmit Type = "submit"
)

// Props configures a button. An Href renders an anchor instead.
type Props struct {
	ID       string
	TestID   string
	Class    string
	Href     string
	Type     Type
	Variant  Variant
	Size     Size
	Name     string
	Value    string
	Label    string // aria-label
	Disabled bool
}

func (p Props) variantClasses() string {
	switch p.Variant {
	case VariantOutline:
		return "border-2 border-white text-white hover:bg-blue-700"
	case VariantInverse:
		return "bg-white text-blue-600 hover:bg-blue-50"
	case VariantGhost:
		return "text-gray-700 hover:text-blue-600 dark:text-gray-300"
	default:
		return "bg-blue-600 text-white hover:bg-blue-700"
	}
}

func (p Props) sizeClasses() string {
	switch p.Size {
	case SizeLg:
		return "px-8 py-3"
	case SizeXl:
		return "px-10 py-4 text-lg font-bold"
	case SizeIcon:
		return "p-2"
	default:
		return "px-6 py-2"
	}
}

// Classes returns the merged class list; Class overrides conflicting
// defaults.
func (p Props) Classes() string {
	return twmerge.Merge(
		"inline-flex items-center justify-center gap-2 rounded-lg font-semibold transition-colors",
		p.variantClasses(),
		p.sizeClasses(),
		p.Class,
	)
}

// Button renders a button (or anchor) with the given children.
func Button(props Props, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		tag := "button"
		if props.Href != "" {
			tag = "a"
		}
		b.WriteString("<" + tag)
		attr(&b, "id", props.ID)
		attr(&b, "data-testid", props.TestID)
		if tag == "a" {
			attr(&b, "href", props.Href)
		} else {
			t := props.Type
			if t == "" {
				t = TypeButton
			}
			attr(&b, "type", string(t))
			attr(&b, "name", props.Name)
			attr(&b, "value", props.Value)
			if props.Disabled {
				b.WriteString(" disabled")
			}
		}
		attr(&b, "aria-label", props.Label)
		attr(&b, "class", props.Classes())
		b.WriteString(">")
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		for _, child := range children {
			if err := child.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</"+tag+">")
		return err
	})
}

// Text renders escaped text as a child component.
func Text(value string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(value))
		return err
	})
}

func attr(b *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	b.WriteString(" " + name + `="` + templ.EscapeString(value) + `"`)
}
