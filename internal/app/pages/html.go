package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// htmlWriter keeps the first write error so components can emit markup
// without checking every call.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newWriter(ctx context.Context, w io.Writer) *htmlWriter {
	return &htmlWriter{ctx: ctx, w: w}
}

func (hw *htmlWriter) raw(s string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, s)
}

func (hw *htmlWriter) text(s string) {
	hw.raw(templ.EscapeString(s))
}

// open writes a start tag. attrs are name/value pairs; pairs with an empty
// value are skipped.
func (hw *htmlWriter) open(tag string, attrs ...string) {
	hw.raw("<" + tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		if attrs[i+1] == "" {
			continue
		}
		hw.raw(" " + attrs[i] + `="` + templ.EscapeString(attrs[i+1]) + `"`)
	}
	hw.raw(">")
}

func (hw *htmlWriter) close(tag string) {
	hw.raw("</" + tag + ">")
}

// element writes a full element with escaped text content.
func (hw *htmlWriter) element(tag, text string, attrs ...string) {
	hw.open(tag, attrs...)
	hw.text(text)
	hw.close(tag)
}

func (hw *htmlWriter) component(c templ.Component) {
	if hw.err != nil || c == nil {
		return
	}
	hw.err = c.Render(hw.ctx, hw.w)
}
