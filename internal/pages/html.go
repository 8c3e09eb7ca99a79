package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// htmlWriter accumulates the first write error so components read top-down.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(parts ...string) {
	for _, s := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, s)
	}
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) render(ctx context.Context, c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

// section renders the common page body: a heading and escaped paragraphs.
func section(class, heading string, paragraphs ...string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<section class="`, templ.EscapeString(class), `"><h1>`)
		h.text(heading)
		h.raw(`</h1>`)
		for _, p := range paragraphs {
			h.raw(`<p>`)
			h.text(p)
			h.raw(`</p>`)
		}
		h.raw(`</section>`)
		return h.err
	})
}
