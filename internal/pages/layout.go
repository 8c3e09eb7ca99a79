package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Layout is the application shell: document head, navigation bar and a main
// element holding the child component.
func Layout() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := FromContext(ctx)
		children := templ.GetChildren(ctx)
		ctx = templ.ClearChildren(ctx)

		lang := p.Lang
		if lang == "" {
			lang = "id"
		}
		title := p.AppName
		if p.Title != "" && p.AppName != "" {
			title = p.Title + " · " + p.AppName
		} else if p.Title != "" {
			title = p.Title
		}

		h := &htmlWriter{w: w}
		h.raw(`<!DOCTYPE html><html lang="`, templ.EscapeString(lang), `"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		h.text(title)
		h.raw(`</title>`)
		if p.Assets != "" {
			h.raw(`<link rel="stylesheet" href="`, templ.EscapeString(p.Assets+"/app.css"), `">`)
		}
		h.raw(`</head><body><nav><ul>`)
		for _, l := range p.Links {
			h.raw(`<li><a href="`, templ.EscapeString(l.Href), `"`)
			if l.Active {
				h.raw(` class="active" aria-current="page"`)
			}
			h.raw(`>`)
			h.text(l.Label)
			h.raw(`</a></li>`)
		}
		h.raw(`</ul></nav><main>`)
		h.render(ctx, children)
		h.raw(`</main></body></html>`)
		return h.err
	})
}

// Wrap renders child inside parent's children slot.
func Wrap(parent, child templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return parent.Render(templ.WithChildren(ctx, child), w)
	})
}
