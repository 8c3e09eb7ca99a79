package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

const homeTimeLayout = "Monday, 2 January 2006 15:04 MST"

var homeText = map[string][2]string{
	"id": {"Selamat datang", "Waktu sekarang"},
	"en": {"Welcome", "Current time"},
}

// Home shows the current time and how long ago the process started, both in
// the page's locale.
func Home() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := FromContext(ctx)
		text, ok := homeText[p.Lang]
		if !ok {
			text = homeText["id"]
		}

		h := &htmlWriter{w: w}
		h.raw(`<section class="home"><h1>`)
		h.text(text[0])
		h.raw(`</h1>`)

		if !p.Now.IsZero() {
			h.raw(`<p>`)
			h.text(text[1])
			h.raw(`: <time datetime="`, templ.EscapeString(p.Now.String()), `">`)
			h.text(p.Now.Format(homeTimeLayout))
			h.raw(`</time></p>`)
		}

		if !p.Now.IsZero() && !p.Started.IsZero() {
			if since, err := p.Started.From(p.Now); err == nil {
				h.raw(`<p class="uptime"><time datetime="`, templ.EscapeString(p.Started.String()), `">`)
				h.text(since)
				h.raw(`</time></p>`)
			}
		}

		h.raw(`</section>`)
		return h.err
	})
}
