package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// NotFound is rendered for paths no route matches. home is the link target
// back to the start page.
func NotFound(home string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := FromContext(ctx)
		h := &htmlWriter{w: w}
		h.raw(`<section class="not-found"><h1>404</h1><p>Halaman <code>`)
		h.text(p.Path)
		h.raw(`</code> tidak ditemukan.</p><p><a href="`, templ.EscapeString(home), `">Kembali ke beranda</a></p></section>`)
		return h.err
	})
}

// Unavailable is rendered when a page component failed to load.
func Unavailable() templ.Component {
	return section("unavailable", "503", "Halaman sedang tidak tersedia. Silakan coba lagi.")
}
