package pages_test

import (
	"bytes"
	"context"
	"io/fs"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kenali/kenali/core/day"
	"github.com/kenali/kenali/internal/pages"
)

func render(t *testing.T, ctx context.Context, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(ctx, &buf))
	return buf.String()
}

func engine() *day.Engine {
	now := time.Date(2026, time.October, 19, 10, 0, 0, 0, time.UTC)
	return day.Configure(day.New(
		day.WithClock(func() time.Time { return now }),
		day.WithDefaultLocale("id"),
	))
}

func TestLayoutWrapsChild(t *testing.T) {
	t.Parallel()

	ctx := pages.WithPage(context.Background(), &pages.Page{
		AppName: "Kenali",
		Title:   "Face Recognition",
		Lang:    "id",
		Links: []pages.Link{
			{Label: "Beranda", Href: "/"},
			{Label: "Face Recognition", Href: "/recognition", Active: true},
		},
	})

	html := render(t, ctx, pages.Wrap(pages.Layout(), pages.Recognition()))

	assert.Contains(t, html, `<html lang="id">`)
	assert.Contains(t, html, `<title>Face Recognition · Kenali</title>`)
	assert.Contains(t, html, `<a href="/recognition" class="active" aria-current="page">Face Recognition</a>`)
	assert.Contains(t, html, `<main><section class="recognition"><h1>Face Recognition</h1>`)
	assert.Contains(t, html, `</section></main></body></html>`)
}

func TestNestedLayouts(t *testing.T) {
	t.Parallel()

	inner := pages.Wrap(pages.Layout(), pages.GenderDetector())
	html := render(t, context.Background(), pages.Wrap(pages.Layout(), inner))

	assert.Equal(t, 2, bytes.Count([]byte(html), []byte("<main>")))
	assert.Equal(t, 1, bytes.Count([]byte(html), []byte(`class="gender-detector"`)))
}

func TestLayoutEscapes(t *testing.T) {
	t.Parallel()

	ctx := pages.WithPage(context.Background(), &pages.Page{
		Title: "<script>",
		Links: []pages.Link{{Label: "a&b", Href: `/x?"y"`}},
	})
	html := render(t, ctx, pages.Layout())

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, "a&amp;b")
	assert.Contains(t, html, `/x?&#34;y&#34;`)
}

func TestHome(t *testing.T) {
	t.Parallel()

	e := engine()
	now, err := e.Now().In("Asia/Jakarta")
	require.NoError(t, err)

	ctx := pages.WithPage(context.Background(), &pages.Page{
		Lang:    "id",
		Now:     now,
		Started: now.Subtract(3, day.Day),
	})
	html := render(t, ctx, pages.Home())

	assert.Contains(t, html, "<h1>Selamat datang</h1>")
	assert.Contains(t, html, "Senin, 19 Oktober 2026 17:00 WIB")
	assert.Contains(t, html, "3 hari yang lalu")
}

func TestHomeWithoutTime(t *testing.T) {
	t.Parallel()

	html := render(t, context.Background(), pages.Home())
	assert.Equal(t, `<section class="home"><h1>Selamat datang</h1></section>`, html)
}

func TestNotFound(t *testing.T) {
	t.Parallel()

	ctx := pages.WithPage(context.Background(), &pages.Page{Path: "/nope"})
	html := render(t, ctx, pages.NotFound("/app/"))

	assert.Contains(t, html, "<code>/nope</code>")
	assert.Contains(t, html, `<a href="/app/">`)
}

func TestAssets(t *testing.T) {
	t.Parallel()

	css, err := fs.ReadFile(pages.Assets(), "app.css")
	require.NoError(t, err)
	assert.Contains(t, string(css), "nav a.active")

	ctx := pages.WithPage(context.Background(), &pages.Page{Assets: "/assets"})
	assert.Contains(t, render(t, ctx, pages.Layout()), `<link rel="stylesheet" href="/assets/app.css">`)
}
