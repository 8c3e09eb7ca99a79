package pages

import (
	"context"

	"github.com/kenali/kenali/core/day"
)

// Link is a navigation entry rendered by the layout.
type Link struct {
	Label  string
	Href   string
	Active bool
}

// Page carries the per-request data every component renders from.
type Page struct {
	AppName string
	// Title of the matched route; empty for the not-found page.
	Title string
	Path  string
	Lang  string
	Links []Link
	// Assets is the URL prefix the static files are served under.
	Assets string

	// Now is the request time in the configured timezone and locale.
	Now day.Time
	// Started is the process start time in the same timezone and locale.
	Started day.Time
}

type pageKey struct{}

// WithPage stores p in ctx for the components rendered below it.
func WithPage(ctx context.Context, p *Page) context.Context {
	return context.WithValue(ctx, pageKey{}, p)
}

// FromContext returns the page stored by WithPage, or an empty page.
func FromContext(ctx context.Context) *Page {
	if p, ok := ctx.Value(pageKey{}).(*Page); ok && p != nil {
		return p
	}
	return &Page{}
}
