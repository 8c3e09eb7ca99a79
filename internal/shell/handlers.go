package shell

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/a-h/templ"

	"github.com/kenali/kenali/core/day"
	"github.com/kenali/kenali/core/handler"
	"github.com/kenali/kenali/core/nav"
	"github.com/kenali/kenali/core/response"
	"github.com/kenali/kenali/core/router"
	"github.com/kenali/kenali/internal/pages"
)

const timeLayout = "Monday, 2 January 2006 15:04 MST"

type routeEntry struct {
	Path   string `json:"path"`
	Name   string `json:"name,omitempty"`
	Href   string `json:"href,omitempty"`
	Title  string `json:"title,omitempty"`
	Depth  int    `json:"depth"`
	Layout bool   `json:"layout"`
}

func (s *Shell) routes(reqCtx) handler.Response {
	infos := s.ctrl.Table().Routes()
	out := make([]routeEntry, 0, len(infos))
	for _, info := range infos {
		e := routeEntry{
			Path:   info.Path,
			Name:   info.Name,
			Title:  info.Meta["title"],
			Depth:  info.Depth,
			Layout: info.Layout,
		}
		if info.Name != "" {
			e.Href, _ = s.ctrl.Href(info.Name, nil)
		}
		out = append(out, e)
	}
	return response.JSON(out)
}

type timeResult struct {
	Time      string `json:"time"`
	Unix      int64  `json:"unix"`
	Timezone  string `json:"timezone"`
	Locale    string `json:"locale"`
	Formatted string `json:"formatted"`
	Relative  string `json:"relative"`
}

// clock renders an instant in a zone and locale: ?tz=Asia/Jakarta&locale=id&at=2026-10-16T10:00:00Z.
// Without at it uses the current time.
func (s *Shell) clock(c reqCtx) handler.Response {
	q := c.Request().URL.Query()
	tz := valueOr(q.Get("tz"), s.timezone)
	locale := valueOr(q.Get("locale"), s.locale)

	t := s.engine.Now()
	if at := q.Get("at"); at != "" {
		parsed, err := s.engine.ParseInZone(at, tz)
		if err != nil {
			return s.timeError(err)
		}
		t = parsed
	}

	t, err := s.localize(t, tz, locale)
	if err != nil {
		return s.timeError(err)
	}
	rel, err := t.FromNow()
	if err != nil {
		return s.timeError(err)
	}

	return response.JSON(timeResult{
		Time:      t.String(),
		Unix:      t.Unix(),
		Timezone:  tz,
		Locale:    t.LocaleTag(),
		Formatted: t.Format(timeLayout),
		Relative:  rel,
	})
}

func (s *Shell) timeError(err error) handler.Response {
	if errors.Is(err, day.ErrInvalidArgument) {
		return response.Error(response.ErrBadRequest.WithMessage(err.Error()).WithError(err))
	}
	return response.Error(err)
}

// page resolves the request path through the navigation controller and
// renders the matched components, outermost layout first.
func (s *Shell) page(c reqCtx) handler.Response {
	req := c.Request()
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		return response.Error(router.ErrMethodNotAllowed)
	}

	act, err := s.ctrl.Activate(c, req.URL.Path)
	switch {
	case err == nil:
	case errors.Is(err, nav.ErrNotFound):
		home, _ := s.ctrl.Href(s.homeName(), nil)
		return s.render(req.URL.Path, nav.RouteInfo{}, pages.Wrap(pages.Layout(), pages.NotFound(valueOr(home, "/"))), http.StatusNotFound)
	case errors.Is(err, nav.ErrLoadFailed):
		return s.render(req.URL.Path, nav.RouteInfo{}, pages.Wrap(pages.Layout(), pages.Unavailable()), http.StatusServiceUnavailable)
	default:
		return response.Error(err)
	}

	views := act.Views
	view := views[len(views)-1].Component
	for i := len(views) - 2; i >= 0; i-- {
		view = pages.Wrap(views[i].Component, view)
	}
	return s.render(act.Match.Path, act.Leaf().Route, view, http.StatusOK)
}

func (s *Shell) render(path string, leaf nav.RouteInfo, view templ.Component, status int) handler.Response {
	page, err := s.pageData(path, leaf)
	if err != nil {
		return response.Error(err)
	}
	return response.TemplWithStatus(templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return view.Render(pages.WithPage(ctx, page), w)
	}), status)
}

func (s *Shell) pageData(path string, leaf nav.RouteInfo) (*pages.Page, error) {
	now, err := s.now(s.timezone, s.locale)
	if err != nil {
		return nil, err
	}
	started, err := s.localize(s.engine.From(s.started), s.timezone, s.locale)
	if err != nil {
		return nil, err
	}

	title := leaf.Meta["title"]
	if title == "" {
		title = leaf.Name
	}

	table := s.ctrl.Table()
	links := make([]pages.Link, 0, len(s.menu))
	for _, name := range s.menu {
		href, err := s.ctrl.Href(name, nil)
		if err != nil {
			continue
		}
		info, _ := table.ByName(name)
		links = append(links, pages.Link{
			Label:  valueOr(info.Meta["title"], name),
			Href:   href,
			Active: leaf.Name != "" && leaf.Name == name,
		})
	}

	return &pages.Page{
		AppName: s.appName,
		Title:   title,
		Path:    path,
		Lang:    now.LocaleTag(),
		Links:   links,
		Assets:  assetsPrefix,
		Now:     now,
		Started: started,
	}, nil
}

// homeName is the first menu entry, the target of "back to home" links.
func (s *Shell) homeName() string {
	if len(s.menu) == 0 {
		return ""
	}
	return s.menu[0]
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
