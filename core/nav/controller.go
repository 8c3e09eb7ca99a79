package nav

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/kenali/kenali/core/logger"
	"github.com/kenali/kenali/pkg/async"
)

// Controller resolves paths against a table under a base path and activates
// the matched components. It holds no per-client state; see History.
type Controller[T any] struct {
	table  *Table[T]
	base   string
	logger *slog.Logger
}

type controllerConfig struct {
	base   string
	logger *slog.Logger
}

// Option configures a Controller.
type Option func(*controllerConfig)

// WithBase mounts the table under a path prefix, like a web history base.
// "/" and "" mean no prefix.
func WithBase(base string) Option {
	return func(c *controllerConfig) {
		c.base = base
	}
}

// WithLogger sets the logger for navigation events.
func WithLogger(l *slog.Logger) Option {
	return func(c *controllerConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// View is one activated level of a match: a layout or the leaf page.
type View[T any] struct {
	Route     RouteInfo
	Component T
}

// Activation is a resolved and fully loaded navigation target.
type Activation[T any] struct {
	Match *Match[T]
	// Views holds loaded components from the outermost layout to the leaf.
	// Routes without a component are skipped.
	Views []View[T]
}

// Leaf returns the innermost view.
func (a *Activation[T]) Leaf() View[T] {
	return a.Views[len(a.Views)-1]
}

// NewController creates a controller over table.
func NewController[T any](table *Table[T], opts ...Option) *Controller[T] {
	cfg := &controllerConfig{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	base := cleanPath(cfg.base)
	if base == "/" {
		base = ""
	}

	return &Controller[T]{
		table:  table,
		base:   base,
		logger: cfg.logger,
	}
}

// Table returns the controller's table.
func (c *Controller[T]) Table() *Table[T] {
	return c.table
}

// Base returns the normalized base path ("" when unset).
func (c *Controller[T]) Base() string {
	return c.base
}

// Resolve strips the base and matches the rest. Paths outside the base fail
// with ErrNotFound.
func (c *Controller[T]) Resolve(path string) (*Match[T], error) {
	rel, ok := c.strip(stripQuery(path))
	if !ok {
		return nil, fmt.Errorf("%w: %q is outside base %q", ErrNotFound, path, c.base)
	}
	return c.table.Resolve(rel)
}

// Href builds the full path, base included, of a named route.
func (c *Controller[T]) Href(name string, params map[string]string) (string, error) {
	p, err := c.table.Href(name, params)
	if err != nil {
		return "", err
	}
	return c.withBase(p), nil
}

// Activate resolves path and loads every component of the match. Loads run
// concurrently; Activate returns only after all of them are ready. A failed
// load fails the whole activation with ErrLoadFailed and is not retried.
func (c *Controller[T]) Activate(ctx context.Context, path string) (*Activation[T], error) {
	began := time.Now()

	m, err := c.Resolve(path)
	if err != nil {
		return nil, err
	}

	type pending struct {
		route  RouteInfo
		future *async.Future[T]
	}

	loads := make([]pending, 0, len(m.chain))
	for _, r := range m.chain {
		if r.component == nil {
			continue
		}
		loads = append(loads, pending{
			route:  r.info,
			future: start(ctx, r.component),
		})
	}

	views := make([]View[T], 0, len(loads))
	for _, p := range loads {
		v, err := p.future.AwaitContext(ctx)
		if err == nil && isNil(v) {
			err = ErrNilView
		}
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
				return nil, ctxErr
			}
			c.logger.WarnContext(ctx, "component load failed",
				logger.Component("nav"),
				logger.Route(p.route.Name),
				logger.Path(m.Path),
				logger.Error(err),
			)
			return nil, fmt.Errorf("%w: route %q: %w", ErrLoadFailed, routeLabel(p.route), err)
		}
		views = append(views, View[T]{Route: p.route, Component: v})
	}

	c.logger.DebugContext(ctx, "navigation activated",
		logger.Component("nav"),
		logger.Route(m.Name()),
		logger.Path(m.Path),
		logger.Elapsed(began),
	)

	return &Activation[T]{Match: m, Views: views}, nil
}

// NewHistory starts a navigation session with no current location.
func (c *Controller[T]) NewHistory() *History[T] {
	return &History[T]{ctrl: c}
}

func (c *Controller[T]) strip(path string) (string, bool) {
	if c.base == "" {
		return path, true
	}
	if path == c.base {
		return "/", true
	}
	if rest, ok := strings.CutPrefix(path, c.base+"/"); ok {
		return "/" + rest, true
	}
	return "", false
}

func (c *Controller[T]) withBase(p string) string {
	if c.base == "" {
		return p
	}
	if p == "/" {
		return c.base
	}
	return c.base + p
}

func routeLabel(r RouteInfo) string {
	if r.Name != "" {
		return r.Name
	}
	return r.Path
}
