package shell

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/kenali/kenali/core/day"
	"github.com/kenali/kenali/core/handler"
	"github.com/kenali/kenali/core/health"
	"github.com/kenali/kenali/core/logger"
	"github.com/kenali/kenali/core/middleware"
	"github.com/kenali/kenali/core/nav"
	"github.com/kenali/kenali/core/response"
	"github.com/kenali/kenali/core/router"
	"github.com/kenali/kenali/core/static"
	"github.com/kenali/kenali/internal/pages"
)

const assetsPrefix = "/assets"

// ErrInvalidConfig is returned by New for an unusable timezone or locale.
var ErrInvalidConfig = errors.New("shell: invalid configuration")

type reqCtx = *router.Context

// Shell serves the application pages and the small JSON API.
type Shell struct {
	ctrl     *nav.Controller[templ.Component]
	engine   *day.Engine
	logger   *slog.Logger
	appName  string
	timezone string
	locale   string
	started  time.Time
	menu     []string

	router router.Router[reqCtx]
}

// Option configures a Shell.
type Option func(*Shell)

func WithLogger(l *slog.Logger) Option {
	return func(s *Shell) {
		if l != nil {
			s.logger = l
		}
	}
}

func WithAppName(name string) Option {
	return func(s *Shell) {
		s.appName = name
	}
}

// WithTimezone sets the IANA zone pages render times in.
func WithTimezone(tz string) Option {
	return func(s *Shell) {
		s.timezone = tz
	}
}

// WithLocale sets the locale pages render in. It must be loaded in the engine.
func WithLocale(tag string) Option {
	return func(s *Shell) {
		s.locale = tag
	}
}

// WithStartTime sets the process start shown on the home page.
func WithStartTime(t time.Time) Option {
	return func(s *Shell) {
		s.started = t
	}
}

// WithMenu sets the route names listed in the navigation bar.
func WithMenu(names ...string) Option {
	return func(s *Shell) {
		s.menu = names
	}
}

// New builds the HTTP handler over a navigation controller and a date engine.
func New(ctrl *nav.Controller[templ.Component], engine *day.Engine, opts ...Option) (*Shell, error) {
	s := &Shell{
		ctrl:     ctrl,
		engine:   engine,
		logger:   logger.Nop(),
		timezone: "UTC",
		locale:   engine.DefaultLocale(),
		started:  time.Now(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if _, err := s.now(s.timezone, s.locale); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	for _, name := range s.menu {
		if _, ok := ctrl.Table().ByName(name); !ok {
			return nil, fmt.Errorf("%w: menu entry: %w %q", ErrInvalidConfig, nav.ErrUnknownName, name)
		}
	}

	r := router.New(router.WithLogger[reqCtx](s.logger), router.WithErrorHandler[reqCtx](s.handleError))
	r.Use(
		middleware.RequestID[reqCtx](),
		middleware.LoggingWithConfig[reqCtx](middleware.LoggingConfig{
			Logger: s.logger,
			Skip: func(c handler.Context) bool {
				p := c.Request().URL.Path
				return p == "/healthz" || p == "/readyz" || strings.HasPrefix(p, assetsPrefix+"/")
			},
		}),
	)
	r.Get("/healthz", health.Liveness[reqCtx])
	r.Get("/readyz", health.Readiness[reqCtx](s.logger,
		health.Check{Name: "day", Fn: s.checkDay},
		health.Check{Name: "nav", Fn: s.checkNav},
	))
	r.Get(assetsPrefix+"/{file:.+}", static.FS[reqCtx](pages.Assets(),
		static.WithStripPrefix(assetsPrefix),
		static.WithMaxAge(3600),
	))
	r.Route("/api", func(api router.Router[reqCtx]) {
		api.Get("/routes", s.routes)
		api.Get("/time", s.clock)
		api.Fallback(func(reqCtx) handler.Response {
			return response.Error(response.ErrNotFound)
		})
	})
	r.Fallback(s.page)
	s.router = r

	return s, nil
}

func (s *Shell) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Endpoints lists the registered HTTP routes.
func (s *Shell) Endpoints() []router.Route {
	return s.router.Routes()
}

// now returns the current instant in the given zone and locale.
func (s *Shell) now(tz, locale string) (day.Time, error) {
	return s.localize(s.engine.Now(), tz, locale)
}

func (s *Shell) localize(t day.Time, tz, locale string) (day.Time, error) {
	t, err := t.Locale(locale)
	if err != nil {
		return t, err
	}
	return t.In(tz)
}

// checkDay verifies the date engine can render in the configured zone and locale.
func (s *Shell) checkDay(context.Context) error {
	for _, c := range []day.Capability{day.Duration, day.RelativeTime, day.Timezone, day.UTC} {
		if !s.engine.Has(c) {
			return fmt.Errorf("%w: %s", day.ErrCapabilityDisabled, c)
		}
	}
	_, err := s.now(s.timezone, s.locale)
	return err
}

// checkNav loads the components of the home page.
func (s *Shell) checkNav(ctx context.Context) error {
	home, err := s.ctrl.Href(s.homeName(), nil)
	if err != nil {
		home = valueOr(s.ctrl.Base(), "/")
	}
	_, err = s.ctrl.Activate(ctx, home)
	return err
}

func (s *Shell) handleError(c reqCtx, err error) {
	status := router.StatusOf(err)
	req := c.Request()

	if status >= http.StatusInternalServerError {
		id, _ := middleware.GetRequestID(c)
		s.logger.ErrorContext(c, "request failed",
			logger.Component("shell"),
			logger.Method(req.Method),
			logger.Path(req.URL.Path),
			logger.RequestID(id),
			logger.Error(err),
		)
	}

	w := c.ResponseWriter()
	if _, written := router.Status(w); written {
		return
	}

	if strings.HasPrefix(req.URL.Path, "/api/") {
		var he response.HTTPError
		if !errors.As(err, &he) {
			he = response.HTTPError{Status: status, Code: "error", Message: http.StatusText(status)}
			if status < http.StatusInternalServerError {
				he.Message = err.Error()
			}
		}
		_ = response.ErrorJSON(he)(w, req)
		return
	}

	msg := http.StatusText(status)
	if status < http.StatusInternalServerError {
		msg = err.Error()
	}
	http.Error(w, msg, status)
}
