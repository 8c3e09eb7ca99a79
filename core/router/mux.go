package router

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"slices"
	"strings"

	gmux "github.com/gorilla/mux"

	"github.com/kenali/kenali/core/handler"
	"github.com/kenali/kenali/core/logger"
)

// mux adapts a gorilla/mux router to the generic handler types.
type mux[C handler.Context] struct {
	router       *gmux.Router
	middlewares  []handler.Middleware[C]
	errorHandler handler.ErrorHandler[C]
	newContext   func(http.ResponseWriter, *http.Request, map[string]string) C
	logger       *slog.Logger
	strictSlash  bool

	// registered is set once the first route is added; middleware must come first.
	registered bool
	fallback   handler.HandlerFunc[C]
}

func newMux[C handler.Context](opts ...Option[C]) *mux[C] {
	m := &mux[C]{
		router:       gmux.NewRouter(),
		errorHandler: defaultErrorHandler[C],
		logger:       logger.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.newContext == nil {
		var zero C
		if _, ok := any(zero).(*Context); !ok {
			panic(ErrNoContextFactory)
		}
		m.newContext = func(w http.ResponseWriter, r *http.Request, params map[string]string) C {
			return any(NewContext(w, r, params)).(C)
		}
	}

	m.router.StrictSlash(m.strictSlash)
	m.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.dispatch(w, r, handler.Chain(m.middlewares, m.notFound()))
	})
	m.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.dispatch(w, r, handler.Chain(m.middlewares, failWith[C](ErrMethodNotAllowed)))
	})

	return m
}

func (m *mux[C]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m.router.ServeHTTP(w, r)
}

func (m *mux[C]) Get(pattern string, h handler.HandlerFunc[C]) {
	m.Method(pattern, h, http.MethodGet)
}

func (m *mux[C]) Post(pattern string, h handler.HandlerFunc[C]) {
	m.Method(pattern, h, http.MethodPost)
}

func (m *mux[C]) Put(pattern string, h handler.HandlerFunc[C]) {
	m.Method(pattern, h, http.MethodPut)
}

func (m *mux[C]) Delete(pattern string, h handler.HandlerFunc[C]) {
	m.Method(pattern, h, http.MethodDelete)
}

func (m *mux[C]) Head(pattern string, h handler.HandlerFunc[C]) {
	m.Method(pattern, h, http.MethodHead)
}

// Handle registers h for every HTTP method.
func (m *mux[C]) Handle(pattern string, h handler.HandlerFunc[C]) {
	m.handle(pattern, h)
}

// Method registers h for the given HTTP methods.
func (m *mux[C]) Method(pattern string, h handler.HandlerFunc[C], methods ...string) {
	if len(methods) == 0 {
		panic(fmt.Sprintf("router: no methods given for %q", pattern))
	}
	upper := make([]string, len(methods))
	for i, method := range methods {
		upper[i] = strings.ToUpper(method)
	}
	m.handle(pattern, h).Methods(upper...)
}

func (m *mux[C]) handle(pattern string, h handler.HandlerFunc[C]) *gmux.Route {
	if h == nil {
		panic(fmt.Sprintf("router: nil handler for %q", pattern))
	}
	if !strings.HasPrefix(pattern, "/") {
		panic(fmt.Errorf("%w: %q must begin with '/'", ErrInvalidPattern, pattern))
	}
	m.registered = true

	fn := handler.Chain(slices.Clone(m.middlewares), h)
	route := m.router.Handle(pattern, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.dispatch(w, r, fn)
	}))
	if err := route.GetError(); err != nil {
		panic(fmt.Errorf("%w: %q: %v", ErrInvalidPattern, pattern, err))
	}
	return route
}

// Fallback replaces the not-found behavior of this router.
func (m *mux[C]) Fallback(h handler.HandlerFunc[C]) {
	m.fallback = h
	if m.router.NotFoundHandler == nil {
		// Sub-routers only answer unmatched paths under their prefix once a fallback is set.
		m.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m.dispatch(w, r, handler.Chain(m.middlewares, m.notFound()))
		})
	}
}

func (m *mux[C]) Use(middlewares ...handler.Middleware[C]) {
	if m.registered {
		panic("router: all middlewares must be defined before routes")
	}
	m.middlewares = append(m.middlewares, middlewares...)
}

// Route creates a sub-router for every pattern under prefix.
// The sub-router inherits the middleware registered so far.
func (m *mux[C]) Route(prefix string, fn func(r Router[C])) Router[C] {
	if fn == nil {
		panic(fmt.Sprintf("router: nil route function for %q", prefix))
	}
	if !strings.HasPrefix(prefix, "/") {
		panic(fmt.Errorf("%w: %q must begin with '/'", ErrInvalidPattern, prefix))
	}
	m.registered = true

	base := strings.TrimSuffix(prefix, "/")
	if base == "" {
		base = "/"
	}
	sub := &mux[C]{
		router:       m.router.PathPrefix(base).Subrouter(),
		middlewares:  slices.Clone(m.middlewares),
		errorHandler: m.errorHandler,
		newContext:   m.newContext,
		logger:       m.logger,
		strictSlash:  m.strictSlash,
	}
	sub.router.StrictSlash(m.strictSlash)
	fn(sub)
	return sub
}

// Routes lists every registered route in registration order.
func (m *mux[C]) Routes() []Route {
	var routes []Route
	_ = m.router.Walk(func(route *gmux.Route, _ *gmux.Router, _ []*gmux.Route) error {
		if route.GetHandler() == nil {
			return nil
		}
		tpl, err := route.GetPathTemplate()
		if err != nil {
			return nil
		}
		methods, _ := route.GetMethods()
		routes = append(routes, Route{Methods: methods, Pattern: tpl})
		return nil
	})
	return routes
}

func (m *mux[C]) notFound() handler.HandlerFunc[C] {
	if m.fallback != nil {
		return m.fallback
	}
	return failWith[C](ErrNotFound)
}

func (m *mux[C]) dispatch(w http.ResponseWriter, r *http.Request, fn handler.HandlerFunc[C]) {
	ww := newResponseWriter(w)
	ctx := m.newContext(ww, r, gmux.Vars(r))

	defer func() {
		if p := recover(); p != nil {
			perr := &panicError{value: p, stack: debug.Stack()}
			if ww.Written() {
				m.logger.Error("panic after response written",
					logger.Error(perr),
					logger.Method(r.Method),
					logger.Path(r.URL.Path),
					logger.StatusCode(ww.Status()),
					slog.String("stack", string(perr.stack)),
				)
				return
			}
			m.errorHandler(ctx, perr)
		}
	}()

	resp := fn(ctx)
	if resp == nil {
		m.errorHandler(ctx, ErrNilResponse)
		return
	}
	if err := resp(ww, ctx.Request()); err != nil {
		m.errorHandler(ctx, err)
	}
}

func failWith[C handler.Context](err error) handler.HandlerFunc[C] {
	return func(C) handler.Response {
		return func(http.ResponseWriter, *http.Request) error {
			return err
		}
	}
}
