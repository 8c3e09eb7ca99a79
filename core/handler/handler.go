package handler

import "net/http"

// Response renders an HTTP response: headers, status and body.
// A returned error goes to the router's error handler.
type Response func(w http.ResponseWriter, r *http.Request) error

// HandlerFunc is a request handler over a custom context type.
type HandlerFunc[C Context] func(ctx C) Response

// ErrorHandler handles errors raised while serving a request.
type ErrorHandler[C Context] func(ctx C, err error)

// Middleware wraps handlers to add cross-cutting behavior.
type Middleware[C Context] func(next HandlerFunc[C]) HandlerFunc[C]

// Chain wraps endpoint in middlewares so that the first middleware runs first.
func Chain[C Context](middlewares []Middleware[C], endpoint HandlerFunc[C]) HandlerFunc[C] {
	h := endpoint
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
