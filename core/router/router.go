package router

import (
	"net/http"

	"github.com/kenali/kenali/core/handler"
)

// Router is the main routing interface for handling HTTP requests.
// It supports middleware chaining, route grouping, and prefix sub-routers.
type Router[C handler.Context] interface {
	http.Handler
	Routes

	// HTTP method handlers
	Get(pattern string, h handler.HandlerFunc[C])
	Post(pattern string, h handler.HandlerFunc[C])
	Put(pattern string, h handler.HandlerFunc[C])
	Delete(pattern string, h handler.HandlerFunc[C])
	Head(pattern string, h handler.HandlerFunc[C])

	// Generic handlers
	Handle(pattern string, h handler.HandlerFunc[C])
	Method(pattern string, h handler.HandlerFunc[C], methods ...string)

	// Fallback receives every request no registered route matches.
	// Without a fallback such requests go to the error handler as ErrNotFound.
	Fallback(h handler.HandlerFunc[C])

	// Middleware
	Use(middlewares ...handler.Middleware[C])

	// Grouping
	Route(prefix string, fn func(r Router[C])) Router[C]
}

// Routes provides route introspection capabilities for debugging and monitoring.
type Routes interface {
	Routes() []Route
}

// Route describes a single route in the router with its HTTP methods and pattern.
type Route struct {
	Methods []string `json:"methods,omitempty"`
	Pattern string   `json:"pattern"`
}

// New creates a new router with the given options.
func New[C handler.Context](opts ...Option[C]) Router[C] {
	return newMux(opts...)
}
