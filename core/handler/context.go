package handler

import (
	"context"
	"net/http"
)

// Context is the request context handlers receive. router.Context is the
// default implementation; applications may embed it in their own type.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	Param(key string) string
	SetValue(key, val any)
}
