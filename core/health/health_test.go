package health_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kenali/kenali/core/health"
	"github.com/kenali/kenali/core/router"
)

func TestLiveness(t *testing.T) {
	t.Parallel()

	r := router.New[*router.Context]()
	r.Get("/healthz", health.Liveness[*router.Context])

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"alive"}`, w.Body.String())
}

func TestReadiness(t *testing.T) {
	t.Parallel()

	ok := health.Check{Name: "day", Fn: func(context.Context) error { return nil }}
	failing := health.Check{Name: "nav", Fn: func(context.Context) error { return errors.New("layout missing") }}

	r := router.New[*router.Context]()
	r.Get("/ready", health.Readiness[*router.Context](nil, ok))
	r.Get("/degraded", health.Readiness[*router.Context](nil, ok, failing))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ready","checks":{"day":"ok"}}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/degraded", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"status":"unavailable","checks":{"day":"ok","nav":"layout missing"}}`, w.Body.String())
}
