package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kenali/kenali/core/handler"
	"github.com/kenali/kenali/core/middleware"
	"github.com/kenali/kenali/core/response"
	"github.com/kenali/kenali/core/router"
)

func ok(*router.Context) handler.Response {
	return func(w http.ResponseWriter, _ *http.Request) error {
		_, err := w.Write([]byte("ok"))
		return err
	}
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	r := router.New[*router.Context]()
	r.Use(middleware.RequestID[*router.Context]())

	var captured string
	r.Get("/", func(ctx *router.Context) handler.Response {
		id, found := middleware.GetRequestID(ctx)
		assert.True(t, found)
		captured = id
		return ok(ctx)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Len(t, captured, 36)
	assert.Equal(t, captured, w.Header().Get("X-Request-ID"))
}

func TestRequestIDWithConfig(t *testing.T) {
	t.Parallel()

	r := router.New[*router.Context]()
	r.Use(middleware.RequestIDWithConfig[*router.Context](middleware.RequestIDConfig{
		HeaderName:  "X-Trace",
		UseExisting: true,
		Generator:   func() string { return "generated" },
	}))
	r.Get("/", ok)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Trace", "from-client")
	r.ServeHTTP(w, req)
	assert.Equal(t, "from-client", w.Header().Get("X-Trace"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "generated", w.Header().Get("X-Trace"))
}

func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var lines []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		var line map[string]any
		require.NoError(t, dec.Decode(&line))
		lines = append(lines, line)
	}
	return lines
}

func TestLogging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	r := router.New[*router.Context]()
	r.Use(
		middleware.RequestIDWithConfig[*router.Context](middleware.RequestIDConfig{
			Generator: func() string { return "req-1" },
		}),
		middleware.LoggingWithLogger[*router.Context](log),
	)
	r.Get("/ok", ok)
	r.Get("/bad", func(*router.Context) handler.Response {
		return response.Error(response.ErrBadRequest)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok?x=1", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/bad", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	lines := logLines(t, &buf)
	require.Len(t, lines, 3)

	assert.Equal(t, "INFO", lines[0]["level"])
	assert.Equal(t, "/ok", lines[0]["path"])
	assert.Equal(t, "x=1", lines[0]["query"])
	assert.Equal(t, "req-1", lines[0]["request_id"])
	assert.EqualValues(t, 200, lines[0]["status"])
	assert.EqualValues(t, 2, lines[0]["bytes_out"])

	assert.Equal(t, "WARN", lines[1]["level"])
	assert.EqualValues(t, 400, lines[1]["status"])

	assert.Equal(t, "WARN", lines[2]["level"])
	assert.EqualValues(t, 404, lines[2]["status"])
}

func TestLoggingSkip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := router.New[*router.Context]()
	r.Use(middleware.LoggingWithConfig[*router.Context](middleware.LoggingConfig{
		Logger: slog.New(slog.NewJSONHandler(&buf, nil)),
		Skip: func(ctx handler.Context) bool {
			return ctx.Request().URL.Path == "/healthz"
		},
	}))
	r.Get("/healthz", ok)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Zero(t, buf.Len())
}
