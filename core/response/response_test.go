package response_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kenali/kenali/core/response"
)

func run(t *testing.T, resp func(http.ResponseWriter, *http.Request) error) (*httptest.ResponseRecorder, error) {
	t.Helper()
	w := httptest.NewRecorder()
	err := resp(w, httptest.NewRequest(http.MethodGet, "/", nil))
	return w, err
}

func TestJSON(t *testing.T) {
	t.Parallel()

	w, err := run(t, response.JSON(map[string]string{"status": "ok"}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestJSONWithStatus(t *testing.T) {
	t.Parallel()

	w, err := run(t, response.JSONWithStatus([]int{1}, http.StatusCreated))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `[1]`, w.Body.String())

	w, err = run(t, response.JSONWithStatus(nil, 0))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestTempl(t *testing.T) {
	t.Parallel()

	component := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<p>halo</p>")
		return err
	})

	w, err := run(t, response.Templ(component))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "<p>halo</p>", w.Body.String())

	w, err = run(t, response.TemplWithStatus(component, http.StatusNotFound))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, w.Code)

	assert.Nil(t, response.Templ(nil))
}

func TestTemplRenderError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	component := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, _ = io.WriteString(w, "partial")
		return boom
	})

	w, err := run(t, response.Templ(component))
	require.ErrorIs(t, err, boom)
	assert.False(t, w.Flushed)
	assert.Empty(t, w.Body.String())
}

func TestHTTPError(t *testing.T) {
	t.Parallel()

	cause := errors.New("unknown time zone Mars/Olympus")
	err := response.ErrBadRequest.WithMessage("invalid timezone").WithError(cause)

	assert.Equal(t, "invalid timezone", err.Error())
	assert.Equal(t, http.StatusBadRequest, err.StatusCode())
	assert.Equal(t, cause.Error(), err.Details["cause"])
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, fmt.Errorf("wrapped: %w", err), response.ErrBadRequest)
	assert.NotErrorIs(t, err, response.ErrNotFound)
	assert.Nil(t, response.ErrBadRequest.Details)

	w, rerr := run(t, response.Error(err))
	assert.Equal(t, err, rerr)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestErrorJSON(t *testing.T) {
	t.Parallel()

	w, err := run(t, response.ErrorJSON(response.ErrNotFound.WithMessage("no such route")))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"code":"not_found","message":"no such route"}`, w.Body.String())

	w, err = run(t, response.ErrorJSON(errors.New("secret")))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "secret")
}
