package static_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"

	"github.com/kenali/kenali/core/router"
	"github.com/kenali/kenali/core/static"
)

func TestFS(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"public/app.css":      {Data: []byte("body{margin:0}")},
		"public/img/logo.svg": {Data: []byte("<svg/>")},
	}

	r := router.New[*router.Context]()
	r.Get("/assets/{file:.+}", static.FS[*router.Context](fsys,
		static.WithSubFS("public"),
		static.WithStripPrefix("/assets"),
		static.WithMaxAge(60),
	))

	get := func(target string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		return w
	}

	w := get("/assets/app.css")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "body{margin:0}", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/css")
	assert.Equal(t, "public, max-age=60", w.Header().Get("Cache-Control"))

	assert.Equal(t, http.StatusOK, get("/assets/img/logo.svg").Code)
	assert.Equal(t, http.StatusNotFound, get("/assets/img").Code)
	assert.Equal(t, http.StatusNotFound, get("/assets/missing.js").Code)
}
