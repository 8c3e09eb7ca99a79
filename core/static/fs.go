package static

import (
	"fmt"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/kenali/kenali/core/handler"
	"github.com/kenali/kenali/core/response"
)

type config struct {
	fs           fs.FS
	stripPrefix  string
	subPath      string
	cacheControl string
}

// Option configures FS.
type Option func(*config)

// WithStripPrefix removes prefix from the URL path before looking up the file.
func WithStripPrefix(prefix string) Option {
	return func(c *config) {
		c.stripPrefix = prefix
	}
}

// WithSubFS serves files from a subdirectory of the filesystem.
func WithSubFS(dir string) Option {
	return func(c *config) {
		c.subPath = dir
	}
}

// WithMaxAge sets a public Cache-Control max-age in seconds.
func WithMaxAge(seconds int) Option {
	return func(c *config) {
		if seconds > 0 {
			c.cacheControl = fmt.Sprintf("public, max-age=%d", seconds)
		}
	}
}

// FS serves regular files from fsys. Directories and missing files answer
// response.ErrNotFound, so there is no directory listing.
//
// Panics at startup if the sub-path is invalid.
func FS[C handler.Context](fsys fs.FS, opts ...Option) handler.HandlerFunc[C] {
	cfg := &config{fs: fsys}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.subPath != "" {
		sub, err := fs.Sub(fsys, cfg.subPath)
		if err != nil {
			panic("static.FS: invalid sub-path '" + cfg.subPath + "': " + err.Error())
		}
		cfg.fs = sub
	}

	return func(ctx C) handler.Response {
		return func(w http.ResponseWriter, r *http.Request) error {
			name := strings.TrimPrefix(r.URL.Path, cfg.stripPrefix)
			name = strings.TrimPrefix(path.Clean("/"+name), "/")
			if name == "" {
				return response.ErrNotFound
			}

			info, err := fs.Stat(cfg.fs, name)
			if err != nil || info.IsDir() {
				return response.ErrNotFound
			}

			if cfg.cacheControl != "" {
				w.Header().Set("Cache-Control", cfg.cacheControl)
			}
			http.ServeFileFS(w, r, cfg.fs, name)
			return nil
		}
	}
}
