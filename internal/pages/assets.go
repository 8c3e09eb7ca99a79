package pages

import (
	"embed"
	"io/fs"
)

//go:embed assets
var assets embed.FS

// Assets holds the stylesheet and other static files referenced by Layout.
func Assets() fs.FS {
	sub, err := fs.Sub(assets, "assets")
	if err != nil {
		panic(err)
	}
	return sub
}
