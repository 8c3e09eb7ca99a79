// Package static serves files from an fs.FS, typically an embed.FS.
//
//	//go:embed assets
//	var assets embed.FS
//
//	r.Get("/assets/{file:.+}", static.FS[*router.Context](assets,
//		static.WithSubFS("assets"),
//		static.WithStripPrefix("/assets"),
//		static.WithMaxAge(3600),
//	))
package static
