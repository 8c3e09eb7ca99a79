// Package router provides a generic HTTP router on top of gorilla/mux.
//
// Handlers receive a context type of your choosing and return a
// handler.Response; errors returned by responses, unmatched paths, method
// mismatches and recovered panics all flow into a single error handler.
//
//	r := router.New[*router.Context]()
//	r.Use(middleware.RequestID[*router.Context]())
//	r.Get("/healthz", func(ctx *router.Context) handler.Response {
//		return response.JSON(map[string]string{"status": "ok"})
//	})
//	r.Route("/api", func(api router.Router[*router.Context]) {
//		api.Get("/users/{id}", showUser)
//	})
//	r.Fallback(renderPage)
//
// Path parameters use gorilla/mux templates ("/users/{id}") and are read with
// Context.Param. Middleware must be registered before routes; each route keeps
// the middleware chain that existed when it was added.
//
// Use a custom context type by supplying WithContextFactory. Errors that
// implement StatusCode() int choose their own response status.
package router
