// Package middleware provides generic handler.Middleware for request IDs and
// request logging.
//
//	r := router.New[*router.Context]()
//	r.Use(
//		middleware.RequestID[*router.Context](),
//		middleware.LoggingWithLogger[*router.Context](log),
//	)
//
// Logging reads the request ID set by RequestID, so the two lines of a request
// can be correlated. Panic recovery lives in the router itself.
package middleware
