// Package handler defines the request-processing types shared by the router,
// response helpers and middleware.
//
// A handler receives a context and returns a Response; the Response does the
// writing, so middleware can decorate both the decision and the rendering:
//
//	func health(ctx handler.Context) handler.Response {
//		return response.JSON(map[string]string{"status": "ok"})
//	}
//
// Context extends context.Context with access to the request, the response
// writer, path parameters, and request-scoped values.
package handler
