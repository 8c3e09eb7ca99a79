// Package response provides handler.Response constructors for JSON bodies,
// templ components and structured HTTP errors.
//
//	func show(ctx *router.Context) handler.Response {
//		if ctx.Param("id") == "" {
//			return response.Error(response.ErrBadRequest.WithMessage("missing id"))
//		}
//		return response.JSON(item)
//	}
//
// HTTPError implements StatusCode() int, so the router's default error handler
// answers with its status.
package response
