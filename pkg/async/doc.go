// Package async provides utilities for asynchronous programming with Go generics.
//
// Future[U] represents the result of an asynchronous computation. It provides
// methods to wait for completion (Await, AwaitContext), check status without
// blocking (IsComplete), and handle timeouts (AwaitWithTimeout).
//
//	future := async.Async(ctx, userID, fetchUser)
//	user, err := future.Await()
//
// Lazy[T] is a single-shot memoized loader: the first Get triggers the load,
// concurrent callers share it, and a successful value is cached thereafter.
//
//	page := async.NewLazy(func(ctx context.Context) (templ.Component, error) {
//		return loadPage(ctx)
//	})
//	c, err := page.Get(ctx)
//
// Errors:
//
//   - ErrTimeout: returned when AwaitWithTimeout exceeds its duration
package async
