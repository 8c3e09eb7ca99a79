package nav

import (
	"context"
	"reflect"

	"github.com/kenali/kenali/pkg/async"
)

// Component is a page-rendering unit bound to a route. Load may block while
// the component is fetched; navigation completes only after it returns.
type Component[T any] interface {
	Load(ctx context.Context) (T, error)
}

type lazyComponent[T any] struct {
	lazy *async.Lazy[T]
}

// Lazy defers load until the route is first activated and caches the
// result. Concurrent activations share one load; a failed load is not
// cached and is attempted again by the next navigation.
func Lazy[T any](load func(ctx context.Context) (T, error)) Component[T] {
	return &lazyComponent[T]{lazy: async.NewLazy(load)}
}

func (c *lazyComponent[T]) Load(ctx context.Context) (T, error) {
	return c.lazy.Get(ctx)
}

// Future starts the load in the background.
func (c *lazyComponent[T]) Future(ctx context.Context) *async.Future[T] {
	return c.lazy.Future(ctx)
}

func (c *lazyComponent[T]) Loaded() bool {
	return c.lazy.Loaded()
}

type staticComponent[T any] struct {
	value T
}

// Static binds an already available value.
func Static[T any](v T) Component[T] {
	return staticComponent[T]{value: v}
}

func (c staticComponent[T]) Load(context.Context) (T, error) {
	return c.value, nil
}

func (c staticComponent[T]) Loaded() bool {
	return true
}

// start begins loading c. Lazy components share their in-flight load;
// others are loaded in their own goroutine.
func start[T any](ctx context.Context, c Component[T]) *async.Future[T] {
	if f, ok := c.(interface {
		Future(context.Context) *async.Future[T]
	}); ok {
		return f.Future(ctx)
	}
	return async.Async(ctx, c, func(ctx context.Context, c Component[T]) (T, error) {
		return c.Load(ctx)
	})
}

// isNil reports whether v is a nil interface, pointer, map, slice, func or chan.
func isNil[T any](v T) bool {
	a := any(v)
	if a == nil {
		return true
	}
	rv := reflect.ValueOf(a)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// Loaded reports whether c has a value ready without loading. Components
// that do not track this report false.
func Loaded[T any](c Component[T]) bool {
	if l, ok := c.(interface{ Loaded() bool }); ok {
		return l.Loaded()
	}
	return false
}
