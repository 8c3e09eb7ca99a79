package async

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Lazy is a memoized asynchronous loader. Nothing is loaded until the first
// Get; concurrent callers share one in-flight load. A successful result is
// cached for the lifetime of the Lazy. A failed load is returned to the
// callers that observed it and is not cached, so a later Get loads again.
type Lazy[T any] struct {
	load  func(context.Context) (T, error)
	group singleflight.Group

	mu     sync.RWMutex
	value  T
	loaded bool
}

// NewLazy wraps load. load receives a context detached from any single
// caller's cancellation, so one caller giving up does not fail the others.
func NewLazy[T any](load func(context.Context) (T, error)) *Lazy[T] {
	return &Lazy[T]{load: load}
}

// Get returns the cached value or waits for the load to finish.
// Returns ctx.Err() if ctx is done before the load completes.
func (l *Lazy[T]) Get(ctx context.Context) (T, error) {
	if v, ok := l.cached(); ok {
		return v, nil
	}

	ch := l.group.DoChan("load", func() (any, error) {
		if v, ok := l.cached(); ok {
			return v, nil
		}

		v, err := l.load(context.WithoutCancel(ctx))
		if err != nil {
			return v, err
		}

		l.mu.Lock()
		l.value = v
		l.loaded = true
		l.mu.Unlock()

		return v, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			var zero T
			return zero, res.Err
		}
		// A nil interface value stores as a nil any.
		v, _ := res.Val.(T)
		return v, nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Future starts the load if needed and returns a Future for its result.
func (l *Lazy[T]) Future(ctx context.Context) *Future[T] {
	if v, ok := l.cached(); ok {
		return Resolved(v, nil)
	}
	return Async(ctx, struct{}{}, func(ctx context.Context, _ struct{}) (T, error) {
		return l.Get(ctx)
	})
}

// Loaded reports whether a value has been cached.
func (l *Lazy[T]) Loaded() bool {
	_, ok := l.cached()
	return ok
}

func (l *Lazy[T]) cached() (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.value, l.loaded
}
