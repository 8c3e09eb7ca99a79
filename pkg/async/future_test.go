package async_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kenali/kenali/pkg/async"
)

func TestAsync(t *testing.T) {
	t.Parallel()

	t.Run("returns value", func(t *testing.T) {
		t.Parallel()

		f := async.Async(context.Background(), 21, func(_ context.Context, n int) (int, error) {
			time.Sleep(10 * time.Millisecond)
			return n * 2, nil
		})

		v, err := f.Await()
		require.NoError(t, err)
		assert.Equal(t, 42, v)
		assert.True(t, f.IsComplete())
	})

	t.Run("propagates error", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		f := async.Async(context.Background(), "x", func(context.Context, string) (int, error) {
			return 0, boom
		})

		_, err := f.Await()
		assert.ErrorIs(t, err, boom)
	})

	t.Run("pre-canceled context skips call", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		called := false
		f := async.Async(ctx, 1, func(context.Context, int) (int, error) {
			called = true
			return 1, nil
		})

		_, err := f.Await()
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, called)
	})

	t.Run("timeout", func(t *testing.T) {
		t.Parallel()

		f := async.Async(context.Background(), 1, func(context.Context, int) (int, error) {
			time.Sleep(200 * time.Millisecond)
			return 1, nil
		})

		_, err := f.AwaitWithTimeout(10 * time.Millisecond)
		assert.ErrorIs(t, err, async.ErrTimeout)
		assert.False(t, f.IsComplete())
	})

	t.Run("await context", func(t *testing.T) {
		t.Parallel()

		f := async.Async(context.Background(), 1, func(context.Context, int) (int, error) {
			time.Sleep(200 * time.Millisecond)
			return 1, nil
		})

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		_, err := f.AwaitContext(ctx)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
