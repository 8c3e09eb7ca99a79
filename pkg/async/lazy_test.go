package async_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"

	"github.com/kenali/kenali/pkg/async"
)

func TestLazy(t *testing.T) {
	t.Parallel()

	t.Run("loads once and caches", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		l := async.NewLazy(func(context.Context) (string, error) {
			calls.Inc()
			time.Sleep(20 * time.Millisecond)
			return "page", nil
		})
		assert.False(t, l.Loaded())

		var wg sync.WaitGroup
		for range 10 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				v, err := l.Get(context.Background())
				assert.NoError(t, err)
				assert.Equal(t, "page", v)
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(1), calls.Load())
		assert.True(t, l.Loaded())

		v, err := l.Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "page", v)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("failure is not cached", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		boom := errors.New("network down")
		l := async.NewLazy(func(context.Context) (int, error) {
			if calls.Inc() == 1 {
				return 0, boom
			}
			return 7, nil
		})

		_, err := l.Get(context.Background())
		assert.ErrorIs(t, err, boom)
		assert.False(t, l.Loaded())

		v, err := l.Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 7, v)
	})

	t.Run("caller cancellation does not abort shared load", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})
		l := async.NewLazy(func(ctx context.Context) (int, error) {
			<-release
			return 1, ctx.Err()
		})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := l.Get(ctx)
		assert.ErrorIs(t, err, context.Canceled)

		fut := l.Future(context.Background())
		close(release)

		v, err := fut.Await()
		require.NoError(t, err)
		assert.Equal(t, 1, v)
	})
	t.Run("nil interface value", func(t *testing.T) {
		t.Parallel()

		l := async.NewLazy(func(context.Context) (fmt.Stringer, error) {
			return nil, nil
		})

		v, err := l.Get(context.Background())
		require.NoError(t, err)
		assert.Nil(t, v)
		assert.True(t, l.Loaded())

		v, err = l.Future(context.Background()).Await()
		require.NoError(t, err)
		assert.Nil(t, v)
	})
}
