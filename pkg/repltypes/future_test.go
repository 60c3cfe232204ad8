package repltypes

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isDone(f *Future) bool {
	select {
	case <-f.Done():
		return true
	default:
		return false
	}
}

func TestFuture_SettlesOnce(t *testing.T) {
	f := NewFuture()

	assert.False(t, isDone(f))
	assert.True(t, f.Resolve("first"))
	assert.False(t, f.Resolve("second"))
	assert.False(t, f.Reject(errors.New("late")))
	assert.True(t, isDone(f))

	value, err := f.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "first", value)
}

func TestFuture_RejectNilError(t *testing.T) {
	f := Rejected(nil)

	_, err := f.Await(context.Background())
	assert.ErrorIs(t, err, ErrRejectedWithoutError)
}

func TestFuture_ThenFiresExactlyOneContinuation(t *testing.T) {
	tests := []struct {
		name       string
		settle     func(f *Future)
		wantValue  any
		wantErr    error
		fulfilled  int32
		rejections int32
	}{
		{
			name:      "fulfilled",
			settle:    func(f *Future) { f.Resolve(42) },
			wantValue: 42,
			fulfilled: 1,
		},
		{
			name:       "rejected",
			settle:     func(f *Future) { f.Reject(errors.New("nope")) },
			wantErr:    errors.New("nope"),
			rejections: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFuture()
			var fulfilled, rejected atomic.Int32
			var gotValue any
			var gotErr error

			f.Then(func(v any) {
				fulfilled.Add(1)
				gotValue = v
			}, func(err error) {
				rejected.Add(1)
				gotErr = err
			})

			tt.settle(f)
			tt.settle(f)

			assert.Equal(t, tt.fulfilled, fulfilled.Load())
			assert.Equal(t, tt.rejections, rejected.Load())
			assert.Equal(t, tt.wantValue, gotValue)
			assert.Equal(t, tt.wantErr, gotErr)
		})
	}
}

func TestFuture_ThenAfterSettleRunsImmediately(t *testing.T) {
	f := Resolved("done")

	var got any
	f.Then(func(v any) { got = v }, nil)

	assert.Equal(t, "done", got)
}

func TestFuture_ConcurrentThen(t *testing.T) {
	f := NewFuture()
	var calls atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.Then(func(any) { calls.Add(1) }, nil)
		}()
	}
	go f.Resolve(true)
	wg.Wait()

	<-f.Done()
	// Continuations registered before settlement run on the settling goroutine.
	assert.Eventually(t, func() bool { return calls.Load() == 50 }, time.Second, time.Millisecond)
}

func TestGo(t *testing.T) {
	t.Run("value", func(t *testing.T) {
		f := Go(context.Background(), func(context.Context) (any, error) {
			return "ok", nil
		})
		value, err := f.Await(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "ok", value)
	})

	t.Run("error", func(t *testing.T) {
		boom := errors.New("boom")
		f := Go(context.Background(), func(context.Context) (any, error) {
			return nil, boom
		})
		_, err := f.Await(context.Background())
		assert.ErrorIs(t, err, boom)
	})

	t.Run("panic becomes rejection", func(t *testing.T) {
		f := Go(context.Background(), func(context.Context) (any, error) {
			panic("kaboom")
		})
		_, err := f.Await(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "kaboom")
	})
}

func TestFuture_AwaitHonoursContext(t *testing.T) {
	f := NewFuture()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.Await(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, isDone(f))
}
