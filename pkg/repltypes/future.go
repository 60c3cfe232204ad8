// Package repltypes defines the values exchanged between the interactive
// evaluator, the async evaluation wrapper and the locals injected into a
// session.
package repltypes

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrRejectedWithoutError is the rejection reason recorded when a future is
// rejected with a nil error.
var ErrRejectedWithoutError = errors.New("future rejected without an error")

// Future is a pending computation. It settles at most once, either fulfilled
// with a value or rejected with an error, and exposes registration points for
// fulfilment and rejection continuations.
type Future struct {
	mu      sync.Mutex
	done    chan struct{}
	settled bool
	value   any
	err     error
	waiters []continuation
}

type continuation struct {
	onFulfilled func(any)
	onRejected  func(error)
}

// NewFuture returns an unsettled future.
func NewFuture() *Future {
	return &Future{done: make(chan struct{})}
}

// Resolved returns a future already fulfilled with value.
func Resolved(value any) *Future {
	f := NewFuture()
	f.Resolve(value)
	return f
}

// Rejected returns a future already rejected with err.
func Rejected(err error) *Future {
	f := NewFuture()
	f.Reject(err)
	return f
}

// Go runs fn on its own goroutine and returns a future settled with its
// result. A panic in fn rejects the future.
func Go(ctx context.Context, fn func(ctx context.Context) (any, error)) *Future {
	f := NewFuture()
	go func() {
		defer func() {
			if r := recover(); r != nil {
				f.Reject(fmt.Errorf("panic in async operation: %v", r))
			}
		}()
		value, err := fn(ctx)
		if err != nil {
			f.Reject(err)
			return
		}
		f.Resolve(value)
	}()
	return f
}

// Resolve fulfils the future with value. It reports false if the future was
// already settled.
func (f *Future) Resolve(value any) bool {
	return f.settle(value, nil)
}

// Reject rejects the future with err. It reports false if the future was
// already settled.
func (f *Future) Reject(err error) bool {
	if err == nil {
		err = ErrRejectedWithoutError
	}
	return f.settle(nil, err)
}

func (f *Future) settle(value any, err error) bool {
	f.mu.Lock()
	if f.settled {
		f.mu.Unlock()
		return false
	}
	f.settled = true
	f.value = value
	f.err = err
	waiters := f.waiters
	f.waiters = nil
	close(f.done)
	f.mu.Unlock()

	for _, w := range waiters {
		w.fire(value, err)
	}
	return true
}

// Then registers continuations. Exactly one of them runs, exactly once, when
// the future settles; if it is already settled the matching continuation runs
// immediately on the calling goroutine. Either continuation may be nil.
func (f *Future) Then(onFulfilled func(any), onRejected func(error)) {
	c := continuation{onFulfilled: onFulfilled, onRejected: onRejected}

	f.mu.Lock()
	if !f.settled {
		f.waiters = append(f.waiters, c)
		f.mu.Unlock()
		return
	}
	value, err := f.value, f.err
	f.mu.Unlock()

	c.fire(value, err)
}

func (c continuation) fire(value any, err error) {
	if err != nil {
		if c.onRejected != nil {
			c.onRejected(err)
		}
		return
	}
	if c.onFulfilled != nil {
		c.onFulfilled(value)
	}
}

// Done is closed once the future settles.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the future settles or ctx is done.
func (f *Future) Await(ctx context.Context) (any, error) {
	select {
	case <-f.done:
		f.mu.Lock()
		defer f.mu.Unlock()
		return f.value, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
