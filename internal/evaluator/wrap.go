// Package evaluator wraps an evaluate hook so that deferred outcomes are
// awaited and reported through the same contract as immediate ones.
package evaluator

import (
	"context"
	"errors"
	"sync"

	"apprepl/internal/logger"
	"apprepl/internal/status"
	"apprepl/pkg/repltypes"
)

// ErrMalformedFuture is the rejection reported for a deferred outcome that
// carries no future.
var ErrMalformedFuture = errors.New("deferred outcome has no pending computation")

// Wrap returns an EvalFunc with the same contract as inner whose outcomes are
// always settled. Immediate values and failures pass through untouched and
// without any indicator. A deferred outcome emits status.Pending before
// waiting, then status.Succeeded or status.Failed once the computation
// settles, and resolves to the computation's value or error.
func Wrap(inner repltypes.EvalFunc, ind status.Indicator) repltypes.EvalFunc {
	if ind == nil {
		ind = status.Discard()
	}

	return func(ctx context.Context, req repltypes.Request) repltypes.Outcome {
		out := inner(ctx, req)
		if !out.IsDeferred() {
			return out
		}
		return await(ctx, req, out.Future(), ind)
	}
}

func await(ctx context.Context, req repltypes.Request, future *repltypes.Future, ind status.Indicator) repltypes.Outcome {
	ind.Pending()
	logger.Debug("Awaiting deferred outcome", "command", req.Command, "source", req.Source)

	if future == nil {
		ind.Failed()
		return repltypes.Failed(ErrMalformedFuture)
	}

	settled := make(chan repltypes.Outcome, 1)
	var once sync.Once
	finish := func(report func(), out repltypes.Outcome) {
		once.Do(func() {
			report()
			settled <- out
		})
	}

	future.Then(
		func(value any) { finish(ind.Succeeded, repltypes.Immediate(value)) },
		func(err error) { finish(ind.Failed, repltypes.Failed(err)) },
	)

	select {
	case out := <-settled:
		return out
	case <-ctx.Done():
		finish(ind.Failed, repltypes.Failed(ctx.Err()))
		return <-settled
	}
}

// Invoke runs f and delivers its single outcome to cb. Deferred outcomes are
// delivered as soon as they settle, on the settling goroutine; Invoke itself
// does not block on them.
func Invoke(ctx context.Context, f repltypes.EvalFunc, req repltypes.Request, cb repltypes.Callback) {
	out := f(ctx, req)
	if !out.IsDeferred() {
		cb(out.Result())
		return
	}

	future := out.Future()
	if future == nil {
		cb(nil, ErrMalformedFuture)
		return
	}
	future.Then(
		func(value any) { cb(value, nil) },
		func(err error) { cb(nil, err) },
	)
}
