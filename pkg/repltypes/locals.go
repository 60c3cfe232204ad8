package repltypes

import "context"

// Locals maps names to values injected into a session's scope.
type Locals map[string]any

// Namespace groups related locals under one name; members are addressed as
// "name.member".
type Namespace map[string]any

// Call carries the arguments of a command invocation.
type Call struct {
	Args  []string
	Scope Scope
}

// Command is a callable local.
type Command func(ctx context.Context, call Call) Outcome

// Sync adapts a blocking function into a Command producing immediate outcomes.
func Sync(fn func(call Call) (any, error)) Command {
	return func(_ context.Context, call Call) Outcome {
		return FromResult(fn(call))
	}
}

// Async adapts fn into a Command whose work runs on its own goroutine and is
// reported as a deferred outcome.
func Async(fn func(ctx context.Context, call Call) (any, error)) Command {
	return func(ctx context.Context, call Call) Outcome {
		return Deferred(Go(ctx, func(ctx context.Context) (any, error) {
			return fn(ctx, call)
		}))
	}
}
