package repltypes

import "context"

// Scope is the variable context commands are evaluated against.
type Scope interface {
	Get(name string) (any, bool)
	Set(name string, value any)
	Names() []string
}

// Request is one evaluation cycle's input. It is never retained past the
// cycle that created it.
type Request struct {
	Command string
	Scope   Scope
	Source  string
}

// EvalFunc evaluates one command. It is the hook the session wraps to await
// deferred outcomes.
type EvalFunc func(ctx context.Context, req Request) Outcome

// Callback receives the single outcome of a callback-style evaluation.
type Callback func(value any, err error)
