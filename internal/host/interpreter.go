// Package host is the command interpreter driven by the interactive shell.
// A command line is a reference to a scope variable, optionally followed by
// arguments when the variable is a command:
//
//	hello
//	api.database.host
//	fs.cat ./notes.txt
//	sleep 2s done
package host

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"

	"apprepl/pkg/repltypes"
)

// Evaluation errors.
var (
	ErrNotDefined  = errors.New("is not defined")
	ErrNotCallable = errors.New("is not a command")
)

// Interpreter evaluates command lines against a Scope.
type Interpreter struct {
	scope *Scope
}

// New returns an interpreter bound to scope.
func New(scope *Scope) *Interpreter {
	return &Interpreter{scope: scope}
}

// Evaluate is the interpreter's evaluate hook. The request scope, when set,
// takes precedence over the interpreter's own.
func (in *Interpreter) Evaluate(ctx context.Context, req repltypes.Request) repltypes.Outcome {
	scope := req.Scope
	if scope == nil {
		scope = in.scope
	}

	words, err := shellquote.Split(req.Command)
	if err != nil {
		return repltypes.Failed(fmt.Errorf("syntax error: %w", err))
	}
	if len(words) == 0 {
		return repltypes.Immediate(nil)
	}

	target, err := Lookup(scope, words[0])
	if err != nil {
		return repltypes.Failed(err)
	}

	cmd, ok := asCommand(target)
	if !ok {
		if len(words) > 1 {
			return repltypes.Failed(fmt.Errorf("%s %w", words[0], ErrNotCallable))
		}
		return repltypes.Immediate(target)
	}
	return cmd(ctx, repltypes.Call{Args: words[1:], Scope: scope})
}

func asCommand(value any) (repltypes.Command, bool) {
	switch fn := value.(type) {
	case repltypes.Command:
		return fn, fn != nil
	case func(context.Context, repltypes.Call) repltypes.Outcome:
		return fn, fn != nil
	default:
		return nil, false
	}
}

// Lookup resolves a dotted reference such as "api.database.host" against
// scope, descending through namespaces and string-keyed maps.
func Lookup(scope repltypes.Scope, ref string) (any, error) {
	parts := strings.Split(ref, ".")
	value, ok := scope.Get(parts[0])
	if !ok {
		return nil, fmt.Errorf("%s %w", parts[0], ErrNotDefined)
	}

	for i, part := range parts[1:] {
		member, ok := memberOf(value, part)
		if !ok {
			return nil, fmt.Errorf("%s %w", strings.Join(parts[:i+2], "."), ErrNotDefined)
		}
		value = member
	}
	return value, nil
}

func memberOf(value any, name string) (any, bool) {
	switch v := value.(type) {
	case repltypes.Namespace:
		member, ok := v[name]
		return member, ok
	case repltypes.Locals:
		member, ok := v[name]
		return member, ok
	case map[string]any:
		member, ok := v[name]
		return member, ok
	case map[string]string:
		member, ok := v[name]
		return member, ok
	default:
		return nil, false
	}
}
