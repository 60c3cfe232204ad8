package host

import (
	"context"
	"fmt"
	"strings"
	"time"

	"apprepl/pkg/repltypes"
)

// Builtins returns the commands every session starts with.
func Builtins() repltypes.Locals {
	return repltypes.Locals{
		"echo":  repltypes.Command(echo),
		"sleep": repltypes.Command(sleep),
		"vars":  repltypes.Command(vars),
	}
}

func echo(_ context.Context, call repltypes.Call) repltypes.Outcome {
	return repltypes.Immediate(strings.Join(call.Args, " "))
}

// sleep resolves to its optional value (or the slept duration) once d elapses.
func sleep(ctx context.Context, call repltypes.Call) repltypes.Outcome {
	if len(call.Args) == 0 {
		return repltypes.Failed(fmt.Errorf("usage: sleep <duration> [value...]"))
	}
	d, err := time.ParseDuration(call.Args[0])
	if err != nil {
		return repltypes.Failed(fmt.Errorf("sleep: %w", err))
	}

	var result any = d.String()
	if len(call.Args) > 1 {
		result = strings.Join(call.Args[1:], " ")
	}

	future := repltypes.NewFuture()
	timer := time.NewTimer(d)
	go func() {
		defer timer.Stop()
		select {
		case <-timer.C:
			future.Resolve(result)
		case <-ctx.Done():
			future.Reject(ctx.Err())
		}
	}()
	return repltypes.Deferred(future)
}

func vars(_ context.Context, call repltypes.Call) repltypes.Outcome {
	if call.Scope == nil {
		return repltypes.Immediate([]string{})
	}
	return repltypes.Immediate(call.Scope.Names())
}
