package main

import (
	"context"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apprepl/pkg/repltypes"
)

func call(t *testing.T, locals repltypes.Locals, name string, args ...string) (any, error) {
	t.Helper()
	cmd, ok := locals[name].(repltypes.Command)
	require.True(t, ok, "%s is not a command", name)
	out := cmd(context.Background(), repltypes.Call{Args: args})
	if out.IsDeferred() {
		return out.Future().Await(context.Background())
	}
	return out.Result()
}

func TestSampleLocals_Hello(t *testing.T) {
	locals := sampleLocals(time.Millisecond)

	value, err := call(t, locals, "hello")
	require.NoError(t, err)
	assert.Equal(t, "Hello, world!", value)

	value, err = call(t, locals, "hello", "gopher")
	require.NoError(t, err)
	assert.Equal(t, "Hello, gopher!", value)
}

func TestSampleLocals_AsyncHelloIsDeferred(t *testing.T) {
	locals := sampleLocals(time.Millisecond)
	cmd := locals["asyncHello"].(repltypes.Command)

	out := cmd(context.Background(), repltypes.Call{Args: []string{"you"}})

	require.True(t, out.IsDeferred())
	value, err := out.Future().Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Hello, you!", value)
}

func TestSampleLocals_AsyncFail(t *testing.T) {
	_, err := call(t, sampleLocals(time.Millisecond), "asyncFail")

	assert.EqualError(t, err, "async operation failed on purpose")
}

func TestSampleLocals_CancelledWait(t *testing.T) {
	locals := sampleLocals(time.Hour)
	cmd := locals["asyncHello"].(repltypes.Command)
	ctx, cancel := context.WithCancel(context.Background())

	out := cmd(ctx, repltypes.Call{})
	cancel()

	_, err := out.Future().Await(context.Background())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSampleWelcome(t *testing.T) {
	locals := sampleLocals(time.Second)

	welcome := ansi.Strip(sampleWelcome(locals, time.Second))

	assert.Contains(t, welcome, "sample")
	assert.Contains(t, welcome, "asyncFail, asyncHello, hello")
	assert.Contains(t, welcome, "1s")
}
