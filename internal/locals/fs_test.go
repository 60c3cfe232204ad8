package locals

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apprepl/pkg/repltypes"
)

func run(t *testing.T, ns repltypes.Namespace, name string, args ...string) repltypes.Outcome {
	t.Helper()
	cmd, ok := ns[name].(repltypes.Command)
	require.True(t, ok, "fs.%s is not a command", name)
	return cmd(context.Background(), repltypes.Call{Args: args})
}

func TestFS(t *testing.T) {
	mem := afero.NewMemMapFs()
	ns := FS(mem)

	out := run(t, ns, "mkdir", "/work/sub")
	require.NoError(t, out.Err())
	assert.Equal(t, "/work/sub", out.Value())

	out = run(t, ns, "write", "/work/notes.txt", "hello", "there")
	require.NoError(t, out.Err())
	assert.Equal(t, 11, out.Value())

	out = run(t, ns, "cat", "/work/notes.txt")
	require.NoError(t, out.Err())
	assert.Equal(t, "hello there", out.Value())

	out = run(t, ns, "ls", "/work")
	require.NoError(t, out.Err())
	assert.Equal(t, []string{"notes.txt", "sub/"}, out.Value())

	out = run(t, ns, "exists", "/work/notes.txt")
	require.NoError(t, out.Err())
	assert.Equal(t, true, out.Value())

	out = run(t, ns, "stat", "/work/notes.txt")
	require.NoError(t, out.Err())
	info, ok := out.Value().(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "notes.txt", info["name"])
	assert.Equal(t, int64(11), info["size"])
	assert.Equal(t, false, info["dir"])

	out = run(t, ns, "rm", "/work")
	require.NoError(t, out.Err())
	out = run(t, ns, "exists", "/work/notes.txt")
	assert.Equal(t, false, out.Value())
}

func TestFS_Errors(t *testing.T) {
	ns := FS(afero.NewMemMapFs())

	tests := []struct {
		name string
		args []string
	}{
		{name: "cat", args: []string{"/missing"}},
		{name: "cat"},
		{name: "ls", args: []string{"/missing"}},
		{name: "stat", args: []string{"/missing"}},
		{name: "write", args: []string{"/only-path"}},
		{name: "mkdir", args: []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := run(t, ns, tt.name, tt.args...)
			assert.Equal(t, repltypes.KindError, out.Kind())
		})
	}
}
