package session

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/abiosoft/readline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pipedConfig feeds input to readline as a non-terminal stream.
func pipedConfig(input string, out io.Writer) *readline.Config {
	return &readline.Config{
		Prompt:         "> ",
		Stdin:          io.NopCloser(strings.NewReader(input)),
		Stdout:         out,
		Stderr:         out,
		FuncIsTerminal: func() bool { return false },
		FuncMakeRaw:    func() error { return nil },
		FuncExitRaw:    func() error { return nil },
	}
}

func runHost(t *testing.T, input string) []string {
	t.Helper()
	var out bytes.Buffer
	h, err := NewIShellHost(pipedConfig(input, &out))
	require.NoError(t, err)
	defer h.Close()

	var lines []string
	h.Run(func(line string) { lines = append(lines, line) })
	return lines
}

func TestIShellHost_LinesReachSessionVerbatim(t *testing.T) {
	lines := runHost(t, "fs.write notes.txt \"a    b\"\necho   'x  y'\nexit\n")

	assert.Equal(t, []string{
		`fs.write notes.txt "a    b"`,
		`echo   'x  y'`,
	}, lines)
}

func TestIShellHost_StopsAtExit(t *testing.T) {
	lines := runHost(t, "echo 1\n   \nexit\necho 2\n")

	assert.Equal(t, []string{"echo 1"}, lines)
}

func TestIShellHost_StopsAtEOF(t *testing.T) {
	lines := runHost(t, "echo 1\necho 2\n")

	assert.Equal(t, []string{"echo 1", "echo 2"}, lines)
}

func TestIShellHost_PushHistory(t *testing.T) {
	h, err := NewIShellHost(pipedConfig("", io.Discard))
	require.NoError(t, err)
	defer h.Close()

	assert.NoError(t, h.PushHistory("echo old"))
	assert.NotNil(t, h.ProgressBar())
}
