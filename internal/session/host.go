package session

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/abiosoft/ishell/v2"
	"github.com/abiosoft/readline"
)

// Host is the interactive loop a session drives: it reads lines, hands each
// one to the session and keeps readline's in-memory history for navigation.
type Host interface {
	// PushHistory appends entry as the newest line of the navigable history.
	PushHistory(entry string) error
	// ProgressBar is the animated status line of the loop, or nil.
	ProgressBar() ishell.ProgressBar
	// Run blocks, calling handle for every line, until the user exits.
	Run(handle func(line string))
	Close()
}

// HostFactory starts a Host from readline options.
type HostFactory func(cfg *readline.Config) (Host, error)

// Lines the loop handles itself instead of passing them to the session.
const (
	exitCommand  = "exit"
	clearCommand = "clear"
)

const interruptHint = "(To exit, press Ctrl+C again or Ctrl+D or type exit)"

type ishellHost struct {
	shell *ishell.Shell
	rl    *readline.Instance
}

// NewIShellHost starts a loop on a readline instance built from cfg. Lines
// are read from readline directly so they reach the session exactly as
// typed; the ishell shell on the same instance provides the progress bar
// and screen handling.
func NewIShellHost(cfg *readline.Config) (Host, error) {
	if cfg == nil {
		cfg = &readline.Config{}
	}
	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to start line editor: %w", err)
	}

	sh := ishell.NewWithReadline(rl)

	return &ishellHost{shell: sh, rl: rl}, nil
}

func (h *ishellHost) PushHistory(entry string) error {
	return h.rl.SaveHistory(entry)
}

func (h *ishellHost) ProgressBar() ishell.ProgressBar {
	return h.shell.ProgressBar()
}

// Run reads until EOF, "exit" or a second consecutive Ctrl+C.
func (h *ishellHost) Run(handle func(line string)) {
	interrupts := 0
	for {
		line, err := h.rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			interrupts++
			if interrupts >= 2 {
				return
			}
			h.shell.Println(interruptHint)
			continue
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				h.shell.Println(err.Error())
			}
			return
		}
		interrupts = 0

		switch strings.TrimSpace(line) {
		case "":
			continue
		case exitCommand:
			return
		case clearCommand:
			_ = h.shell.ClearScreen()
			continue
		}
		handle(line)
	}
}

func (h *ishellHost) Close() {
	_ = h.rl.Close()
}
