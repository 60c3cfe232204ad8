package testutils

import (
	"sync"

	"github.com/abiosoft/ishell/v2"
)

// FakeHost replays scripted lines instead of reading a terminal. It satisfies
// the session host contract.
type FakeHost struct {
	mu     sync.Mutex
	Lines  []string
	pushed []string
	closed int
}

// NewFakeHost returns a host that feeds lines to the session in order.
func NewFakeHost(lines ...string) *FakeHost {
	return &FakeHost{Lines: lines}
}

func (h *FakeHost) PushHistory(entry string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.pushed = append(h.pushed, entry)
	return nil
}

func (h *FakeHost) ProgressBar() ishell.ProgressBar { return nil }

func (h *FakeHost) Run(handle func(line string)) {
	for _, line := range h.Lines {
		handle(line)
	}
}

func (h *FakeHost) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed++
}

// Pushed returns the entries pushed into the navigable history, in order.
func (h *FakeHost) Pushed() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.pushed...)
}

// Closed reports how many times Close was called.
func (h *FakeHost) Closed() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.closed
}
