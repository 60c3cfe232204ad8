package status

import (
	"sync"

	"github.com/abiosoft/ishell/v2"
)

// Spinner animates the shell's progress bar while a computation is pending and
// replaces it with a final status line once it settles.
type Spinner struct {
	mu      sync.Mutex
	bar     ishell.ProgressBar
	running bool
}

// NewSpinner returns a Spinner driving bar.
func NewSpinner(bar ishell.ProgressBar) *Spinner {
	return &Spinner{bar: bar}
}

// Pending implements Indicator.
func (s *Spinner) Pending() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bar.Indeterminate(true)
	s.bar.Prefix("")
	s.bar.Suffix(" " + textStyle.Render(PendingText))
	s.bar.Final("")
	s.bar.Start()
	s.running = true
}

// Succeeded implements Indicator.
func (s *Spinner) Succeeded() { s.stop(succeedMark + " " + textStyle.Render(SucceededText)) }

// Failed implements Indicator.
func (s *Spinner) Failed() { s.stop(failedMark + " " + textStyle.Render(FailedText)) }

func (s *Spinner) stop(final string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.bar.Final(final)
	s.bar.Stop()
	s.running = false
}
