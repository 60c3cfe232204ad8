package status

import (
	"fmt"
	"io"
	"sync"
)

// Line writes one status line per state change. It is used when the status
// stream is not a terminal.
type Line struct {
	mu sync.Mutex
	w  io.Writer
}

// NewLine returns a Line indicator writing to w.
func NewLine(w io.Writer) *Line {
	return &Line{w: w}
}

// Pending implements Indicator.
func (l *Line) Pending() { l.write(pendingMark, PendingText) }

// Succeeded implements Indicator.
func (l *Line) Succeeded() { l.write(succeedMark, SucceededText) }

// Failed implements Indicator.
func (l *Line) Failed() { l.write(failedMark, FailedText) }

func (l *Line) write(mark, text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = fmt.Fprintf(l.w, "%s %s\n", mark, textStyle.Render(text))
}
