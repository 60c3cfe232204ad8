package testutils

import "sync"

// Indicator events recorded by Recorder.
const (
	EventPending   = "pending"
	EventSucceeded = "succeeded"
	EventFailed    = "failed"
)

// Recorder is a status indicator that logs every state change in order.
type Recorder struct {
	mu     sync.Mutex
	events []string
}

// Add appends an arbitrary event, letting tests interleave their own marks
// with indicator events.
func (r *Recorder) Add(event string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *Recorder) Pending() { r.Add(EventPending) }
func (r *Recorder) Succeeded() { r.Add(EventSucceeded) }
func (r *Recorder) Failed() { r.Add(EventFailed) }

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}
