package history

import (
	"strings"
	"sync"
)

// Buffer is the live, most-recent-first history of a session.
type Buffer struct {
	mu      sync.RWMutex
	entries []string
}

// NewBuffer returns a buffer holding entries, which must already be ordered
// most-recent-first.
func NewBuffer(entries ...string) *Buffer {
	b := &Buffer{}
	for _, entry := range entries {
		b.Append(entry)
	}
	return b
}

// Append pushes entry behind the existing entries, as an older command. It is
// used to populate the buffer from Load's result in order.
func (b *Buffer) Append(entry string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries = append(b.entries, entry)
}

// Add records a newly accepted command as the most recent entry. Blank input
// and a repeat of the most recent entry are ignored.
func (b *Buffer) Add(command string) bool {
	if strings.TrimSpace(command) == "" {
		return false
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.entries) > 0 && b.entries[0] == command {
		return false
	}
	b.entries = append(b.entries, "")
	copy(b.entries[1:], b.entries)
	b.entries[0] = command
	return true
}

// Entries returns a snapshot of the buffer, most-recent-first.
func (b *Buffer) Entries() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	snapshot := make([]string, len(b.entries))
	copy(snapshot, b.entries)
	return snapshot
}

// Len returns the number of entries.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.entries)
}
