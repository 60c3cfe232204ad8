// Package testutils provides deterministic generators and fakes shared by the
// apprepl package tests.
package testutils

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

var (
	idCounter uint64
	idMutex   sync.Mutex
)

// DeterministicUUID returns sequential UUIDs in v4 layout:
// 00000001-0000-4000-8000-000000000001, 00000002-0000-4000-8000-000000000002, ...
func DeterministicUUID() string {
	idMutex.Lock()
	defer idMutex.Unlock()

	idCounter++
	return uuid.MustParse(fmt.Sprintf("%08x-0000-4000-8000-%012x", idCounter, idCounter)).String()
}

// ResetTestCounters restarts the deterministic sequences.
func ResetTestCounters() {
	idMutex.Lock()
	defer idMutex.Unlock()
	idCounter = 0
}
