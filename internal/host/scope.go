package host

import (
	"sort"
	"sync"

	"apprepl/pkg/repltypes"
)

// LastResultName is the variable holding the previous successful result.
const LastResultName = "_"

// Scope is the interpreter's variable context.
type Scope struct {
	mu   sync.RWMutex
	vars map[string]any
}

var _ repltypes.Scope = (*Scope)(nil)

// NewScope returns an empty scope.
func NewScope() *Scope {
	return &Scope{vars: make(map[string]any)}
}

// Get returns the variable called name.
func (s *Scope) Get(name string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.vars[name]
	return value, ok
}

// Set binds name to value, replacing any previous binding.
func (s *Scope) Set(name string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vars[name] = value
}

// Inject binds every local, in the manner of Object.assign: later bindings
// win over existing ones.
func (s *Scope) Inject(locals repltypes.Locals) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for name, value := range locals {
		s.vars[name] = value
	}
}

// Names returns the bound names in sorted order.
func (s *Scope) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.vars))
	for name := range s.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
