// Package registry holds the in-memory schema registry of log types.
// It performs no I/O; all methods are safe for concurrent use.
package registry

import (
	"sync"

	"github.com/heartmarshall/logbook/internal/domain"
)

// Registry maps log type names to their attribute schemas.
// Schemas are copied on the way in and out, so callers never share state
// with the registry.
type Registry struct {
	mu    sync.RWMutex
	types domain.LogTypes
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{types: make(domain.LogTypes)}
}

// Register inserts or replaces the schema stored under t.Name.
func (r *Registry) Register(t domain.LogType) {
	attrs := t.Attrs.Clone()

	r.mu.Lock()
	r.types[t.Name] = attrs
	r.mu.Unlock()
}

// RegisterMany registers every entry of types. It is a sequence of
// independent registrations, not an atomic batch.
func (r *Registry) RegisterMany(types domain.LogTypes) {
	for name, attrs := range types {
		r.Register(domain.LogType{Name: name, Attrs: attrs})
	}
}

// Lookup returns the schema registered under name.
// ok is false if no such type exists.
func (r *Registry) Lookup(name string) (attrs domain.LogAttrs, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.types[name]
	if !ok {
		return nil, false
	}
	return stored.Clone(), true
}

// List returns a snapshot of all registered types.
func (r *Registry) List() domain.LogTypes {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.types.Clone()
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.types)
}
