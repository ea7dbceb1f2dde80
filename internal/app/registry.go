package app

import (
	"fmt"

	"principal-passwd/internal/app/ports"
)

// Registry is the ordered scheme registry. It is built once during wiring
// and never mutated afterwards, so concurrent reads need no synchronization.
type Registry struct {
	entries []ports.RegistryEntry
	byName  map[string]ports.PasswordManager
}

// Enforce compile-time conformance to the interface
var _ ports.SchemeRegistry = (*Registry)(nil)

func NewRegistry(entries []ports.RegistryEntry) (*Registry, error) {
	byName := make(map[string]ports.PasswordManager, len(entries))
	for _, e := range entries {
		if e.Manager == nil {
			return nil, fmt.Errorf("%w: scheme %q has no manager", ports.ErrInvalidInput, e.Name)
		}
		if _, dup := byName[e.Name]; dup {
			return nil, fmt.Errorf("%w: scheme %q registered twice", ports.ErrInvalidInput, e.Name)
		}
		byName[e.Name] = e.Manager
	}
	return &Registry{entries: entries, byName: byName}, nil
}

// Entries returns a copy of the schemes in registration order. Mutating the
// returned slice does not affect the registry.
func (r *Registry) Entries() []ports.RegistryEntry {
	return append([]ports.RegistryEntry(nil), r.entries...)
}

// Lookup returns the manager registered under the exact name.
func (r *Registry) Lookup(name string) (ports.PasswordManager, bool) {
	m, ok := r.byName[name]
	return m, ok
}

// Find returns the first scheme whose Match claims encoded, in registration
// order. First match wins; callers must not rely on uniqueness.
func (r *Registry) Find(encoded string) (string, ports.PasswordManager, bool) {
	for _, e := range r.entries {
		if e.Manager.Match(encoded) {
			return e.Name, e.Manager, true
		}
	}
	return "", nil, false
}
