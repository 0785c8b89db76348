// Package formats holds the named value formatters the rendering engine uses
// for the {value} token. A registry maps format names ("text", "date",
// "html", ...) to functions turning a raw value into display text.
package formats

import (
	"fmt"
	"sort"
	"sync"
)

// Func converts a raw value into display text.
type Func func(value any) (string, error)

// Registry stores formatters by name. Safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	formats map[string]Func
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{formats: make(map[string]Func)}
}

// NewDefaultRegistry creates a registry with the builtin formatters
// registered.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.registerBuiltins()
	return r
}

// Register adds a formatter by name. Duplicate names return an error.
func (r *Registry) Register(name string, fn Func) error {
	if name == "" {
		return fmt.Errorf("formats: format name is required")
	}
	if fn == nil {
		return fmt.Errorf("formats: formatter %q is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.formats[name]; exists {
		return fmt.Errorf("formats: format %q already registered", name)
	}
	r.formats[name] = fn
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(name string, fn Func) {
	if err := r.Register(name, fn); err != nil {
		panic(err)
	}
}

// Replace installs a formatter, overwriting any existing registration.
func (r *Registry) Replace(name string, fn Func) error {
	if name == "" || fn == nil {
		return fmt.Errorf("formats: name and formatter are required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.formats[name] = fn
	return nil
}

// Get retrieves a formatter by name.
func (r *Registry) Get(name string) (Func, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fn, ok := r.formats[name]
	if !ok {
		return nil, fmt.Errorf("formats: format %q not found", name)
	}
	return fn, nil
}

// Has reports whether a formatter is registered under name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.formats[name]
	return ok
}

// Format runs value through the named formatter. An empty name falls back to
// "text".
func (r *Registry) Format(value any, name string) (string, error) {
	if name == "" {
		name = "text"
	}
	fn, err := r.Get(name)
	if err != nil {
		return "", err
	}
	return fn(value)
}

// List returns the sorted formatter names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.formats))
	for name := range r.formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
