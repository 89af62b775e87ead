// Package registry maps action and guard names, as referenced by declarative
// graph files, to implementations supplied by the host's UI driver.
package registry

import (
	"fmt"
	"sync"

	"github.com/aretw0/scenic/pkg/domain"
)

// Factory builds an action from declarative arguments.
type Factory func(args map[string]any) (domain.Action, error)

// Registry manages the available actions and guards.
type Registry struct {
	mu       sync.RWMutex
	actions  map[string]Factory
	guards   map[string]domain.Guard
	fallback Factory
}

// RegistryOption configures a Registry at construction time.
type RegistryOption func(*Registry)

// WithFallback sets the factory used for names with no registration.
// Visualization and validation tooling uses a no-op fallback so graph files
// can be processed without a real UI driver.
func WithFallback(f Factory) RegistryOption {
	return func(r *Registry) {
		r.fallback = f
	}
}

// New creates a registry with the built-in "noop" action.
func New(opts ...RegistryOption) *Registry {
	r := &Registry{
		actions: make(map[string]Factory),
		guards:  make(map[string]domain.Guard),
	}
	r.Register("noop", func(map[string]any) (domain.Action, error) {
		return func() {}, nil
	})
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds an action factory. An existing name is overwritten.
func (r *Registry) Register(name string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions[name] = f
}

// RegisterGuard adds a named guard. An existing name is overwritten.
func (r *Registry) RegisterGuard(name string, g domain.Guard) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.guards[name] = g
}

// Resolve builds the action registered under name.
func (r *Registry) Resolve(name string, args map[string]any) (domain.Action, error) {
	r.mu.RLock()
	f, ok := r.actions[name]
	if !ok {
		f = r.fallback
	}
	r.mu.RUnlock()

	if f == nil {
		return nil, fmt.Errorf("action not registered: %s", name)
	}
	return f(args)
}

// ResolveGuard looks up the guard registered under name. With a fallback
// factory installed (tooling mode) an unknown guard resolves to an
// always-true predicate instead of an error.
func (r *Registry) ResolveGuard(name string) (domain.Guard, error) {
	r.mu.RLock()
	g, ok := r.guards[name]
	fallback := r.fallback != nil
	r.mu.RUnlock()

	if !ok {
		if fallback {
			return func() bool { return true }, nil
		}
		return nil, fmt.Errorf("guard not registered: %s", name)
	}
	return g, nil
}
