package fixture

import (
	"fmt"
	"sync"
)

// Registry manages fixture generators, preserving registration order so
// the numbered banners come out in a stable sequence
type Registry struct {
	mu     sync.RWMutex
	order  []string
	byName map[string]Generator
}

// NewRegistry creates an empty fixture registry
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]Generator),
	}
}

// Register adds a generator to the registry; re-registering a name
// replaces the generator but keeps its original position
func (r *Registry) Register(g Generator) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[g.Name()]; !exists {
		r.order = append(r.order, g.Name())
	}
	r.byName[g.Name()] = g
}

// Get returns a generator by name
func (r *Registry) Get(name string) (Generator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("fixture %q not found", name)
	}

	return g, nil
}

// List returns all registered generators in registration order
func (r *Registry) List() []Generator {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Generator, 0, len(r.order))
	for _, name := range r.order {
		result = append(result, r.byName[name])
	}

	return result
}
