package recording

import (
	"fmt"
	"slices"
	"sync"

	"github.com/gogpu/ggplot"
)

// BackendFactory creates a fresh backend for one playback.
type BackendFactory func() Backend

// Registry maps backend names to factories. It is safe for concurrent use.
//
// Backend packages register themselves into the process-wide registry from
// init, the way database/sql drivers do:
//
//	func init() {
//	    recording.Register("pdf", func() recording.Backend { return NewBackend() })
//	}
type Registry struct {
	mu        sync.RWMutex
	factories map[string]BackendFactory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]BackendFactory)}
}

// Register adds factory under name. It panics on a nil factory or a name
// that is already taken, so conflicts surface at program start.
func (r *Registry) Register(name string, factory BackendFactory) {
	if factory == nil {
		panic("recording: nil factory for backend " + name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.factories[name]; taken {
		panic("recording: backend " + name + " registered twice")
	}
	r.factories[name] = factory
}

// Unregister removes name. Unknown names are ignored.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	delete(r.factories, name)
	r.mu.Unlock()
}

// New creates a backend by name.
func (r *Registry) New(name string) (Backend, error) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("recording: unknown backend %q (forgotten import?)", name)
	}
	ggplot.Logger().Debug("recording: new backend", "name", name)
	return factory(), nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	r.mu.RUnlock()
	slices.Sort(names)
	return names
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[name]
	return ok
}

var defaultRegistry = NewRegistry()

// Register adds a backend to the process-wide registry. See [Registry.Register].
func Register(name string, factory BackendFactory) { defaultRegistry.Register(name, factory) }

// Unregister removes a backend from the process-wide registry.
func Unregister(name string) { defaultRegistry.Unregister(name) }

// NewBackend creates a backend from the process-wide registry. Backend
// packages must be imported for their names to exist:
//
//	import _ "github.com/gogpu/ggplot/recording/backends/pdf"
func NewBackend(name string) (Backend, error) { return defaultRegistry.New(name) }

// MustBackend is like NewBackend but panics on an unknown name.
func MustBackend(name string) Backend {
	b, err := NewBackend(name)
	if err != nil {
		panic(err)
	}
	return b
}

// Backends returns the sorted names in the process-wide registry.
func Backends() []string { return defaultRegistry.Names() }

// IsRegistered reports whether name is in the process-wide registry.
func IsRegistered(name string) bool { return defaultRegistry.Has(name) }
