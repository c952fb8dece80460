package emitters

import (
	"fmt"
	"sort"

	"github.com/custodia-labs/iso4217/internal/core/ports/driven"
)

// BuilderFunc creates an Emitter from generic config.
// Config is a map of emitter-specific settings parsed from user config.
type BuilderFunc func(cfg map[string]any) (driven.Emitter, error)

// Registry maps emitter names to their builders.
// It allows dynamic construction of emitters from configuration.
type Registry struct {
	builders map[string]BuilderFunc
}

// NewRegistry creates a new emitter registry.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]BuilderFunc),
	}
}

// Register adds an emitter builder to the registry.
// Name should be unique and match the emitter's Name() return value.
func (r *Registry) Register(name string, builder BuilderFunc) {
	r.builders[name] = builder
}

// Build creates an emitter by name with the given config.
// Returns error if the emitter name is not registered.
func (r *Registry) Build(name string, cfg map[string]any) (driven.Emitter, error) {
	builder, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown emitter: %s", name)
	}
	return builder(cfg)
}

// Has returns true if an emitter with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.builders[name]
	return ok
}

// Names returns all registered emitter names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
