package compressor

import (
	"fmt"

	"klafsa/internal/planner"
	"klafsa/internal/texture"
)

// Factory constructs the compressor for one backend.
type Factory func(texture.Backend) (Compressor, error)

// DefaultFactory builds real compressors, locating tools with look.
func DefaultFactory(look LookPath) Factory {
	return func(b texture.Backend) (Compressor, error) {
		return New(b, look)
	}
}

// Registry holds the compressors a run needs. Each backend is built at most
// once. A Registry is not safe for concurrent use.
type Registry struct {
	factory     Factory
	compressors map[texture.Backend]Compressor
}

// NewRegistry returns an empty registry using factory.
func NewRegistry(factory Factory) *Registry {
	return &Registry{
		factory:     factory,
		compressors: make(map[texture.Backend]Compressor),
	}
}

// Prepare builds every backend the plan references and nothing else. It
// stops at the first backend that cannot be constructed.
func (r *Registry) Prepare(plan planner.FormatPlan) error {
	for _, b := range plan.Backends() {
		if _, err := r.Ensure(b); err != nil {
			return err
		}
	}
	return nil
}

// Ensure returns the compressor for b, constructing it on first use.
func (r *Registry) Ensure(b texture.Backend) (Compressor, error) {
	if c, ok := r.compressors[b]; ok {
		return c, nil
	}
	c, err := r.factory(b)
	if err != nil {
		return nil, fmt.Errorf("create %s compressor: %w", b, err)
	}
	r.compressors[b] = c
	return c, nil
}

// Get returns an already prepared compressor.
func (r *Registry) Get(b texture.Backend) (Compressor, bool) {
	c, ok := r.compressors[b]
	return c, ok
}

// Len reports how many backends have been constructed.
func (r *Registry) Len() int {
	return len(r.compressors)
}
