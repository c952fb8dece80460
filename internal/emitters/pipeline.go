// Package emitters turns a compilation into artifacts.
package emitters

import (
	"context"
	"fmt"

	"github.com/custodia-labs/iso4217/internal/core/domain"
	"github.com/custodia-labs/iso4217/internal/core/ports/driven"
	"github.com/custodia-labs/iso4217/internal/logger"
)

// Ensure Pipeline implements the interface.
var _ driven.EmitterPipeline = (*Pipeline)(nil)

// Pipeline runs several emitters in order.
type Pipeline struct {
	emitters []driven.Emitter
}

// NewPipeline creates a pipeline with the given emitters.
// Emitters are executed in the order provided.
func NewPipeline(emitters ...driven.Emitter) *Pipeline {
	return &Pipeline{
		emitters: emitters,
	}
}

// Emit runs every emitter over c, stopping at the first failure.
func (p *Pipeline) Emit(ctx context.Context, c *domain.Compilation) error {
	if c == nil {
		return fmt.Errorf("compilation is nil")
	}

	for _, e := range p.emitters {
		if err := ctx.Err(); err != nil {
			return err
		}
		logger.Debug("running emitter %s", e.Name())
		if err := e.Emit(ctx, c); err != nil {
			return fmt.Errorf("emitter %s: %w", e.Name(), err)
		}
	}

	return nil
}

// Add appends an emitter to the pipeline.
func (p *Pipeline) Add(e driven.Emitter) {
	p.emitters = append(p.emitters, e)
}

// Len returns the number of emitters in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.emitters)
}

// Names returns the emitter names in execution order.
func (p *Pipeline) Names() []string {
	names := make([]string, 0, len(p.emitters))
	for _, e := range p.emitters {
		names = append(names, e.Name())
	}
	return names
}
