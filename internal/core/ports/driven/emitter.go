package driven

import (
	"context"

	"github.com/custodia-labs/iso4217/internal/core/domain"
)

// Emitter materialises a compilation as an artifact (Go source, SQLite, ...).
type Emitter interface {
	// Name returns the emitter name for logging and configuration.
	Name() string

	// Emit writes the artifact. It must not modify the compilation.
	Emit(ctx context.Context, c *domain.Compilation) error
}

// EmitterPipeline runs several emitters over one compilation.
type EmitterPipeline interface {
	// Emit runs every emitter in order, stopping at the first error.
	Emit(ctx context.Context, c *domain.Compilation) error
}
