package driven

import (
	"context"

	"github.com/custodia-labs/iso4217/internal/core/domain"
)

// CompilationStore persists compilations.
// Backed by SQLite so a registry can be rebuilt without the source document.
type CompilationStore interface {
	// Save replaces the stored compilation.
	Save(ctx context.Context, c *domain.Compilation) error

	// Load returns the stored compilation.
	// Returns domain.ErrNotFound when nothing has been saved.
	Load(ctx context.Context) (*domain.Compilation, error)

	// BuildID returns the identifier of the stored build.
	BuildID(ctx context.Context) (string, error)

	// Close releases the underlying database.
	Close() error
}
