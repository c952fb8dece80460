package driving

import (
	"context"
	"io"

	"github.com/custodia-labs/iso4217/internal/core/domain"
)

// CompilerService runs the compilation pipeline.
type CompilerService interface {
	// Compile parses a list-one document and returns the canonical data.
	// Any returned error is a build-time error.
	Compile(ctx context.Context, r io.Reader) (*domain.Compilation, error)

	// CompileFile is Compile over a file path.
	CompileFile(ctx context.Context, path string) (*domain.Compilation, error)

	// Emit passes a compilation to the configured emitters.
	Emit(ctx context.Context, c *domain.Compilation) error
}
