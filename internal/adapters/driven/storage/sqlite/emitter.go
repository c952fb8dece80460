package sqlite

import (
	"context"
	"fmt"

	"github.com/custodia-labs/iso4217/internal/core/domain"
	"github.com/custodia-labs/iso4217/internal/core/ports/driven"
	"github.com/custodia-labs/iso4217/internal/logger"
)

// Ensure Emitter implements the interface.
var _ driven.Emitter = (*Emitter)(nil)

// Emitter writes each compilation to a SQLite database file.
type Emitter struct {
	path string
}

// NewEmitter creates an emitter writing to path.
func NewEmitter(path string) *Emitter {
	return &Emitter{path: path}
}

// Name returns "sqlite".
func (e *Emitter) Name() string {
	return "sqlite"
}

// Emit opens the database, replaces its contents with c and closes it.
func (e *Emitter) Emit(ctx context.Context, c *domain.Compilation) error {
	store, err := NewStore(e.path)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Save(ctx, c); err != nil {
		return err
	}

	id, err := store.BuildID(ctx)
	if err != nil {
		return fmt.Errorf("reading build id: %w", err)
	}
	logger.Info("wrote %d currencies to %s (build %s)", len(c.Entries), store.Path(), id)
	return nil
}
