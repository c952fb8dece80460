package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/iso4217/internal/core/domain"
	"github.com/custodia-labs/iso4217/internal/core/ports/driven"
	"github.com/custodia-labs/iso4217/internal/core/ports/driving"
	"github.com/custodia-labs/iso4217/internal/logger"
	"github.com/custodia-labs/iso4217/internal/snapshot"
)

// Flags selecting where query commands read the registry from.
var (
	sourceInput string
	sourceDB    string
)

func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&sourceInput, "input", "i", "", "list-one XML file (default: config input, then the embedded snapshot)")
	cmd.Flags().StringVar(&sourceDB, "db", "", "read a stored compilation from this SQLite database instead")
}

// compileInput compiles path, or the embedded snapshot when path is empty.
func compileInput(ctx context.Context, compiler driving.CompilerService, path string) (*domain.Compilation, error) {
	if path == "" {
		logger.Debug("using embedded snapshot published %s", snapshot.Published)
		return compiler.Compile(ctx, bytes.NewReader(snapshot.ListOne))
	}
	return compiler.CompileFile(ctx, path)
}

// loadCompilation resolves the registry source for query commands.
// Normalisation warnings are only shown in verbose mode.
func loadCompilation(ctx context.Context) (*domain.Compilation, error) {
	if err := requireServices(); err != nil {
		return nil, err
	}

	if sourceDB != "" {
		return loadStored(ctx, sourceDB)
	}

	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return compileInput(logger.WithQuiet(ctx), services.NewCompiler(nil), firstNonEmpty(sourceInput, cfg.GetString(driven.ConfigInput)))
}

func loadStored(ctx context.Context, path string) (*domain.Compilation, error) {
	if services.OpenStore == nil {
		return nil, errors.New("compilation store not configured")
	}

	store, err := services.OpenStore(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer store.Close()

	c, err := store.Load(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("no compilation stored in %s, run 'iso4217 compile --db %s' first: %w", path, path, err)
	}
	if err != nil {
		return nil, fmt.Errorf("loading compilation: %w", err)
	}
	return c, nil
}

// loadLookup builds a lookup service over the selected registry source.
func loadLookup(ctx context.Context) (driving.LookupService, error) {
	c, err := loadCompilation(ctx)
	if err != nil {
		return nil, err
	}
	return services.NewLookup(c)
}
