// Command iso4217 compiles the ISO 4217 currency list and queries the result.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/iso4217/internal/adapters/driven/config/file"
	"github.com/custodia-labs/iso4217/internal/adapters/driven/iso3166"
	"github.com/custodia-labs/iso4217/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/iso4217/internal/adapters/driven/xmldoc"
	"github.com/custodia-labs/iso4217/internal/adapters/driving/cli"
	"github.com/custodia-labs/iso4217/internal/core/domain"
	"github.com/custodia-labs/iso4217/internal/core/ports/driven"
	"github.com/custodia-labs/iso4217/internal/core/ports/driving"
	"github.com/custodia-labs/iso4217/internal/core/services"
	"github.com/custodia-labs/iso4217/internal/emitters"
	"github.com/custodia-labs/iso4217/internal/normalisers/tables"
	"github.com/custodia-labs/iso4217/internal/registry"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	tbl, err := tables.Default()
	if err != nil {
		return fmt.Errorf("loading substitution tables: %w", err)
	}

	countries := iso3166.New()
	parser := xmldoc.New()

	emitterRegistry := emitters.NewRegistry()
	emitters.RegisterDefaults(emitterRegistry, countries)

	cli.SetVersion(version)
	cli.SetServices(&cli.Services{
		NewCompiler: func(pipeline driven.EmitterPipeline) driving.CompilerService {
			return services.NewCompilerService(parser, tbl, countries, pipeline)
		},
		Emitters: emitterRegistry,
		NewLookup: func(c *domain.Compilation) (driving.LookupService, error) {
			reg, err := registry.Build(c, countries)
			if err != nil {
				return nil, fmt.Errorf("building registry: %w", err)
			}
			return services.NewLookupService(reg, countries), nil
		},
		OpenStore: func(path string) (driven.CompilationStore, error) {
			store, err := sqlite.NewStore(path)
			if err != nil {
				return nil, err
			}
			return store, nil
		},
		OpenConfig: func(path string) (driven.ConfigStore, error) {
			store, err := file.NewConfigStore(path)
			if err != nil {
				return nil, err
			}
			return store, nil
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cli.ExecuteContext(ctx)
}
