// Package cli provides the cobra command tree for the iso4217 binary.
//
// Commands drive the core through the Services bundle set by main.
// Nothing in this package builds adapters itself, so tests can inject
// in-memory stores and fakes.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/iso4217/internal/core/domain"
	"github.com/custodia-labs/iso4217/internal/core/ports/driven"
	"github.com/custodia-labs/iso4217/internal/core/ports/driving"
	"github.com/custodia-labs/iso4217/internal/emitters"
	"github.com/custodia-labs/iso4217/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	configPath string
	verbose    bool
)

// Services bundles the ports and factories the commands drive.
type Services struct {
	// NewCompiler returns a compiler that writes through emitters.
	// emitters may be nil.
	NewCompiler func(emitters driven.EmitterPipeline) driving.CompilerService

	// Emitters builds emitters by name.
	Emitters *emitters.Registry

	// NewLookup builds a lookup service over a compilation.
	NewLookup func(c *domain.Compilation) (driving.LookupService, error)

	// OpenStore opens the compilation store at path.
	OpenStore func(path string) (driven.CompilationStore, error)

	// OpenConfig opens the config store at path. Empty path means the default.
	OpenConfig func(path string) (driven.ConfigStore, error)
}

var services *Services

// ErrServicesNotConfigured is returned when a command runs before SetServices.
var ErrServicesNotConfigured = errors.New("services not configured")

// SetServices injects the dependencies used by all commands.
func SetServices(s *Services) {
	services = s
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

var rootCmd = &cobra.Command{
	Use:   "iso4217",
	Short: "Compile the ISO 4217 currency list into a lookup registry",
	Long: `iso4217 compiles the ISO 4217 list-one XML document into an immutable
currency registry indexed by numeric code, alphabetic code and country.

The registry can be emitted as a Go package, stored in SQLite, queried
from the command line, or served to AI assistants over MCP. Without an
input file the embedded 2026-01-01 snapshot is used.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log each pipeline stage to stderr")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default ./iso4217.toml)")
}

// Execute runs the root command.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx, which long-running
// commands (compile --watch, mcp serve) stop on.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func requireServices() error {
	if services == nil {
		return ErrServicesNotConfigured
	}
	return nil
}

func loadConfig() (driven.ConfigStore, error) {
	if err := requireServices(); err != nil {
		return nil, err
	}
	if services.OpenConfig == nil {
		return nil, errors.New("config store not configured")
	}
	return services.OpenConfig(configPath)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
