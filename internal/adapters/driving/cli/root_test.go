package cli

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/iso4217/internal/adapters/driven/iso3166"
	"github.com/custodia-labs/iso4217/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/iso4217/internal/adapters/driven/xmldoc"
	"github.com/custodia-labs/iso4217/internal/core/domain"
	"github.com/custodia-labs/iso4217/internal/core/ports/driven"
	"github.com/custodia-labs/iso4217/internal/core/ports/driving"
	coreservices "github.com/custodia-labs/iso4217/internal/core/services"
	"github.com/custodia-labs/iso4217/internal/emitters"
	"github.com/custodia-labs/iso4217/internal/logger"
	"github.com/custodia-labs/iso4217/internal/normalisers/tables"
	"github.com/custodia-labs/iso4217/internal/registry"
)

// setupTestServices wires real services over an in-memory config store.
func setupTestServices(t *testing.T) *mockConfigStore {
	t.Helper()

	tbl, err := tables.Default()
	require.NoError(t, err)

	countries := iso3166.New()
	parser := xmldoc.New()
	reg := emitters.NewRegistry()
	emitters.RegisterDefaults(reg, countries)
	cfg := newMockConfigStore()

	old := services
	services = &Services{
		NewCompiler: func(pipeline driven.EmitterPipeline) driving.CompilerService {
			return coreservices.NewCompilerService(parser, tbl, countries, pipeline)
		},
		Emitters: reg,
		NewLookup: func(c *domain.Compilation) (driving.LookupService, error) {
			r, err := registry.Build(c, countries)
			if err != nil {
				return nil, err
			}
			return coreservices.NewLookupService(r, countries), nil
		},
		OpenStore: func(path string) (driven.CompilationStore, error) {
			store, err := sqlite.NewStore(path)
			if err != nil {
				return nil, err
			}
			return store, nil
		},
		OpenConfig: func(_ string) (driven.ConfigStore, error) {
			return cfg, nil
		},
	}

	logger.SetOutput(io.Discard)
	t.Cleanup(func() {
		services = old
		logger.SetOutput(os.Stderr)
		logger.SetVerbose(false)
		logger.ResetWarnings()
	})

	return cfg
}

// resetFlags restores every flag to its default so tests sharing rootCmd
// do not leak values into each other.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs rootCmd with args and returns everything it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		resetFlags(rootCmd)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "iso4217", rootCmd.Use)
	assert.Contains(t, rootCmd.Long, "ISO 4217")
}

func TestRootCmd_Subcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"compile", "lookup", "list", "country", "config", "mcp", "version"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, flag)
	assert.Equal(t, "v", flag.Shorthand)

	flag = rootCmd.PersistentFlags().Lookup("config")
	require.NotNil(t, flag)
	assert.Equal(t, "c", flag.Shorthand)
}

func TestRootCmd_VerboseFlagEnablesLogger(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "--verbose", "version")
	require.NoError(t, err)
	assert.True(t, logger.IsVerbose())
}

func TestCommands_RequireServices(t *testing.T) {
	old := services
	services = nil
	defer func() { services = old }()

	for _, args := range [][]string{
		{"compile"},
		{"lookup", "USD"},
		{"list"},
		{"country", "FR"},
		{"config", "show"},
	} {
		_, err := execute(t, args...)
		assert.ErrorIs(t, err, ErrServicesNotConfigured, "%v", args)
	}
}

func TestSetVersion(t *testing.T) {
	original := version
	defer func() { version = original }()

	SetVersion("")
	assert.Equal(t, original, version)

	SetVersion("1.2.3")
	assert.Equal(t, "1.2.3", version)
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "b", firstNonEmpty("", "b", "c"))
	assert.Equal(t, "", firstNonEmpty("", ""))
	assert.Equal(t, "", firstNonEmpty())
}
