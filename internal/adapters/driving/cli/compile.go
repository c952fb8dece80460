package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/iso4217/internal/core/ports/driven"
	"github.com/custodia-labs/iso4217/internal/core/ports/driving"
	"github.com/custodia-labs/iso4217/internal/emitters"
)

var (
	compileOutput   string
	compilePackage  string
	compileDB       string
	compileZerocopy string
	compileEmit     string
	compileWatch    bool
)

var compileCmd = &cobra.Command{
	Use:   "compile [list-one.xml]",
	Short: "Compile the currency list and run the configured emitters",
	Long: `Parses the ISO 4217 list-one document, normalises it into canonical
currencies and country associations, checks that a registry can be built,
then runs the selected emitters.

The input is the argument, else the config key "input", else the embedded
snapshot. Emitters run when their destination is set:
  gosource  --output or emit.gosource.output
  sqlite    --db or emit.sqlite.path

Use --emit to pick emitters explicitly (comma-separated) and --watch to
rebuild whenever the input file changes.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCompile,
}

func init() {
	compileCmd.Flags().StringVarP(&compileOutput, "output", "o", "", "generated Go file")
	compileCmd.Flags().StringVar(&compilePackage, "package", "", "package clause of the generated file (default iso4217)")
	compileCmd.Flags().StringVar(&compileDB, "db", "", "SQLite database to store the compilation in")
	compileCmd.Flags().StringVar(&compileZerocopy, "zerocopy", "", "emit binary marshalling behind this build tag (true = zerocopy)")
	compileCmd.Flags().Lookup("zerocopy").NoOptDefVal = "true"
	compileCmd.Flags().StringVar(&compileEmit, "emit", "", "comma-separated emitters to run (default: every configured one)")
	compileCmd.Flags().BoolVarP(&compileWatch, "watch", "w", false, "recompile when the input file changes")
	rootCmd.AddCommand(compileCmd)
}

func runCompile(cmd *cobra.Command, args []string) error {
	if err := requireServices(); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	input := cfg.GetString(driven.ConfigInput)
	if len(args) == 1 {
		input = args[0]
	}

	pipeline, err := buildPipeline(cfg)
	if err != nil {
		return err
	}
	compiler := services.NewCompiler(pipeline)

	ctx := cmd.Context()
	if err := compileOnce(ctx, cmd, compiler, pipeline, input); err != nil {
		return err
	}

	if !compileWatch {
		return nil
	}
	if input == "" {
		return fmt.Errorf("--watch needs an input file")
	}

	cmd.Printf("Watching %s for changes (Ctrl+C to stop)\n", input)
	return watchInput(ctx, input, func() error {
		return compileOnce(ctx, cmd, compiler, pipeline, input)
	})
}

func compileOnce(
	ctx context.Context,
	cmd *cobra.Command,
	compiler driving.CompilerService,
	pipeline *emitters.Pipeline,
	input string,
) error {
	c, err := compileInput(ctx, compiler, input)
	if err != nil {
		return fmt.Errorf("compile failed: %w", err)
	}
	if err := compiler.Emit(ctx, c); err != nil {
		return fmt.Errorf("emit failed: %w", err)
	}

	source := input
	if source == "" {
		source = "embedded snapshot"
	}
	cmd.Printf("Compiled %d currencies and %d country associations from %s\n",
		len(c.Entries), len(c.Associations), source)
	cmd.Printf("  Published: %s, substitution tables v%d\n", c.Published, c.TablesVersion)
	if n := len(c.Warnings); n > 0 {
		cmd.Printf("  Warnings: %d (see stderr)\n", n)
	}
	if pipeline.Len() == 0 {
		cmd.Println("  No emitters configured, nothing written.")
	} else {
		cmd.Printf("  Emitted: %s\n", strings.Join(pipeline.Names(), ", "))
	}
	return nil
}

// buildPipeline resolves emitter settings from flags over config.
func buildPipeline(cfg driven.ConfigStore) (*emitters.Pipeline, error) {
	settings := map[string]map[string]any{
		"gosource": {
			"output":   firstNonEmpty(compileOutput, cfg.GetString(driven.ConfigGoSourceOutput)),
			"package":  firstNonEmpty(compilePackage, cfg.GetString(driven.ConfigGoSourcePackage)),
			"zerocopy": zerocopySetting(cfg),
		},
		"sqlite": {
			"path": firstNonEmpty(compileDB, cfg.GetString(driven.ConfigSQLitePath)),
		},
	}

	var names []string
	if compileEmit != "" {
		for _, name := range strings.Split(compileEmit, ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
	} else {
		if settings["gosource"]["output"] != "" {
			names = append(names, "gosource")
		}
		if settings["sqlite"]["path"] != "" {
			names = append(names, "sqlite")
		}
	}

	pipeline := emitters.NewPipeline()
	if len(names) > 0 && services.Emitters == nil {
		return nil, errors.New("emitters not configured")
	}
	for _, name := range names {
		if !services.Emitters.Has(name) {
			return nil, fmt.Errorf("unknown emitter %q (available: %s)", name, strings.Join(services.Emitters.Names(), ", "))
		}
		e, err := services.Emitters.Build(name, settings[name])
		if err != nil {
			return nil, err
		}
		pipeline.Add(e)
	}
	return pipeline, nil
}

// zerocopySetting returns the flag value when given, else the raw config
// value, which may be a bool or a feature name.
func zerocopySetting(cfg driven.ConfigStore) any {
	if compileZerocopy != "" {
		return compileZerocopy
	}
	v, _ := cfg.Get(driven.ConfigZerocopy)
	return v
}
