package cli

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/iso4217/internal/core/ports/driven"
)

// configKeys are the keys config set accepts.
var configKeys = []string{
	driven.ConfigInput,
	driven.ConfigZerocopy,
	driven.ConfigGoSourceOutput,
	driven.ConfigGoSourcePackage,
	driven.ConfigSQLitePath,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage compiler configuration",
	Long: `View and change the settings stored in iso4217.toml.

Known keys:
  input                  list-one XML file to compile
  zerocopy               true, false, or a build tag name
  emit.gosource.output   generated Go file
  emit.gosource.package  package clause of the generated file
  emit.sqlite.path       SQLite database for the compilation`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cmd.Printf("Config file: %s\n", cfg.Path())
	cmd.Println()

	keys := cfg.Keys()
	if len(keys) == 0 {
		cmd.Println("No settings. The embedded snapshot is compiled and nothing is emitted.")
		return nil
	}

	for _, key := range keys {
		val, _ := cfg.Get(key)
		cmd.Printf("  %s = %v\n", key, val)
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, raw := args[0], args[1]
	if !slices.Contains(configKeys, key) {
		return fmt.Errorf("unknown config key %q (known: %s)", key, strings.Join(configKeys, ", "))
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	value := parseConfigValue(key, raw)
	if err := cfg.Set(key, value); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	cmd.Printf("Set %s = %v\n", key, value)
	return nil
}

// parseConfigValue keeps zerocopy booleans typed; everything else is a string.
func parseConfigValue(key, raw string) any {
	if key == driven.ConfigZerocopy {
		if b, err := strconv.ParseBool(raw); err == nil {
			return b
		}
	}
	return raw
}
