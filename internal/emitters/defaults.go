package emitters

import (
	"fmt"

	"github.com/custodia-labs/iso4217/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/iso4217/internal/core/ports/driven"
	"github.com/custodia-labs/iso4217/internal/emitters/gosource"
)

// RegisterDefaults registers all built-in emitters with the registry.
// The gosource emitter resolves country codes through countries.
func RegisterDefaults(r *Registry, countries driven.CountryRegistry) {
	r.Register("gosource", func(cfg map[string]any) (driven.Emitter, error) {
		return buildGoSource(cfg, countries)
	})
	r.Register("sqlite", buildSQLite)
}

// buildGoSource creates a Go source emitter from generic config.
// Supported config keys:
//   - output (string): Path of the generated file (required)
//   - package (string): Package clause of the generated file (default: iso4217)
//   - zerocopy (bool or string): Emit binary marshalling behind a build tag
func buildGoSource(cfg map[string]any, countries driven.CountryRegistry) (driven.Emitter, error) {
	output := getStringFromConfig(cfg, "output")
	if output == "" {
		return nil, fmt.Errorf("gosource: output is required")
	}

	feature, err := gosource.Feature(cfg["zerocopy"])
	if err != nil {
		return nil, fmt.Errorf("gosource: %w", err)
	}

	e, err := gosource.New(gosource.Options{
		Output:   output,
		Package:  getStringFromConfig(cfg, "package"),
		Zerocopy: feature,
	}, countries)
	if err != nil {
		return nil, fmt.Errorf("gosource: %w", err)
	}
	return e, nil
}

// buildSQLite creates a SQLite emitter from generic config.
// Supported config keys:
//   - path (string): Database file or directory (required)
func buildSQLite(cfg map[string]any) (driven.Emitter, error) {
	path := getStringFromConfig(cfg, "path")
	if path == "" {
		return nil, fmt.Errorf("sqlite: path is required")
	}
	return sqlite.NewEmitter(path), nil
}

// getStringFromConfig safely extracts a string from generic config map.
func getStringFromConfig(cfg map[string]any, key string) string {
	if cfg == nil {
		return ""
	}
	s, _ := cfg[key].(string)
	return s
}
