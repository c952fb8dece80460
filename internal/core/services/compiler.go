package services

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/custodia-labs/iso4217/internal/core/domain"
	"github.com/custodia-labs/iso4217/internal/core/ports/driven"
	"github.com/custodia-labs/iso4217/internal/core/ports/driving"
	"github.com/custodia-labs/iso4217/internal/logger"
	"github.com/custodia-labs/iso4217/internal/normalisers/country"
	"github.com/custodia-labs/iso4217/internal/normalisers/entry"
	"github.com/custodia-labs/iso4217/internal/normalisers/tables"
	"github.com/custodia-labs/iso4217/internal/registry"
)

// Ensure CompilerService implements the interface.
var _ driving.CompilerService = (*CompilerService)(nil)

// CompilerService runs parse, normalise, map and build over one document.
type CompilerService struct {
	parser    driven.DocumentParser
	tables    *tables.Tables
	countries driven.CountryRegistry
	emitters  driven.EmitterPipeline
}

// NewCompilerService creates a new compiler service.
// The emitters parameter is optional (can be nil).
func NewCompilerService(
	parser driven.DocumentParser,
	tbl *tables.Tables,
	countries driven.CountryRegistry,
	emitters driven.EmitterPipeline,
) *CompilerService {
	return &CompilerService{
		parser:    parser,
		tables:    tbl,
		countries: countries,
		emitters:  emitters,
	}
}

// Compile parses the document read from r and returns the canonical data.
// The registry is built once as a final consistency check, so a compilation
// returned without error is always accepted by registry.Build.
//
// Non-fatal problems are recorded in Compilation.Warnings and reported
// with logger.WarnContext, so a ctx from logger.WithQuiet silences them.
func (s *CompilerService) Compile(ctx context.Context, r io.Reader) (*domain.Compilation, error) {
	if s.parser == nil || s.tables == nil || s.countries == nil {
		return nil, domain.ErrInvalidInput
	}

	logger.Section("Parse")
	stop := logger.Timed("parse")
	doc, err := s.parser.Parse(r)
	stop()
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	logger.Debug("read %d table entries", len(doc.Table.Entries))

	var warnings []string
	warn := func(msg string) {
		warnings = append(warnings, msg)
		logger.WarnContext(ctx, "%s", msg)
	}

	if published, err := doc.PublishedDate(); err != nil {
		warn(fmt.Sprintf("publication date: %v", err))
	} else {
		logger.Info("published %s", published.Format(domain.PublishedLayout))
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Section("Normalise")
	res, err := entry.Normalise(doc.Table.Entries, s.tables)
	if err != nil {
		return nil, fmt.Errorf("normalising entries: %w", err)
	}

	logger.Section("Map Countries")
	mapped, err := country.Map(doc.Table.Entries, res.Entries, s.tables)
	if err != nil {
		return nil, fmt.Errorf("mapping countries: %w", err)
	}
	for _, o := range mapped.Overwrites {
		warn(o.String())
	}

	c := &domain.Compilation{
		Published:         doc.Published,
		TablesVersion:     s.tables.Version,
		Entries:           res.Entries,
		Associations:      mapped.Associations,
		CountriesByNumber: res.CountriesByNumber,
		Warnings:          warnings,
	}

	logger.Section("Build Registry")
	if _, err := registry.Build(c, s.countries); err != nil {
		return nil, fmt.Errorf("building registry: %w", err)
	}
	logger.Debug("registry holds %d currencies and %d countries", len(c.Entries), len(c.Associations))

	return c, nil
}

// CompileFile opens path and compiles it.
func (s *CompilerService) CompileFile(ctx context.Context, path string) (*domain.Compilation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return s.Compile(ctx, f)
}

// Emit passes a compilation to the configured emitters.
// It is a no-op when no emitters are configured.
func (s *CompilerService) Emit(ctx context.Context, c *domain.Compilation) error {
	if c == nil {
		return domain.ErrInvalidInput
	}
	if s.emitters == nil {
		logger.Debug("no emitters configured")
		return nil
	}

	logger.Section("Emit")
	return s.emitters.Emit(ctx, c)
}
