// Package gosource emits the registry as a self-contained Go package.
//
// The generated file declares a Currency type over the numeric code with
// one constant per canonical entry, switch-based lookups by numeric and
// alphabetic code, scalar accessors, and country lookups keyed by all three
// ISO 3166-1 code spaces. When a zero-copy feature is configured a second
// file adds MarshalBinary and UnmarshalBinary behind a build tag of that name.
package gosource

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"text/template"

	"github.com/custodia-labs/iso4217/internal/core/domain"
	"github.com/custodia-labs/iso4217/internal/core/ports/driven"
	"github.com/custodia-labs/iso4217/internal/logger"
)

// DefaultPackage is the package clause used when none is configured.
const DefaultPackage = "iso4217"

// DefaultFeature is the build tag used when zero-copy is enabled with a bool.
const DefaultFeature = "zerocopy"

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("").
	Funcs(template.FuncMap{"join": strings.Join}).
	ParseFS(templateFS, "templates/*.tmpl"))

var featurePattern = regexp.MustCompile(`^[A-Za-z0-9_.]+$`)

// reserved lists the names the generated file declares itself.
var reserved = []string{
	"All", "Currency", "ErrInvalidCharset", "ErrInvalidCode", "ErrInvalidLength",
	"ErrNoUniversalCurrency", "FromCountryAlpha2", "FromCountryAlpha3",
	"FromCountryNumeric", "FromStr", "FromU16",
}

// Ensure Emitter implements the interface.
var _ driven.Emitter = (*Emitter)(nil)

// Options configures the Go source emitter.
type Options struct {
	// Output is the path of the generated file.
	Output string

	// Package is the package clause. Defaults to DefaultPackage.
	Package string

	// Zerocopy is the build tag guarding binary marshalling.
	// Empty disables the extra file.
	Zerocopy string
}

// Emitter writes Go source files.
type Emitter struct {
	opts      Options
	countries driven.CountryRegistry
}

// New creates a Go source emitter.
func New(opts Options, countries driven.CountryRegistry) (*Emitter, error) {
	if opts.Output == "" {
		return nil, errors.New("output path is empty")
	}
	if opts.Package == "" {
		opts.Package = DefaultPackage
	}
	if !token.IsIdentifier(opts.Package) {
		return nil, fmt.Errorf("invalid package name %q", opts.Package)
	}
	if opts.Zerocopy != "" && !featurePattern.MatchString(opts.Zerocopy) {
		return nil, fmt.Errorf("invalid zerocopy feature name %q", opts.Zerocopy)
	}
	if countries == nil {
		return nil, errors.New("country registry is required")
	}
	return &Emitter{opts: opts, countries: countries}, nil
}

// Feature interprets a zero-copy config value: true selects DefaultFeature,
// a string names the feature, false or nil disables it.
func Feature(v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return "", nil
	case bool:
		if val {
			return DefaultFeature, nil
		}
		return "", nil
	case string:
		val = strings.TrimSpace(val)
		if b, err := strconv.ParseBool(val); err == nil {
			return Feature(b)
		}
		if val != "" && !featurePattern.MatchString(val) {
			return "", fmt.Errorf("invalid zerocopy feature name %q", val)
		}
		return val, nil
	default:
		return "", fmt.Errorf("zerocopy must be a bool or a feature name, got %T", v)
	}
}

// Name returns "gosource".
func (e *Emitter) Name() string {
	return "gosource"
}

// BinaryPath returns the path of the zero-copy companion file.
func (e *Emitter) BinaryPath() string {
	return strings.TrimSuffix(e.opts.Output, ".go") + "_binary.go"
}

// Emit renders and writes the generated files. A stale companion file is
// removed when zero-copy is disabled.
func (e *Emitter) Emit(_ context.Context, c *domain.Compilation) error {
	src, bin, err := e.Render(c)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(e.opts.Output), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(e.opts.Output, src, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", e.opts.Output, err)
	}
	logger.Info("wrote %d currencies to %s", len(c.Entries), e.opts.Output)

	if bin == nil {
		if err := os.Remove(e.BinaryPath()); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("removing %s: %w", e.BinaryPath(), err)
		}
		return nil
	}
	if err := os.WriteFile(e.BinaryPath(), bin, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", e.BinaryPath(), err)
	}
	logger.Info("wrote binary marshalling behind build tag %q to %s", e.opts.Zerocopy, e.BinaryPath())
	return nil
}

// Render produces the formatted main file and, when zero-copy is enabled,
// the companion file. bin is nil otherwise.
func (e *Emitter) Render(c *domain.Compilation) (src, bin []byte, err error) {
	if c == nil {
		return nil, nil, domain.ErrInvalidInput
	}

	data, err := e.templateData(c)
	if err != nil {
		return nil, nil, err
	}

	src, err = execute("currency.go.tmpl", data)
	if err != nil {
		return nil, nil, err
	}
	if e.opts.Zerocopy == "" {
		return src, nil, nil
	}
	bin, err = execute("binary.go.tmpl", data)
	if err != nil {
		return nil, nil, err
	}
	return src, bin, nil
}

func execute(name string, data *templateData) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("executing %s: %w", name, err)
	}
	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting %s: %w", name, err)
	}
	return out, nil
}

type templateData struct {
	Package       string
	Published     string
	TablesVersion int
	Feature       string
	Entries       []entryData
	Funds         []string
	Countries     []countryCase
}

type entryData struct {
	Identifier string
	Alpha      string
	Number     uint16
	Name       string
	Doc        string
	ListedFor  string
	HasMinor   bool
	Minor      uint8
}

type countryCase struct {
	Currency string
	Numeric  []string
	Alpha2   []string
	Alpha3   []string
}

func (e *Emitter) templateData(c *domain.Compilation) (*templateData, error) {
	data := &templateData{
		Package:       e.opts.Package,
		Published:     c.Published,
		TablesVersion: c.TablesVersion,
		Feature:       e.opts.Zerocopy,
	}

	for _, entry := range c.Entries {
		if !token.IsIdentifier(entry.Identifier) || !token.IsExported(entry.Identifier) ||
			slices.Contains(reserved, entry.Identifier) {
			return nil, fmt.Errorf("%w: %q cannot be used as a Go constant", domain.ErrInvalidInput, entry.Identifier)
		}

		ed := entryData{
			Identifier: entry.Identifier,
			Alpha:      entry.AlphaCode,
			Number:     entry.Number,
			Name:       entry.Name,
			Doc:        entry.Doc,
			ListedFor:  strings.Join(c.CountriesByNumber[entry.Number], ", "),
		}
		if entry.MinorUnit != nil {
			ed.HasMinor = true
			ed.Minor = *entry.MinorUnit
		}
		data.Entries = append(data.Entries, ed)
		if entry.IsFund {
			data.Funds = append(data.Funds, entry.Identifier)
		}
	}

	cases, err := e.countryCases(c)
	if err != nil {
		return nil, err
	}
	data.Countries = cases
	return data, nil
}

// countryCases groups countries by currency, in entry order.
func (e *Emitter) countryCases(c *domain.Compilation) ([]countryCase, error) {
	byCurrency := make(map[string][]domain.Country)
	for _, a := range c.Associations {
		country, ok := e.countries.Country(a.CountryIdentifier)
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnknownCountry, a.CountryIdentifier)
		}
		byCurrency[a.CurrencyIdentifier] = append(byCurrency[a.CurrencyIdentifier], country)
	}

	var out []countryCase
	for _, entry := range c.Entries {
		countries := byCurrency[entry.Identifier]
		if len(countries) == 0 {
			continue
		}
		slices.SortFunc(countries, func(a, b domain.Country) int {
			return int(a.Numeric) - int(b.Numeric)
		})

		cc := countryCase{Currency: entry.Identifier}
		for _, country := range countries {
			cc.Numeric = append(cc.Numeric, strconv.Itoa(int(country.Numeric)))
			cc.Alpha2 = append(cc.Alpha2, strconv.Quote(country.Alpha2))
			cc.Alpha3 = append(cc.Alpha3, strconv.Quote(country.Alpha3))
		}
		out = append(out, cc)
		delete(byCurrency, entry.Identifier)
	}

	if len(byCurrency) > 0 {
		var missing []string
		for id := range byCurrency {
			missing = append(missing, id)
		}
		slices.Sort(missing)
		return nil, fmt.Errorf("%w: countries reference unknown currencies %v", domain.ErrInvalidInput, missing)
	}
	return out, nil
}
