package iso4217

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/custodia-labs/iso4217/internal/adapters/driven/iso3166"
	"github.com/custodia-labs/iso4217/internal/adapters/driven/xmldoc"
	"github.com/custodia-labs/iso4217/internal/core/domain"
	"github.com/custodia-labs/iso4217/internal/core/services"
	"github.com/custodia-labs/iso4217/internal/logger"
	"github.com/custodia-labs/iso4217/internal/normalisers/ident"
	"github.com/custodia-labs/iso4217/internal/normalisers/tables"
	"github.com/custodia-labs/iso4217/internal/registry"
	"github.com/custodia-labs/iso4217/internal/snapshot"
)

// Errors returned by lookups.
var (
	// ErrInvalidCode indicates the value does not match any currency.
	ErrInvalidCode = domain.ErrInvalidCode

	// ErrInvalidLength indicates a code string that is not three bytes long.
	ErrInvalidLength = domain.ErrInvalidLength

	// ErrInvalidCharset indicates a code string containing non-ASCII bytes.
	ErrInvalidCharset = domain.ErrInvalidCharset

	// ErrNoUniversalCurrency indicates the country has no primary currency.
	ErrNoUniversalCurrency = domain.ErrNoUniversalCurrency
)

// IsInvalidCode reports whether err is ErrInvalidCode.
func IsInvalidCode(err error) bool { return errors.Is(err, ErrInvalidCode) }

// IsInvalidLength reports whether err is ErrInvalidLength.
func IsInvalidLength(err error) bool { return errors.Is(err, ErrInvalidLength) }

// IsInvalidCharset reports whether err is ErrInvalidCharset.
func IsInvalidCharset(err error) bool { return errors.Is(err, ErrInvalidCharset) }

// IsNoUniversalCurrency reports whether err is ErrNoUniversalCurrency.
func IsNoUniversalCurrency(err error) bool { return errors.Is(err, ErrNoUniversalCurrency) }

var defaultRegistry = sync.OnceValues(buildDefault)

// buildDefault compiles the embedded snapshot without reporting its
// warnings through the shared logger.
func buildDefault() (*registry.Registry, error) {
	tbl, err := tables.Default()
	if err != nil {
		return nil, err
	}

	// Last-wins country overwrites are expected in the snapshot.
	ctx := logger.WithQuiet(context.Background())

	countries := iso3166.New()
	compiler := services.NewCompilerService(xmldoc.New(), tbl, countries, nil)
	c, err := compiler.Compile(ctx, bytes.NewReader(snapshot.ListOne))
	if err != nil {
		return nil, fmt.Errorf("compiling embedded snapshot: %w", err)
	}
	return registry.Build(c, countries)
}

func wrap(c registry.Currency, err error) (Currency, error) {
	if err != nil {
		return Currency{}, err
	}
	return Currency{c: c}, nil
}

// FromNumeric returns the currency with the given numeric code.
func FromNumeric(code uint16) (Currency, error) {
	reg, err := defaultRegistry()
	if err != nil {
		return Currency{}, err
	}
	return wrap(reg.FromNumeric(code))
}

// FromAlpha returns the currency with the given three-letter code.
// Matching is exact: "usd" is ErrInvalidCode.
func FromAlpha(code string) (Currency, error) {
	reg, err := defaultRegistry()
	if err != nil {
		return Currency{}, err
	}
	return wrap(reg.FromAlpha(code))
}

// Parse accepts an alphabetic code in any case or a three-digit numeric
// code, after trimming surrounding whitespace.
func Parse(s string) (Currency, error) {
	s = strings.TrimSpace(s)
	if isDigits(s) {
		var n uint16
		for i := 0; i < len(s); i++ {
			n = n*10 + uint16(s[i]-'0')
		}
		return FromNumeric(n)
	}
	if ident.IsASCII(s) {
		s = strings.ToUpper(s)
	}
	return FromAlpha(s)
}

func isDigits(s string) bool {
	if len(s) != 3 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// FromCountryNumeric returns the primary currency of the country with the
// given ISO 3166-1 numeric code.
func FromCountryNumeric(code uint16) (Currency, error) {
	reg, err := defaultRegistry()
	if err != nil {
		return Currency{}, err
	}
	return wrap(reg.FromCountryNumeric(code))
}

// FromCountryAlpha2 returns the primary currency of the country with the
// given ISO 3166-1 alpha-2 code.
func FromCountryAlpha2(code string) (Currency, error) {
	reg, err := defaultRegistry()
	if err != nil {
		return Currency{}, err
	}
	return wrap(reg.FromCountryAlpha2(code))
}

// FromCountryAlpha3 returns the primary currency of the country with the
// given ISO 3166-1 alpha-3 code.
func FromCountryAlpha3(code string) (Currency, error) {
	reg, err := defaultRegistry()
	if err != nil {
		return Currency{}, err
	}
	return wrap(reg.FromCountryAlpha3(code))
}

// All returns every currency in ascending numeric order.
// It returns nil only if the embedded snapshot failed to compile.
func All() []Currency {
	reg, err := defaultRegistry()
	if err != nil {
		return nil
	}
	entries := reg.Entries()
	out := make([]Currency, len(entries))
	for i, c := range entries {
		out[i] = Currency{c: c}
	}
	return out
}

// Published returns the publication date of the embedded list.
func Published() string {
	return snapshot.Published
}
