package registry

import (
	"fmt"
	"slices"

	"github.com/custodia-labs/iso4217/internal/core/domain"
	"github.com/custodia-labs/iso4217/internal/core/ports/driven"
)

const noMinorUnit = -1

// Registry is the built, read-only currency registry.
type Registry struct {
	published     string
	tablesVersion int

	identifier []string
	alpha      []string
	number     []uint16
	name       []string
	fund       []bool
	minor      []int16
	doc        []string
	countries  [][]domain.Country

	byNumber       map[uint16]int
	byAlpha        map[string]int
	byIdentifier   map[string]int
	byCountryNum   map[uint16]int
	byCountryAlph2 map[string]int
	byCountryAlph3 map[string]int
}

// Build assembles a registry from a compilation. Country identifiers in the
// associations are resolved through countries; an identifier the country
// registry does not know fails with domain.ErrUnknownCountry.
func Build(c *domain.Compilation, countries driven.CountryRegistry) (*Registry, error) {
	if c == nil || countries == nil {
		return nil, domain.ErrInvalidInput
	}

	n := len(c.Entries)
	r := &Registry{
		published:      c.Published,
		tablesVersion:  c.TablesVersion,
		identifier:     make([]string, 0, n),
		alpha:          make([]string, 0, n),
		number:         make([]uint16, 0, n),
		name:           make([]string, 0, n),
		fund:           make([]bool, 0, n),
		minor:          make([]int16, 0, n),
		doc:            make([]string, 0, n),
		countries:      make([][]domain.Country, n),
		byNumber:       make(map[uint16]int, n),
		byAlpha:        make(map[string]int, n),
		byIdentifier:   make(map[string]int, n),
		byCountryNum:   make(map[uint16]int, len(c.Associations)),
		byCountryAlph2: make(map[string]int, len(c.Associations)),
		byCountryAlph3: make(map[string]int, len(c.Associations)),
	}

	for i, e := range c.Entries {
		if i > 0 && c.Entries[i-1].Number >= e.Number {
			return nil, fmt.Errorf("%w: entries not strictly ascending at %d", domain.ErrInvalidInput, e.Number)
		}
		if _, dup := r.byAlpha[e.AlphaCode]; dup {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateAlphaCode, e.AlphaCode)
		}
		if _, dup := r.byIdentifier[e.Identifier]; dup {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateIdentifier, e.Identifier)
		}

		r.identifier = append(r.identifier, e.Identifier)
		r.alpha = append(r.alpha, e.AlphaCode)
		r.number = append(r.number, e.Number)
		r.name = append(r.name, e.Name)
		r.fund = append(r.fund, e.IsFund)
		r.doc = append(r.doc, e.Doc)
		if e.MinorUnit != nil {
			r.minor = append(r.minor, int16(*e.MinorUnit))
		} else {
			r.minor = append(r.minor, noMinorUnit)
		}

		r.byNumber[e.Number] = i
		r.byAlpha[e.AlphaCode] = i
		r.byIdentifier[e.Identifier] = i
	}

	for _, a := range c.Associations {
		country, ok := countries.Country(a.CountryIdentifier)
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnknownCountry, a.CountryIdentifier)
		}
		idx, ok := r.byIdentifier[a.CurrencyIdentifier]
		if !ok {
			return nil, fmt.Errorf("%w: country %s uses unknown currency %s",
				domain.ErrInvalidInput, a.CountryIdentifier, a.CurrencyIdentifier)
		}

		r.byCountryNum[country.Numeric] = idx
		r.byCountryAlph2[country.Alpha2] = idx
		r.byCountryAlph3[country.Alpha3] = idx
		r.countries[idx] = append(r.countries[idx], country)
	}

	return r, nil
}

// Published returns the publication date of the source document.
func (r *Registry) Published() string {
	return r.published
}

// TablesVersion returns the substitution table version used to build the registry.
func (r *Registry) TablesVersion() int {
	return r.tablesVersion
}

// Len returns the number of currencies.
func (r *Registry) Len() int {
	return len(r.number)
}

// FromNumeric returns the currency with the given numeric code.
func (r *Registry) FromNumeric(code uint16) (Currency, error) {
	i, ok := r.byNumber[code]
	if !ok {
		return Currency{}, domain.ErrInvalidCode
	}
	return Currency{r: r, i: i}, nil
}

// FromAlpha returns the currency with the given three-letter code.
// Matching is exact and case-sensitive.
func (r *Registry) FromAlpha(code string) (Currency, error) {
	if len(code) != 3 {
		return Currency{}, domain.ErrInvalidLength
	}
	for i := 0; i < len(code); i++ {
		if code[i] >= 0x80 {
			return Currency{}, domain.ErrInvalidCharset
		}
	}
	i, ok := r.byAlpha[code]
	if !ok {
		return Currency{}, domain.ErrInvalidCode
	}
	return Currency{r: r, i: i}, nil
}

// FromIdentifier returns the currency with the given symbolic identifier.
func (r *Registry) FromIdentifier(id string) (Currency, error) {
	i, ok := r.byIdentifier[id]
	if !ok {
		return Currency{}, domain.ErrInvalidCode
	}
	return Currency{r: r, i: i}, nil
}

// FromCountryNumeric returns the currency used in the country with the
// given ISO 3166-1 numeric code.
func (r *Registry) FromCountryNumeric(code uint16) (Currency, error) {
	i, ok := r.byCountryNum[code]
	if !ok {
		return Currency{}, domain.ErrNoUniversalCurrency
	}
	return Currency{r: r, i: i}, nil
}

// FromCountryAlpha2 returns the currency used in the country with the
// given ISO 3166-1 alpha-2 code.
func (r *Registry) FromCountryAlpha2(code string) (Currency, error) {
	i, ok := r.byCountryAlph2[code]
	if !ok {
		return Currency{}, domain.ErrNoUniversalCurrency
	}
	return Currency{r: r, i: i}, nil
}

// FromCountryAlpha3 returns the currency used in the country with the
// given ISO 3166-1 alpha-3 code.
func (r *Registry) FromCountryAlpha3(code string) (Currency, error) {
	i, ok := r.byCountryAlph3[code]
	if !ok {
		return Currency{}, domain.ErrNoUniversalCurrency
	}
	return Currency{r: r, i: i}, nil
}

// Entries returns every currency in ascending numeric order.
func (r *Registry) Entries() []Currency {
	out := make([]Currency, len(r.number))
	for i := range out {
		out[i] = Currency{r: r, i: i}
	}
	return out
}

// countriesOf returns the countries using currency i, sorted by identifier.
func (r *Registry) countriesOf(i int) []domain.Country {
	return slices.Clone(r.countries[i])
}
