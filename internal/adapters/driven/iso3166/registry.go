// Package iso3166 provides a static ISO 3166-1 country registry.
package iso3166

import (
	"cmp"
	"slices"

	"github.com/custodia-labs/iso4217/internal/core/domain"
	"github.com/custodia-labs/iso4217/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.CountryRegistry = (*Registry)(nil)

// Registry resolves country codes against a fixed table.
// It is read-only after construction and safe for concurrent use.
type Registry struct {
	sorted    []domain.Country
	byIdent   map[string]domain.Country
	byNumeric map[uint16]string
	byAlpha2  map[string]string
	byAlpha3  map[string]string
}

// New creates a registry over the built-in ISO 3166-1 table.
func New() *Registry {
	return NewFromCountries(countries)
}

// NewFromCountries creates a registry over the given countries.
// Later duplicates of an identifier or code replace earlier ones.
func NewFromCountries(list []domain.Country) *Registry {
	r := &Registry{
		byIdent:   make(map[string]domain.Country, len(list)),
		byNumeric: make(map[uint16]string, len(list)),
		byAlpha2:  make(map[string]string, len(list)),
		byAlpha3:  make(map[string]string, len(list)),
	}
	for _, c := range list {
		r.byIdent[c.Identifier] = c
		r.byNumeric[c.Numeric] = c.Identifier
		r.byAlpha2[c.Alpha2] = c.Identifier
		r.byAlpha3[c.Alpha3] = c.Identifier
	}

	r.sorted = make([]domain.Country, 0, len(r.byIdent))
	for _, c := range r.byIdent {
		r.sorted = append(r.sorted, c)
	}
	slices.SortFunc(r.sorted, func(a, b domain.Country) int {
		return cmp.Compare(a.Identifier, b.Identifier)
	})
	return r
}

// ByNumeric resolves a numeric country code.
func (r *Registry) ByNumeric(code uint16) (string, bool) {
	id, ok := r.byNumeric[code]
	return id, ok
}

// ByAlpha2 resolves a two-letter country code.
func (r *Registry) ByAlpha2(code string) (string, bool) {
	id, ok := r.byAlpha2[code]
	return id, ok
}

// ByAlpha3 resolves a three-letter country code.
func (r *Registry) ByAlpha3(code string) (string, bool) {
	id, ok := r.byAlpha3[code]
	return id, ok
}

// Country returns the country with the given identifier.
func (r *Registry) Country(identifier string) (domain.Country, bool) {
	c, ok := r.byIdent[identifier]
	return c, ok
}

// Countries returns every country sorted by identifier.
func (r *Registry) Countries() []domain.Country {
	return slices.Clone(r.sorted)
}
