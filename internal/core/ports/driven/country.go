package driven

import "github.com/custodia-labs/iso4217/internal/core/domain"

// CountryRegistry resolves ISO 3166-1 codes to country identifiers.
// The identifiers form a data contract with the country rename table.
type CountryRegistry interface {
	// ByNumeric resolves a numeric country code.
	ByNumeric(code uint16) (string, bool)

	// ByAlpha2 resolves a two-letter country code. Matching is exact.
	ByAlpha2(code string) (string, bool)

	// ByAlpha3 resolves a three-letter country code. Matching is exact.
	ByAlpha3(code string) (string, bool)

	// Country returns the country with the given identifier.
	Country(identifier string) (domain.Country, bool)

	// Countries returns every known country sorted by identifier.
	Countries() []domain.Country
}
