// Package entry turns raw list-one rows into canonical currency entries.
package entry

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/custodia-labs/iso4217/internal/core/domain"
	"github.com/custodia-labs/iso4217/internal/logger"
	"github.com/custodia-labs/iso4217/internal/normalisers/ident"
	"github.com/custodia-labs/iso4217/internal/normalisers/tables"
)

// Result is the output of Normalise.
type Result struct {
	// Entries holds one canonical entry per numeric code, ascending by number.
	Entries []domain.CanonicalEntry

	// CountriesByNumber lists the sorted, distinct country names seen for
	// each numeric code, including rows dropped by deduplication.
	CountriesByNumber map[uint16][]string
}

// Normalise filters, deduplicates and sorts raw entries.
//
// The first row carrying a numeric code wins. Later rows with the same code
// only contribute their country name to CountriesByNumber.
func Normalise(entries []domain.RawEntry, tbl *tables.Tables) (*Result, error) {
	if tbl == nil {
		return nil, fmt.Errorf("%w: no substitution tables", domain.ErrTables)
	}

	validator := ident.NewValidator("currency")
	countries := make(map[uint16]map[string]struct{})
	byAlpha := make(map[string]uint16)
	byIdent := make(map[string]uint16)
	var out []domain.CanonicalEntry

	for _, raw := range entries {
		name, hasName := raw.Name()
		alpha, hasAlpha := raw.Currency()
		number, hasNumber := raw.NumericCode()
		if !hasName || !hasAlpha || !hasNumber {
			continue
		}

		if seen, ok := countries[number]; ok {
			seen[raw.Country()] = struct{}{}
			continue
		}
		countries[number] = map[string]struct{}{raw.Country(): {}}

		id := tbl.CurrencyIdentifier(ident.Pascal(name.String()), alpha)
		if err := validator.Validate(id, name.String()); err != nil {
			return nil, fmt.Errorf("currency %s (%d): %w", alpha, number, err)
		}

		if other, dup := byAlpha[alpha]; dup {
			return nil, fmt.Errorf("%w: %s is bound to both %d and %d",
				domain.ErrDuplicateAlphaCode, alpha, other, number)
		}
		byAlpha[alpha] = number

		if other, dup := byIdent[id]; dup {
			return nil, fmt.Errorf("%w: %s is derived for both %d and %d",
				domain.ErrDuplicateIdentifier, id, other, number)
		}
		byIdent[id] = number

		var minor *uint8
		if raw.MinorUnit != nil {
			mu, ok, err := domain.ParseMinorUnit(*raw.MinorUnit)
			if err != nil {
				return nil, fmt.Errorf("currency %s (%d): %w", alpha, number, err)
			}
			if ok {
				minor = &mu
			}
		}

		out = append(out, domain.CanonicalEntry{
			Identifier: id,
			AlphaCode:  alpha,
			Number:     number,
			Name:       name.String(),
			IsFund:     name.IsFund,
			MinorUnit:  minor,
			Doc:        domain.EntryDoc(name.String(), alpha, number, name.IsFund),
		})
	}

	slices.SortStableFunc(out, func(a, b domain.CanonicalEntry) int {
		return cmp.Compare(a.Number, b.Number)
	})

	logger.Debug("normalised %d raw entries into %d currencies", len(entries), len(out))

	return &Result{
		Entries:           out,
		CountriesByNumber: sortedCountries(countries),
	}, nil
}

func sortedCountries(in map[uint16]map[string]struct{}) map[uint16][]string {
	out := make(map[uint16][]string, len(in))
	for number, set := range in {
		names := make([]string, 0, len(set))
		for name := range set {
			names = append(names, name)
		}
		slices.Sort(names)
		out[number] = names
	}
	return out
}
