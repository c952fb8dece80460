// Package country derives the country-to-currency associations.
package country

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/custodia-labs/iso4217/internal/core/domain"
	"github.com/custodia-labs/iso4217/internal/logger"
	"github.com/custodia-labs/iso4217/internal/normalisers/ident"
	"github.com/custodia-labs/iso4217/internal/normalisers/tables"
)

// Identifier derives the country identifier for a raw country name.
// It strips qualifier suffixes, converts to pascal case, applies the
// rename table and checks the result is ASCII.
func Identifier(name string, tbl *tables.Tables) (string, error) {
	stripped := tbl.StripSuffixes(name)
	id := tbl.CountryIdentifier(ident.Pascal(stripped))
	if err := ident.NewValidator("country").Validate(id, name); err != nil {
		return "", err
	}
	return id, nil
}

// Overwrite records a country whose currency was replaced by a later row.
type Overwrite struct {
	Country  string
	Previous string
	Current  string
}

func (o Overwrite) String() string {
	return fmt.Sprintf("country %s: %s replaced by %s (last row wins)", o.Country, o.Previous, o.Current)
}

// Result is the output of Map.
type Result struct {
	// Associations are sorted by country identifier.
	Associations []domain.CountryAssociation

	// Overwrites are in source order. Callers decide whether to report them.
	Overwrites []Overwrite
}

// Map associates each country with the currency it uses.
//
// entries is the full raw table in source order, funds included. currencies
// is the canonical set from the entry normaliser. Fund rows, user-assigned
// codes and supranational entities are skipped, as are rows without a
// complete currency. When a country has several qualifying rows the last
// one in source order wins and the replacement is recorded in Overwrites.
func Map(entries []domain.RawEntry, currencies []domain.CanonicalEntry, tbl *tables.Tables) (*Result, error) {
	if tbl == nil {
		return nil, fmt.Errorf("%w: no substitution tables", domain.ErrTables)
	}

	byNumber := make(map[uint16]string, len(currencies))
	for _, c := range currencies {
		byNumber[c.Number] = c.Identifier
	}

	assoc := make(map[string]string)
	var overwrites []Overwrite
	for _, raw := range entries {
		if name, ok := raw.Name(); ok && name.IsFund {
			continue
		}

		id, err := Identifier(raw.Country(), tbl)
		if err != nil {
			return nil, err
		}
		if tbl.UserAssigned(id) || tbl.Excluded(id) {
			continue
		}

		if !raw.Complete() {
			continue
		}
		number, _ := raw.NumericCode()
		currency, ok := byNumber[number]
		if !ok {
			continue
		}

		if prev, seen := assoc[id]; seen && prev != currency {
			overwrites = append(overwrites, Overwrite{Country: id, Previous: prev, Current: currency})
		}
		assoc[id] = currency
	}

	out := make([]domain.CountryAssociation, 0, len(assoc))
	for country, currency := range assoc {
		out = append(out, domain.CountryAssociation{
			CountryIdentifier:  country,
			CurrencyIdentifier: currency,
		})
	}
	slices.SortFunc(out, func(a, b domain.CountryAssociation) int {
		return cmp.Compare(a.CountryIdentifier, b.CountryIdentifier)
	})

	logger.Debug("mapped %d countries to a currency", len(out))
	return &Result{Associations: out, Overwrites: overwrites}, nil
}
