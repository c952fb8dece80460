package domain

import "fmt"

// CanonicalEntry is one currency after normalisation.
// There is exactly one canonical entry per numeric code.
type CanonicalEntry struct {
	// Identifier is the ASCII pascal-case symbolic name, e.g. "UsDollar".
	Identifier string

	// AlphaCode is the three-letter code, e.g. "USD".
	AlphaCode string

	// Number is the numeric code, e.g. 840.
	Number uint16

	// Name is the display name, e.g. "US Dollar".
	Name string

	// IsFund is true for fund codes such as USN.
	IsFund bool

	// MinorUnit is the number of decimal places, nil when not applicable.
	MinorUnit *uint8

	// Doc is the generated documentation string.
	Doc string
}

// EntryDoc renders the documentation string for a canonical entry.
// The leading space is deliberate: the string is emitted after a comment marker.
func EntryDoc(name, alpha string, number uint16, isFund bool) string {
	fund := ""
	if isFund {
		fund = ", Fund"
	}
	return fmt.Sprintf(" %s (%s, %d%s)", name, alpha, number, fund)
}

// CountryAssociation binds a country identifier to the identifier of the
// canonical currency used there.
type CountryAssociation struct {
	CountryIdentifier  string
	CurrencyIdentifier string
}

// Compilation is the output of one pipeline run over a document.
type Compilation struct {
	// Published is the document publication date as written.
	Published string

	// TablesVersion is the version of the substitution tables used.
	TablesVersion int

	// Entries are sorted ascending by Number.
	Entries []CanonicalEntry

	// Associations are sorted by CountryIdentifier.
	Associations []CountryAssociation

	// CountriesByNumber lists the country names seen per numeric code,
	// sorted and deduplicated. Documentation only.
	CountriesByNumber map[uint16][]string

	// Warnings are the non-fatal problems found while compiling, in the
	// order they were found. They are not persisted by stores.
	Warnings []string
}

// EntryByIdentifier returns the canonical entry with the given identifier.
func (c *Compilation) EntryByIdentifier(id string) (CanonicalEntry, bool) {
	for _, e := range c.Entries {
		if e.Identifier == id {
			return e, true
		}
	}
	return CanonicalEntry{}, false
}
