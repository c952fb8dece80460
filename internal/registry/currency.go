package registry

import "github.com/custodia-labs/iso4217/internal/core/domain"

// Currency is a handle to one registry entry.
// Two handles from the same registry compare equal with == when they refer
// to the same currency.
type Currency struct {
	r *Registry
	i int
}

// Valid reports whether c refers to an entry. The zero Currency is not valid.
func (c Currency) Valid() bool {
	return c.r != nil
}

// Identifier returns the symbolic name, e.g. "UsDollar".
func (c Currency) Identifier() string { return c.r.identifier[c.i] }

// AlphaCode returns the three-letter code, e.g. "USD".
func (c Currency) AlphaCode() string { return c.r.alpha[c.i] }

// Number returns the numeric code.
func (c Currency) Number() uint16 { return c.r.number[c.i] }

// Name returns the display name.
func (c Currency) Name() string { return c.r.name[c.i] }

// IsFund reports whether the code is a fund.
func (c Currency) IsFund() bool { return c.r.fund[c.i] }

// Doc returns the documentation string.
func (c Currency) Doc() string { return c.r.doc[c.i] }

// MinorUnit returns the number of minor unit decimal places.
// The boolean is false when the currency has no minor unit.
func (c Currency) MinorUnit() (uint8, bool) {
	mu := c.r.minor[c.i]
	if mu == noMinorUnit {
		return 0, false
	}
	return uint8(mu), true
}

// Countries returns the countries whose primary currency this is.
func (c Currency) Countries() []domain.Country {
	return c.r.countriesOf(c.i)
}

// String returns the alphabetic code.
func (c Currency) String() string {
	if !c.Valid() {
		return ""
	}
	return c.AlphaCode()
}

// Entry converts the handle back to a canonical entry.
func (c Currency) Entry() domain.CanonicalEntry {
	e := domain.CanonicalEntry{
		Identifier: c.Identifier(),
		AlphaCode:  c.AlphaCode(),
		Number:     c.Number(),
		Name:       c.Name(),
		IsFund:     c.IsFund(),
		Doc:        c.Doc(),
	}
	if mu, ok := c.MinorUnit(); ok {
		e.MinorUnit = &mu
	}
	return e
}
