package iso4217

import (
	"github.com/custodia-labs/iso4217/internal/registry"
)

// Currency is one ISO 4217 currency.
// The zero value is not a currency; its accessors return zero values.
// Currencies compare equal with == when they are the same currency.
type Currency struct {
	c registry.Currency
}

// Country is an ISO 3166-1 country.
type Country struct {
	Name    string
	Numeric uint16
	Alpha2  string
	Alpha3  string
}

// IsZero reports whether c is the zero Currency.
func (c Currency) IsZero() bool { return !c.c.Valid() }

// Number returns the numeric code, e.g. 840.
func (c Currency) Number() uint16 {
	if c.IsZero() {
		return 0
	}
	return c.c.Number()
}

// AlphaCode returns the three-letter code, e.g. "USD".
func (c Currency) AlphaCode() string {
	if c.IsZero() {
		return ""
	}
	return c.c.AlphaCode()
}

// String returns the three-letter code.
func (c Currency) String() string { return c.AlphaCode() }

// Name returns the display name, e.g. "US Dollar".
func (c Currency) Name() string {
	if c.IsZero() {
		return ""
	}
	return c.c.Name()
}

// Identifier returns the symbolic name, e.g. "UsDollar".
func (c Currency) Identifier() string {
	if c.IsZero() {
		return ""
	}
	return c.c.Identifier()
}

// Doc returns the documentation line, e.g. " US Dollar (USD, 840)".
func (c Currency) Doc() string {
	if c.IsZero() {
		return ""
	}
	return c.c.Doc()
}

// IsFund reports whether c is a fund code such as USN.
func (c Currency) IsFund() bool {
	if c.IsZero() {
		return false
	}
	return c.c.IsFund()
}

// MinorUnit returns the number of decimal places.
// The boolean is false for currencies without a minor unit, such as XAU.
func (c Currency) MinorUnit() (uint8, bool) {
	if c.IsZero() {
		return 0, false
	}
	return c.c.MinorUnit()
}

// Countries returns the countries whose primary currency is c,
// ordered by country identifier.
func (c Currency) Countries() []Country {
	if c.IsZero() {
		return nil
	}
	list := c.c.Countries()
	out := make([]Country, len(list))
	for i, country := range list {
		out[i] = Country{
			Name:    country.Name,
			Numeric: country.Numeric,
			Alpha2:  country.Alpha2,
			Alpha3:  country.Alpha3,
		}
	}
	return out
}

// MarshalText implements encoding.TextMarshaler using the alphabetic code.
func (c Currency) MarshalText() ([]byte, error) {
	if c.IsZero() {
		return nil, ErrInvalidCode
	}
	return []byte(c.AlphaCode()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts exactly
// what FromAlpha accepts.
func (c *Currency) UnmarshalText(text []byte) error {
	v, err := FromAlpha(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
