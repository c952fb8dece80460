package domain

import (
	"strconv"
	"strings"
	"time"
)

// PublishedLayout is the layout of the document publication date.
const PublishedLayout = "2006-01-02"

// minorUnitNone lists the textual minor unit values that mean "no minor unit".
var minorUnitNone = []string{"N.A.", ""}

// RawDocument is the ISO 4217 list as read from the source document,
// before any filtering or deduplication.
type RawDocument struct {
	// Table holds the currency entries.
	Table RawTable

	// Published is the publication date as written in the document.
	Published string
}

// PublishedDate parses Published strictly as YYYY-MM-DD.
func (d *RawDocument) PublishedDate() (time.Time, error) {
	t, err := time.Parse(PublishedLayout, strings.TrimSpace(d.Published))
	if err != nil {
		return time.Time{}, &DateFormatError{Value: d.Published, Err: err}
	}
	return t, nil
}

// RawTable is the ordered sequence of entries, in source order.
type RawTable struct {
	Entries []RawEntry
}

// RawEntry is a single row of the currency table.
// Name, Currency and Number are absent for countries without a universal currency.
type RawEntry struct {
	// CountryName is the country (or entity) name, untrimmed.
	CountryName string

	// CurrencyName is the display name of the currency.
	CurrencyName *CurrencyName

	// Code is the three-letter alphabetic code, untrimmed.
	Code *string

	// Number is the numeric code.
	Number *uint16

	// MinorUnit is the textual minor unit, e.g. "2" or "N.A.".
	MinorUnit *string
}

// Country returns the trimmed country name.
func (e RawEntry) Country() string {
	return strings.TrimSpace(e.CountryName)
}

// Name returns the currency name, if present.
func (e RawEntry) Name() (CurrencyName, bool) {
	if e.CurrencyName == nil {
		return CurrencyName{}, false
	}
	return *e.CurrencyName, true
}

// Currency returns the trimmed alphabetic code, if present.
func (e RawEntry) Currency() (string, bool) {
	if e.Code == nil {
		return "", false
	}
	return strings.TrimSpace(*e.Code), true
}

// NumericCode returns the numeric code, if present.
func (e RawEntry) NumericCode() (uint16, bool) {
	if e.Number == nil {
		return 0, false
	}
	return *e.Number, true
}

// MinorUnits returns the number of minor unit decimal places.
// Values that are absent, "N.A.", empty or not a valid uint8 report false.
func (e RawEntry) MinorUnits() (uint8, bool) {
	if e.MinorUnit == nil {
		return 0, false
	}
	mu, ok, err := ParseMinorUnit(*e.MinorUnit)
	if err != nil {
		return 0, false
	}
	return mu, ok
}

// Complete reports whether the entry carries a currency name, code and number.
func (e RawEntry) Complete() bool {
	return e.CurrencyName != nil && e.Code != nil && e.Number != nil
}

// ParseMinorUnit parses a textual minor unit strictly.
// "N.A." and the empty string report ok == false with no error.
func ParseMinorUnit(s string) (uint8, bool, error) {
	s = strings.TrimSpace(s)
	for _, none := range minorUnitNone {
		if s == none {
			return 0, false, nil
		}
	}

	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, false, &MinorUnitError{Value: s, Err: err}
	}
	return uint8(v), true, nil
}

// CurrencyName is the display name of a currency along with its fund status.
type CurrencyName struct {
	// Text is the display name, untrimmed.
	Text string

	// IsFund is true when the source marks the currency as a fund.
	IsFund bool
}

// String returns the trimmed display name.
func (n CurrencyName) String() string {
	return strings.TrimSpace(n.Text)
}
