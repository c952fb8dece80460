package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func u16Ptr(v uint16) *uint16 { return &v }

func TestRawEntry_Accessors(t *testing.T) {
	entry := RawEntry{
		CountryName:  "  UNITED STATES OF AMERICA (THE) ",
		CurrencyName: &CurrencyName{Text: " US Dollar (Next day) ", IsFund: true},
		Code:         strPtr(" USN "),
		Number:       u16Ptr(997),
		MinorUnit:    strPtr("2"),
	}

	assert.Equal(t, "UNITED STATES OF AMERICA (THE)", entry.Country())

	name, ok := entry.Name()
	require.True(t, ok)
	assert.Equal(t, "US Dollar (Next day)", name.String())
	assert.True(t, name.IsFund)

	code, ok := entry.Currency()
	require.True(t, ok)
	assert.Equal(t, "USN", code)

	number, ok := entry.NumericCode()
	require.True(t, ok)
	assert.Equal(t, uint16(997), number)

	mu, ok := entry.MinorUnits()
	require.True(t, ok)
	assert.Equal(t, uint8(2), mu)

	assert.True(t, entry.Complete())
}

func TestRawEntry_NoUniversalCurrency(t *testing.T) {
	entry := RawEntry{
		CountryName:  "ANTARCTICA",
		CurrencyName: &CurrencyName{Text: "No universal currency"},
	}

	_, ok := entry.Currency()
	assert.False(t, ok)
	_, ok = entry.NumericCode()
	assert.False(t, ok)
	_, ok = entry.MinorUnits()
	assert.False(t, ok)
	assert.False(t, entry.Complete())

	_, ok = RawEntry{}.Name()
	assert.False(t, ok)
}

func TestRawEntry_MinorUnitsLenient(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  uint8
		ok    bool
	}{
		{"digit", "3", 3, true},
		{"padded", " 4 ", 4, true},
		{"not applicable", "N.A.", 0, false},
		{"empty", "", 0, false},
		{"garbage", "two", 0, false},
		{"overflow", "256", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := RawEntry{MinorUnit: strPtr(tt.value)}
			got, ok := entry.MinorUnits()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMinorUnit_Strict(t *testing.T) {
	_, ok, err := ParseMinorUnit("N.A.")
	require.NoError(t, err)
	assert.False(t, ok)

	got, ok, err := ParseMinorUnit("0")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint8(0), got)

	_, _, err = ParseMinorUnit("-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMinorUnit)

	var muErr *MinorUnitError
	require.True(t, errors.As(err, &muErr))
	assert.Equal(t, "-1", muErr.Value)
}

func TestRawDocument_PublishedDate(t *testing.T) {
	doc := RawDocument{Published: "2026-01-01"}
	got, err := doc.PublishedDate()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), got)

	for _, bad := range []string{"01/01/2026", "2026-1-1", "", "2026-13-01"} {
		t.Run(bad, func(t *testing.T) {
			doc := RawDocument{Published: bad}
			_, err := doc.PublishedDate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDateFormat)
		})
	}
}
