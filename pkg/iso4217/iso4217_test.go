package iso4217

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/iso4217/internal/logger"
)

func TestAll(t *testing.T) {
	all := All()
	require.Len(t, all, 178)

	numbers := make(map[uint16]bool, len(all))
	codes := make(map[string]bool, len(all))
	for i, c := range all {
		assert.False(t, numbers[c.Number()], "duplicate number %d", c.Number())
		assert.False(t, codes[c.AlphaCode()], "duplicate code %s", c.AlphaCode())
		numbers[c.Number()] = true
		codes[c.AlphaCode()] = true
		if i > 0 {
			assert.Less(t, all[i-1].Number(), c.Number())
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, c := range All() {
		byNumber, err := FromNumeric(c.Number())
		require.NoError(t, err)
		assert.Equal(t, c, byNumber)

		byCode, err := FromAlpha(c.AlphaCode())
		require.NoError(t, err)
		assert.Equal(t, c, byCode)
		assert.Equal(t, c.AlphaCode(), c.String())
	}
}

func TestFromAlpha(t *testing.T) {
	usd, err := FromAlpha("USD")
	require.NoError(t, err)
	assert.Equal(t, uint16(840), usd.Number())
	assert.Equal(t, "US Dollar", usd.Name())
	assert.Equal(t, "UsDollar", usd.Identifier())
	assert.Equal(t, " US Dollar (USD, 840)", usd.Doc())

	tests := []struct {
		name  string
		code  string
		check func(error) bool
	}{
		{"too long", "ABCD", IsInvalidLength},
		{"too short", "US", IsInvalidLength},
		{"empty", "", IsInvalidLength},
		{"non-ascii", "U\xffD", IsInvalidCharset},
		{"lowercase", "usd", IsInvalidCode},
		{"unknown", "ZZZ", IsInvalidCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := FromAlpha(tt.code)
			require.Error(t, err)
			assert.True(t, tt.check(err), "unexpected error %v", err)
			assert.True(t, c.IsZero())
		})
	}
}

func TestFromNumeric_Unknown(t *testing.T) {
	_, err := FromNumeric(0)
	assert.ErrorIs(t, err, ErrInvalidCode)
	_, err = FromNumeric(1000)
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"USD", "USD"},
		{"usd", "USD"},
		{" eur ", "EUR"},
		{"840", "USD"},
		{"008", "ALL"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.AlphaCode())
		})
	}

	_, err := Parse("8")
	assert.True(t, IsInvalidLength(err))
	_, err = Parse("000")
	assert.True(t, IsInvalidCode(err))
}

func TestFunds(t *testing.T) {
	usn, err := FromAlpha("USN")
	require.NoError(t, err)
	assert.True(t, usn.IsFund())
	assert.Equal(t, uint16(997), usn.Number())

	usd, err := FromAlpha("USD")
	require.NoError(t, err)
	assert.False(t, usd.IsFund())

	var funds []string
	for _, c := range All() {
		if c.IsFund() {
			funds = append(funds, c.AlphaCode())
		}
	}
	assert.Equal(t, []string{"UYI", "CHE", "CHW", "COU", "MXV", "BOV", "CLF", "USN"}, funds)
}

func TestMinorUnit(t *testing.T) {
	tests := []struct {
		code string
		want uint8
		ok   bool
	}{
		{"JPY", 0, true},
		{"USD", 2, true},
		{"BHD", 3, true},
		{"XAU", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			c, err := FromAlpha(tt.code)
			require.NoError(t, err)
			got, ok := c.MinorUnit()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCountryLookups(t *testing.T) {
	lookups := []func() (Currency, error){
		func() (Currency, error) { return FromCountryNumeric(250) },
		func() (Currency, error) { return FromCountryAlpha2("FR") },
		func() (Currency, error) { return FromCountryAlpha3("FRA") },
	}
	for _, lookup := range lookups {
		c, err := lookup()
		require.NoError(t, err)
		assert.Equal(t, "EUR", c.AlphaCode())
	}

	jpy, err := FromCountryAlpha3("JPN")
	require.NoError(t, err)
	assert.Equal(t, "JPY", jpy.AlphaCode())

	_, err = FromCountryNumeric(10)
	assert.True(t, IsNoUniversalCurrency(err))
	_, err = FromCountryAlpha2("AQ")
	assert.ErrorIs(t, err, ErrNoUniversalCurrency)
	_, err = FromCountryAlpha3("XXX")
	assert.ErrorIs(t, err, ErrNoUniversalCurrency)
}

func TestCurrency_Countries(t *testing.T) {
	chf, err := FromAlpha("CHF")
	require.NoError(t, err)

	var alpha2 []string
	for _, country := range chf.Countries() {
		alpha2 = append(alpha2, country.Alpha2)
	}
	assert.Equal(t, []string{"LI", "CH"}, alpha2)

	xau, err := FromAlpha("XAU")
	require.NoError(t, err)
	assert.Empty(t, xau.Countries())
}

func TestCurrency_Zero(t *testing.T) {
	var c Currency
	assert.True(t, c.IsZero())
	assert.Equal(t, uint16(0), c.Number())
	assert.Empty(t, c.AlphaCode())
	assert.Empty(t, c.Name())
	assert.False(t, c.IsFund())
	assert.Nil(t, c.Countries())
	_, ok := c.MinorUnit()
	assert.False(t, ok)

	_, err := c.MarshalText()
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestCurrency_JSON(t *testing.T) {
	type price struct {
		Amount   string   `json:"amount"`
		Currency Currency `json:"currency"`
	}

	chf, err := FromAlpha("CHF")
	require.NoError(t, err)

	data, err := json.Marshal(price{Amount: "9.50", Currency: chf})
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":"9.50","currency":"CHF"}`, string(data))

	var got price
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, chf, got.Currency)

	err = json.Unmarshal([]byte(`{"currency":"chf"}`), &got)
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestPublished(t *testing.T) {
	assert.Equal(t, "2026-01-01", Published())
}

func TestBuildDefault_LeavesLoggerAlone(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.ResetWarnings()
	t.Cleanup(func() {
		logger.SetOutput(os.Stderr)
		logger.ResetWarnings()
	})

	reg, err := buildDefault()
	require.NoError(t, err)
	assert.Equal(t, 178, reg.Len())

	assert.Empty(t, buf.String())
	assert.Zero(t, logger.Warnings())

	// Warnings from other callers still reach the logger afterwards.
	logger.Warn("compile: %s", "kept")
	assert.Contains(t, buf.String(), "[WARN] compile: kept")
	assert.Equal(t, 1, logger.Warnings())
}
