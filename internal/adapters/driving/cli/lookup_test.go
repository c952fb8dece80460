package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/iso4217/internal/core/domain"
	"github.com/custodia-labs/iso4217/internal/core/ports/driven"
	"github.com/custodia-labs/iso4217/internal/logger"
)

func TestLookupCmd_RequiresArg(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "lookup")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 1 arg(s)")
}

func TestLookupCmd_AlphaAndNumeric(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "lookup", "usd", "978")

	require.NoError(t, err)
	assert.Contains(t, out, "CODE")
	assert.Contains(t, out, "USD")
	assert.Contains(t, out, "US Dollar")
	assert.Contains(t, out, "EUR")
	assert.Contains(t, out, "EUR is used in:")
	assert.Contains(t, out, "FR")
}

func TestLookupCmd_NoWarnings(t *testing.T) {
	setupTestServices(t)
	var stderr bytes.Buffer
	logger.SetOutput(&stderr)
	logger.ResetWarnings()

	_, err := execute(t, "lookup", "CHF")

	require.NoError(t, err)
	assert.Empty(t, stderr.String())
	assert.Zero(t, logger.Warnings())
}

func TestLookupCmd_JSON(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "lookup", "--json", "JPY", "XAU", "CHF")
	require.NoError(t, err)

	var got []currencyJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 3)

	assert.Equal(t, "JPY", got[0].Code)
	require.NotNil(t, got[0].MinorUnit)
	assert.Equal(t, uint8(0), *got[0].MinorUnit)

	assert.Equal(t, "XAU", got[1].Code)
	assert.Nil(t, got[1].MinorUnit)

	assert.ElementsMatch(t, []string{"LI", "CH"}, got[2].Countries)
}

func TestLookupCmd_RuntimeErrors(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "lookup", "ABCD")
	assert.ErrorIs(t, err, domain.ErrInvalidLength)

	_, err = execute(t, "lookup", "ÜA")
	assert.ErrorIs(t, err, domain.ErrInvalidCharset)

	_, err = execute(t, "lookup", "ZZZ")
	assert.ErrorIs(t, err, domain.ErrInvalidCode)
}

func TestLookupCmd_ConfiguredInputMissing(t *testing.T) {
	cfg := setupTestServices(t)
	require.NoError(t, cfg.Set(driven.ConfigInput, filepath.Join(t.TempDir(), "missing.xml")))

	_, err := execute(t, "lookup", "USD")

	assert.Error(t, err)
}

func TestLookupCmd_FromDatabase(t *testing.T) {
	setupTestServices(t)
	db := filepath.Join(t.TempDir(), "iso4217.db")

	_, err := execute(t, "compile", "--db", db)
	require.NoError(t, err)

	out, err := execute(t, "lookup", "--db", db, "USN")
	require.NoError(t, err)
	assert.Contains(t, out, "US Dollar (Next day)")
	assert.Contains(t, out, "yes")
}

func TestLookupCmd_EmptyDatabase(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "lookup", "--db", t.TempDir(), "USD")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "run 'iso4217 compile --db")
}

func TestListCmd_All(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "list")

	require.NoError(t, err)
	assert.Contains(t, out, "178 currencies")
	assert.Contains(t, out, "ALL")
	assert.Contains(t, out, "XXX")
}

func TestListCmd_Funds(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "list", "--funds", "--json")
	require.NoError(t, err)

	var got []currencyJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	codes := make([]string, len(got))
	for i, c := range got {
		codes[i] = c.Code
		assert.True(t, c.Fund)
	}
	// Ascending numeric order: 940, 947, 948, 970, 979, 984, 990, 997.
	assert.Equal(t, []string{"UYI", "CHE", "CHW", "COU", "MXV", "BOV", "CLF", "USN"}, codes)
}

func TestListCmd_NoFundsAndQuery(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "list", "--no-funds", "--query", "dollar", "--json")
	require.NoError(t, err)

	var got []currencyJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.NotEmpty(t, got)
	for _, c := range got {
		assert.False(t, c.Fund)
		assert.Contains(t, c.Name, "Dollar")
	}
}

func TestListCmd_FundFlagsExclusive(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "list", "--funds", "--no-funds")

	assert.Error(t, err)
}

func TestListCmd_NoMatch(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "list", "--query", "doubloon")

	require.NoError(t, err)
	assert.Contains(t, out, "No currencies found.")
}

func TestCountryCmd(t *testing.T) {
	setupTestServices(t)

	for _, code := range []string{"FR", "fra", "250"} {
		t.Run(code, func(t *testing.T) {
			out, err := execute(t, "country", code)
			require.NoError(t, err)
			assert.Contains(t, out, "France")
			assert.Contains(t, out, "EUR Euro")
		})
	}
}

func TestCountryCmd_NoUniversalCurrency(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "country", "010")

	require.NoError(t, err)
	assert.Contains(t, out, "Antarctica (AQ) has no universal currency")
}

func TestCountryCmd_Unknown(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "country", "XX")

	assert.ErrorIs(t, err, domain.ErrUnknownCountry)
}

func TestCountryCmd_JSON(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "country", "--json", "JP")
	require.NoError(t, err)

	var got struct {
		Country  string       `json:"country"`
		Alpha3   string       `json:"alpha3"`
		Currency currencyJSON `json:"currency"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Japan", got.Country)
	assert.Equal(t, "JPN", got.Alpha3)
	assert.Equal(t, "JPY", got.Currency.Code)
}
