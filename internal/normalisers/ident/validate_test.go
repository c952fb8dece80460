package ident

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/iso4217/internal/core/domain"
)

func TestValidator_ASCII(t *testing.T) {
	v := NewValidator("currency")
	assert.NoError(t, v.Validate("UsDollar", "US Dollar"))
}

func TestValidator_NonASCII(t *testing.T) {
	v := NewValidator("country")
	err := v.Validate("Réunion", "RÉUNION")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNonASCIIIdentifier)

	var idErr *IdentifierError
	require.True(t, errors.As(err, &idErr))
	assert.Equal(t, "country", idErr.Kind)
	assert.Equal(t, "Réunion", idErr.Identifier)
	assert.Equal(t, "Reunion", idErr.Suggestion)
	assert.Contains(t, err.Error(), `"Reunion"`)
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"BolívarSoberano", "BolivarSoberano"},
		{"CôteDIvoire", "CoteDIvoire"},
		{"Curaçao", "Curacao"},
		{"ÅlandIslands", "AlandIslands"},
		{"Türkiye", "Turkiye"},
		{"Pa’anga", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Suggest(tt.in))
		})
	}
}
