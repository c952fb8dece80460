// Package tables loads the versioned substitution and exclusion tables used
// to derive currency and country identifiers.
//
// The tables are data, not logic: when a new list-one publication introduces
// a name that fails ASCII validation, the fix is a new rename entry and a
// version bump in tables.toml.
package tables

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/iso4217/internal/core/domain"
	"github.com/custodia-labs/iso4217/internal/normalisers/ident"
)

//go:embed tables.toml
var defaultTables []byte

// Rename rewrites one derived identifier.
type Rename struct {
	From string `toml:"from"`
	To   string `toml:"to"`

	// Alpha restricts a currency rename to one alphabetic code.
	Alpha string `toml:"alpha,omitempty"`
}

// CurrencyTables holds the currency identifier substitutions.
type CurrencyTables struct {
	Renames []Rename `toml:"renames"`
}

// CountryTables holds the country identifier substitutions and exclusions.
type CountryTables struct {
	StripSuffixes      []string `toml:"strip_suffixes"`
	UserAssignedPrefix string   `toml:"user_assigned_prefix"`
	Exclusions         []string `toml:"exclusions"`
	Renames            []Rename `toml:"renames"`
}

// Tables is one version of the substitution tables.
type Tables struct {
	Version  int            `toml:"version"`
	Currency CurrencyTables `toml:"currency"`
	Country  CountryTables  `toml:"country"`
}

// Default returns the embedded tables.
func Default() (*Tables, error) {
	return Parse(defaultTables)
}

// Load reads tables from a TOML file.
func Load(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrTables, err)
	}
	return Parse(data)
}

// Parse decodes and validates a TOML table document.
func Parse(data []byte) (*Tables, error) {
	var t Tables
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrTables, err)
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

func (t *Tables) validate() error {
	if t.Version < 1 {
		return fmt.Errorf("%w: version must be positive, got %d", domain.ErrTables, t.Version)
	}
	for _, r := range slices.Concat(t.Currency.Renames, t.Country.Renames) {
		if r.From == "" || r.To == "" {
			return fmt.Errorf("%w: rename needs both from and to: %+v", domain.ErrTables, r)
		}
		if !ident.IsASCII(r.To) {
			return fmt.Errorf("%w: rename target %q is not ASCII", domain.ErrTables, r.To)
		}
	}
	for _, r := range t.Country.Renames {
		if r.Alpha != "" {
			return fmt.Errorf("%w: country rename %q cannot be scoped to an alpha code", domain.ErrTables, r.From)
		}
	}
	return nil
}

// CurrencyIdentifier applies the currency renames to a derived identifier.
func (t *Tables) CurrencyIdentifier(derived, alpha string) string {
	id := derived
	for _, r := range t.Currency.Renames {
		if r.From != id {
			continue
		}
		if r.Alpha != "" && r.Alpha != alpha {
			continue
		}
		id = r.To
	}
	return id
}

// CountryIdentifier applies the country renames to a derived identifier.
func (t *Tables) CountryIdentifier(derived string) string {
	id := derived
	for _, r := range t.Country.Renames {
		if r.From == id {
			id = r.To
		}
	}
	return id
}

// StripSuffixes removes trailing qualifiers such as "(THE)" from a country name.
func (t *Tables) StripSuffixes(name string) string {
	name = strings.TrimSpace(name)
	for {
		trimmed := name
		for _, s := range t.Country.StripSuffixes {
			trimmed = strings.TrimSpace(strings.TrimSuffix(trimmed, s))
		}
		if trimmed == name {
			return name
		}
		name = trimmed
	}
}

// UserAssigned reports whether a country identifier marks a user-assigned code.
func (t *Tables) UserAssigned(id string) bool {
	p := t.Country.UserAssignedPrefix
	return p != "" && strings.HasPrefix(id, p)
}

// Excluded reports whether a country identifier names a supranational entity.
func (t *Tables) Excluded(id string) bool {
	return slices.Contains(t.Country.Exclusions, id)
}
