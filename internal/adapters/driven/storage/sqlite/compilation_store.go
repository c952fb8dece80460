package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/iso4217/internal/core/domain"
	"github.com/custodia-labs/iso4217/internal/core/ports/driven"
)

var _ driven.CompilationStore = (*Store)(nil)

// Save replaces the stored compilation in a single transaction and assigns
// it a new build ID.
func (s *Store) Save(ctx context.Context, c *domain.Compilation) error {
	if c == nil {
		return domain.ErrInvalidInput
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	for _, stmt := range []string{
		"DELETE FROM currency_country_names",
		"DELETE FROM country_currencies",
		"DELETE FROM currencies",
		"DELETE FROM builds",
	} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("clearing previous build: %w", err)
		}
	}

	buildID := uuid.New().String()
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO builds (id, published, tables_version, created_at)
		VALUES (?, ?, ?, ?)
	`, buildID, c.Published, c.TablesVersion, time.Now().UTC()); err != nil {
		return fmt.Errorf("saving build: %w", err)
	}

	for _, e := range c.Entries {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO currencies (number, alpha_code, identifier, name, is_fund, minor_unit, doc)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, e.Number, e.AlphaCode, e.Identifier, e.Name, e.IsFund, nullMinorUnit(e.MinorUnit), e.Doc); err != nil {
			return fmt.Errorf("saving currency %s: %w", e.AlphaCode, err)
		}
	}

	for _, a := range c.Associations {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO country_currencies (country_identifier, currency_identifier)
			VALUES (?, ?)
		`, a.CountryIdentifier, a.CurrencyIdentifier); err != nil {
			return fmt.Errorf("saving country %s: %w", a.CountryIdentifier, err)
		}
	}

	for number, names := range c.CountriesByNumber {
		for _, name := range names {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO currency_country_names (number, country_name) VALUES (?, ?)
			`, number, name); err != nil {
				return fmt.Errorf("saving country name %q: %w", name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing build: %w", err)
	}
	return nil
}

// Load reads the stored compilation.
// Returns domain.ErrNotFound if nothing has been saved.
func (s *Store) Load(ctx context.Context) (*domain.Compilation, error) {
	c := &domain.Compilation{CountriesByNumber: make(map[uint16][]string)}

	err := s.db.QueryRowContext(ctx, `
		SELECT published, tables_version FROM builds LIMIT 1
	`).Scan(&c.Published, &c.TablesVersion)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading build: %w", err)
	}

	if err := s.loadCurrencies(ctx, c); err != nil {
		return nil, err
	}
	if err := s.loadAssociations(ctx, c); err != nil {
		return nil, err
	}
	if err := s.loadCountryNames(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// BuildID returns the ID of the stored build.
// Returns domain.ErrNotFound if nothing has been saved.
func (s *Store) BuildID(ctx context.Context) (string, error) {
	var id string
	err := s.db.QueryRowContext(ctx, "SELECT id FROM builds LIMIT 1").Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("loading build id: %w", err)
	}
	return id, nil
}

func (s *Store) loadCurrencies(ctx context.Context, c *domain.Compilation) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT number, alpha_code, identifier, name, is_fund, minor_unit, doc
		FROM currencies ORDER BY number
	`)
	if err != nil {
		return fmt.Errorf("querying currencies: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			e     domain.CanonicalEntry
			minor sql.NullInt16
		)
		if err := rows.Scan(&e.Number, &e.AlphaCode, &e.Identifier, &e.Name, &e.IsFund, &minor, &e.Doc); err != nil {
			return fmt.Errorf("scanning currency: %w", err)
		}
		if minor.Valid {
			mu := uint8(minor.Int16)
			e.MinorUnit = &mu
		}
		c.Entries = append(c.Entries, e)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating currencies: %w", err)
	}
	return nil
}

func (s *Store) loadAssociations(ctx context.Context, c *domain.Compilation) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT country_identifier, currency_identifier
		FROM country_currencies ORDER BY country_identifier
	`)
	if err != nil {
		return fmt.Errorf("querying countries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a domain.CountryAssociation
		if err := rows.Scan(&a.CountryIdentifier, &a.CurrencyIdentifier); err != nil {
			return fmt.Errorf("scanning country: %w", err)
		}
		c.Associations = append(c.Associations, a)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating countries: %w", err)
	}
	return nil
}

func (s *Store) loadCountryNames(ctx context.Context, c *domain.Compilation) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT number, country_name FROM currency_country_names ORDER BY number, country_name
	`)
	if err != nil {
		return fmt.Errorf("querying country names: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			number uint16
			name   string
		)
		if err := rows.Scan(&number, &name); err != nil {
			return fmt.Errorf("scanning country name: %w", err)
		}
		c.CountriesByNumber[number] = append(c.CountriesByNumber[number], name)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating country names: %w", err)
	}
	return nil
}

// nullMinorUnit converts an optional minor unit for storage.
func nullMinorUnit(mu *uint8) sql.NullInt16 {
	if mu == nil {
		return sql.NullInt16{}
	}
	return sql.NullInt16{Int16: int16(*mu), Valid: true}
}
