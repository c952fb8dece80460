package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/iso4217/internal/core/domain"
	"github.com/custodia-labs/iso4217/internal/core/ports/driven"
	"github.com/custodia-labs/iso4217/internal/core/ports/driving"
	"github.com/custodia-labs/iso4217/internal/normalisers/ident"
	"github.com/custodia-labs/iso4217/internal/registry"
)

// Ensure LookupService implements the interface.
var _ driving.LookupService = (*LookupService)(nil)

// LookupService answers queries against a built registry.
type LookupService struct {
	registry  *registry.Registry
	countries driven.CountryRegistry
}

// NewLookupService creates a new lookup service.
func NewLookupService(reg *registry.Registry, countries driven.CountryRegistry) *LookupService {
	return &LookupService{
		registry:  reg,
		countries: countries,
	}
}

// Currency resolves a three-letter code or a decimal numeric code.
// Alphabetic codes are upper-cased before matching.
func (s *LookupService) Currency(_ context.Context, code string) (domain.CanonicalEntry, error) {
	c, err := s.resolveCurrency(code)
	if err != nil {
		return domain.CanonicalEntry{}, err
	}
	return c.Entry(), nil
}

func (s *LookupService) resolveCurrency(code string) (registry.Currency, error) {
	code = strings.TrimSpace(code)
	if n, ok := parseNumeric(code); ok {
		return s.registry.FromNumeric(n)
	}
	if ident.IsASCII(code) {
		code = strings.ToUpper(code)
	}
	return s.registry.FromAlpha(code)
}

// Country resolves a numeric, alpha-2 or alpha-3 country code.
// Unknown codes fail with domain.ErrUnknownCountry; known countries without
// a currency fail with domain.ErrNoUniversalCurrency.
func (s *LookupService) Country(_ context.Context, code string) (domain.CountryCurrency, error) {
	code = strings.TrimSpace(code)

	var (
		id  string
		ok  bool
		cur registry.Currency
		err error
	)
	if n, isNum := parseNumeric(code); isNum {
		id, ok = s.countries.ByNumeric(n)
		cur, err = s.registry.FromCountryNumeric(n)
	} else {
		code = strings.ToUpper(code)
		switch len(code) {
		case 2:
			id, ok = s.countries.ByAlpha2(code)
			cur, err = s.registry.FromCountryAlpha2(code)
		case 3:
			id, ok = s.countries.ByAlpha3(code)
			cur, err = s.registry.FromCountryAlpha3(code)
		}
	}
	if !ok {
		return domain.CountryCurrency{}, fmt.Errorf("%w: %q", domain.ErrUnknownCountry, code)
	}

	country, _ := s.countries.Country(id)
	if err != nil {
		return domain.CountryCurrency{Country: country}, err
	}
	return domain.CountryCurrency{Country: country, Currency: cur.Entry()}, nil
}

// List returns currencies in ascending numeric order.
func (s *LookupService) List(_ context.Context, opts driving.ListOptions) ([]domain.CanonicalEntry, error) {
	query := strings.ToLower(strings.TrimSpace(opts.Query))

	out := []domain.CanonicalEntry{}
	for _, c := range s.registry.Entries() {
		if opts.FundsOnly && !c.IsFund() {
			continue
		}
		if opts.ExcludeFunds && c.IsFund() {
			continue
		}
		if query != "" && !matches(c, query) {
			continue
		}
		out = append(out, c.Entry())
	}
	return out, nil
}

// CountriesUsing returns the countries whose primary currency is code.
func (s *LookupService) CountriesUsing(_ context.Context, code string) ([]domain.Country, error) {
	c, err := s.resolveCurrency(code)
	if err != nil {
		return nil, err
	}
	return c.Countries(), nil
}

func matches(c registry.Currency, query string) bool {
	for _, field := range []string{c.AlphaCode(), c.Name(), c.Identifier()} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

func parseNumeric(code string) (uint16, bool) {
	if code == "" || len(code) > 3 {
		return 0, false
	}
	n, err := strconv.ParseUint(code, 10, 16)
	if err != nil {
		return 0, false
	}
	return uint16(n), true
}
