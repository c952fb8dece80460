package mcp

import (
	"context"
	"strings"

	"github.com/custodia-labs/iso4217/internal/core/domain"
	"github.com/custodia-labs/iso4217/internal/core/ports/driving"
)

func u8(v uint8) *uint8 { return &v }

var (
	euro = domain.CanonicalEntry{
		Identifier: "Euro", AlphaCode: "EUR", Number: 978, Name: "Euro", MinorUnit: u8(2),
	}
	usn = domain.CanonicalEntry{
		Identifier: "UsDollarNextDay", AlphaCode: "USN", Number: 997, Name: "US Dollar (Next day)",
		IsFund: true, MinorUnit: u8(2),
	}
	france = domain.Country{
		Identifier: "France", Name: "France", Numeric: 250, Alpha2: "FR", Alpha3: "FRA",
	}
)

// mockLookupService is a mock implementation of driving.LookupService.
type mockLookupService struct {
	entries   []domain.CanonicalEntry
	countries []domain.Country
	err       error
	listOpts  driving.ListOptions
}

func newMockLookup() *mockLookupService {
	return &mockLookupService{
		entries:   []domain.CanonicalEntry{euro, usn},
		countries: []domain.Country{france},
	}
}

func (m *mockLookupService) Currency(_ context.Context, code string) (domain.CanonicalEntry, error) {
	if m.err != nil {
		return domain.CanonicalEntry{}, m.err
	}
	for _, e := range m.entries {
		if strings.EqualFold(e.AlphaCode, code) {
			return e, nil
		}
	}
	return domain.CanonicalEntry{}, domain.ErrInvalidCode
}

func (m *mockLookupService) Country(_ context.Context, code string) (domain.CountryCurrency, error) {
	if m.err != nil {
		return domain.CountryCurrency{}, m.err
	}
	if strings.EqualFold(code, "FR") {
		return domain.CountryCurrency{Country: france, Currency: euro}, nil
	}
	if strings.EqualFold(code, "AQ") {
		return domain.CountryCurrency{}, domain.ErrNoUniversalCurrency
	}
	return domain.CountryCurrency{}, domain.ErrUnknownCountry
}

func (m *mockLookupService) List(_ context.Context, opts driving.ListOptions) ([]domain.CanonicalEntry, error) {
	m.listOpts = opts
	if m.err != nil {
		return nil, m.err
	}
	var out []domain.CanonicalEntry
	for _, e := range m.entries {
		if opts.FundsOnly && !e.IsFund {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (m *mockLookupService) CountriesUsing(ctx context.Context, code string) ([]domain.Country, error) {
	e, err := m.Currency(ctx, code)
	if err != nil {
		return nil, err
	}
	if e.AlphaCode == "EUR" {
		return m.countries, nil
	}
	return nil, nil
}
