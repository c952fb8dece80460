package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/iso4217/internal/core/domain"
	"github.com/custodia-labs/iso4217/internal/core/ports/driving"
)

// CodeInput is the input schema for the lookup tools.
type CodeInput struct {
	Code string `json:"code" jsonschema:"a currency code (USD or 840) or country code (FR, FRA or 250)"`
}

// ListInput is the input schema for the currency_list tool.
type ListInput struct {
	FundsOnly    bool   `json:"funds_only,omitempty" jsonschema:"only return fund codes"`
	ExcludeFunds bool   `json:"exclude_funds,omitempty" jsonschema:"leave fund codes out"`
	Query        string `json:"query,omitempty" jsonschema:"case-insensitive filter on code or name"`
}

// CurrencyOutput describes one currency.
type CurrencyOutput struct {
	Code       string   `json:"code"`
	Number     uint16   `json:"number"`
	Name       string   `json:"name"`
	Identifier string   `json:"identifier"`
	Fund       bool     `json:"fund"`
	MinorUnit  *uint8   `json:"minor_unit,omitempty"`
	Countries  []string `json:"countries,omitempty"`
}

// CountryOutput is the output schema for the country_currency tool.
type CountryOutput struct {
	Country  string         `json:"country"`
	Numeric  uint16         `json:"numeric"`
	Alpha2   string         `json:"alpha2"`
	Alpha3   string         `json:"alpha3"`
	Currency CurrencyOutput `json:"currency"`
}

// ListOutput is the output schema for the currency_list tool.
type ListOutput struct {
	Currencies []CurrencyOutput `json:"currencies"`
	Count      int              `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "currency_lookup",
		Description: "Resolve an ISO 4217 currency by alphabetic or numeric code",
	}, s.handleCurrencyLookup)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "country_currency",
		Description: "Find the currency used by a country, given an ISO 3166-1 code",
	}, s.handleCountryCurrency)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "currency_list",
		Description: "List ISO 4217 currencies in numeric order",
	}, s.handleCurrencyList)
}

func (s *Server) handleCurrencyLookup(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CodeInput,
) (*mcp.CallToolResult, CurrencyOutput, error) {
	entry, err := s.ports.Lookup.Currency(ctx, input.Code)
	if err != nil {
		return nil, CurrencyOutput{}, fmt.Errorf("looking up %q: %w", input.Code, err)
	}

	countries, err := s.ports.Lookup.CountriesUsing(ctx, entry.AlphaCode)
	if err != nil {
		return nil, CurrencyOutput{}, fmt.Errorf("listing countries for %s: %w", entry.AlphaCode, err)
	}

	out := toCurrencyOutput(entry)
	for _, c := range countries {
		out.Countries = append(out.Countries, c.Alpha2)
	}
	return nil, out, nil
}

func (s *Server) handleCountryCurrency(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CodeInput,
) (*mcp.CallToolResult, CountryOutput, error) {
	cc, err := s.ports.Lookup.Country(ctx, input.Code)
	if err != nil {
		return nil, CountryOutput{}, fmt.Errorf("looking up country %q: %w", input.Code, err)
	}

	return nil, CountryOutput{
		Country:  cc.Country.Name,
		Numeric:  cc.Country.Numeric,
		Alpha2:   cc.Country.Alpha2,
		Alpha3:   cc.Country.Alpha3,
		Currency: toCurrencyOutput(cc.Currency),
	}, nil
}

func (s *Server) handleCurrencyList(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListInput,
) (*mcp.CallToolResult, ListOutput, error) {
	entries, err := s.ports.Lookup.List(ctx, driving.ListOptions{
		FundsOnly:    input.FundsOnly,
		ExcludeFunds: input.ExcludeFunds,
		Query:        input.Query,
	})
	if err != nil {
		return nil, ListOutput{}, fmt.Errorf("listing currencies: %w", err)
	}

	out := ListOutput{
		Currencies: make([]CurrencyOutput, len(entries)),
		Count:      len(entries),
	}
	for i := range entries {
		out.Currencies[i] = toCurrencyOutput(entries[i])
	}
	return nil, out, nil
}

func toCurrencyOutput(e domain.CanonicalEntry) CurrencyOutput {
	return CurrencyOutput{
		Code:       e.AlphaCode,
		Number:     e.Number,
		Name:       e.Name,
		Identifier: e.Identifier,
		Fund:       e.IsFund,
		MinorUnit:  e.MinorUnit,
	}
}
