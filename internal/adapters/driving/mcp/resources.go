package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/iso4217/internal/core/domain"
	"github.com/custodia-labs/iso4217/internal/core/ports/driving"
)

const (
	// uriScheme is the custom URI scheme for registry resources.
	uriScheme = "iso4217://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "currencies",
		Name:        "currencies",
		Description: "Every ISO 4217 currency in numeric order",
		MIMEType:    "application/json",
	}, s.handleCurrenciesResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "currencies/{code}",
		Name:        "currency",
		Description: "A single currency by alphabetic or numeric code",
		MIMEType:    "application/json",
	}, s.handleCurrencyResource)
}

// handleCurrenciesResource returns the full currency list.
func (s *Server) handleCurrenciesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	entries, err := s.ports.Lookup.List(ctx, driving.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("listing currencies: %w", err)
	}

	out := make([]CurrencyOutput, len(entries))
	for i := range entries {
		out[i] = toCurrencyOutput(entries[i])
	}
	return jsonResource(req.Params.URI, out)
}

// handleCurrencyResource returns one currency.
func (s *Server) handleCurrencyResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	code := extractCurrencyCode(req.Params.URI)
	if code == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	entry, err := s.ports.Lookup.Currency(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCode) || errors.Is(err, domain.ErrInvalidLength) ||
			errors.Is(err, domain.ErrInvalidCharset) {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		return nil, fmt.Errorf("looking up currency: %w", err)
	}
	return jsonResource(req.Params.URI, toCurrencyOutput(entry))
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractCurrencyCode extracts the code from a URI like iso4217://currencies/{code}.
func extractCurrencyCode(uri string) string {
	const prefix = uriScheme + "currencies/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	code := strings.TrimPrefix(uri, prefix)
	if strings.Contains(code, "/") {
		return ""
	}
	return code
}
