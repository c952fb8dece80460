package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestExtractCurrencyCode(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{"valid", "iso4217://currencies/EUR", "EUR"},
		{"numeric", "iso4217://currencies/978", "978"},
		{"invalid prefix", "file://currencies/EUR", ""},
		{"nested path", "iso4217://currencies/EUR/countries", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractCurrencyCode(tt.uri))
		})
	}
}

func TestServer_handleCurrenciesResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns all currencies", func(t *testing.T) {
		server := newTestServer(t, newMockLookup())

		result, err := server.handleCurrenciesResource(ctx, newReadResourceRequest("iso4217://currencies"))
		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)

		var got []CurrencyOutput
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "EUR", got[0].Code)
	})

	t.Run("service error", func(t *testing.T) {
		lookup := newMockLookup()
		lookup.err = errors.New("boom")
		server := newTestServer(t, lookup)

		_, err := server.handleCurrenciesResource(ctx, newReadResourceRequest("iso4217://currencies"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "listing currencies")
	})
}

func TestServer_handleCurrencyResource(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t, newMockLookup())

	result, err := server.handleCurrencyResource(ctx, newReadResourceRequest("iso4217://currencies/EUR"))
	require.NoError(t, err)
	assert.Contains(t, result.Contents[0].Text, `"code": "EUR"`)

	_, err = server.handleCurrencyResource(ctx, newReadResourceRequest("iso4217://currencies/ZZZ"))
	assert.Error(t, err)

	_, err = server.handleCurrencyResource(ctx, newReadResourceRequest("iso4217://other"))
	assert.Error(t, err)
}
