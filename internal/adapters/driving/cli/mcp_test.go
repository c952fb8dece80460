package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCPServeCmd_Flags(t *testing.T) {
	assert.Equal(t, "serve", mcpServeCmd.Use)

	port := mcpServeCmd.Flags().Lookup("port")
	require.NotNil(t, port)
	assert.Equal(t, "p", port.Shorthand)
	assert.Equal(t, "0", port.DefValue)

	assert.NotNil(t, mcpServeCmd.Flags().Lookup("db"))
	assert.NotNil(t, mcpServeCmd.Flags().Lookup("input"))
}

func TestMCPServeCmd_EmptyDatabase(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "mcp", "serve", "--db", t.TempDir())

	assert.Error(t, err)
}
