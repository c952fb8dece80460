package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/iso4217/internal/adapters/driving/mcp"
)

var mcpPort int

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can resolve
currency and country codes against the registry.

Tools: currency_lookup, country_currency, currency_list.
Resources: iso4217://currencies and iso4217://currencies/{code}.

By default, the server communicates over stdio using JSON-RPC.
Use --port to start an HTTP server instead.

Examples:
  # Stdio mode (default)
  iso4217 mcp serve

  # HTTP mode, serving a stored compilation
  iso4217 mcp serve --port 8080 --db build/iso4217.db`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	addSourceFlags(mcpServeCmd)
	mcpServeCmd.Flags().IntVarP(&mcpPort, "port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	lookup, err := loadLookup(cmd.Context())
	if err != nil {
		return err
	}

	server, err := mcp.NewServer(&mcp.Ports{Lookup: lookup})
	if err != nil {
		return err
	}

	if mcpPort > 0 {
		addr := fmt.Sprintf(":%d", mcpPort)
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
