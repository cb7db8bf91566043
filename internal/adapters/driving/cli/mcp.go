package cli

import (
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/tavern/internal/adapters/driving/mcp"
)

var (
	mcpPort int
	mcpHost string
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Expose saved vacancies to MCP clients",
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server",
	Long: `Runs a Model Context Protocol server so assistants can search hh.ru
and manage the saved vacancies.

Tools:
  search_vacancies   search hh.ru and save the results (dry_run to only look)
  list_saved         saved vacancies, optionally filtered and sorted
  delete_saved       delete saved vacancies by URL

Resources:
  tavern://saved            saved vacancies as JSON
  tavern://saved/{filter}   saved vacancies matching filter
  tavern://report           saved vacancies as plain text

Without --port the server speaks JSON-RPC over stdio. With --port it serves
streamable HTTP on --host:--port.`,
	Example: `  tavern mcp serve
  tavern mcp serve --port 8080`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntVarP(&mcpPort, "port", "p", 0, "serve HTTP on this port (0 = stdio)")
	mcpServeCmd.Flags().StringVar(&mcpHost, "host", "localhost", "HTTP bind address")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	server, err := mcp.NewServer(&mcp.Ports{Listings: listingService})
	if err != nil {
		return err
	}

	if mcpPort <= 0 {
		return server.Run(cmd.Context())
	}

	addr := net.JoinHostPort(mcpHost, strconv.Itoa(mcpPort))
	fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://%s\n", addr)
	return server.RunHTTP(cmd.Context(), addr)
}
