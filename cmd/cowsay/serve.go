package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/gorewood/cowsay/internal/config"
	cowsaymcp "github.com/gorewood/cowsay/internal/mcp"
	"github.com/gorewood/cowsay/internal/output"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run cowsay as a Model Context Protocol (MCP) server over stdio.

The server uses the same cow search path and settings file as the
command line. Configure it in your agent's MCP settings:
  {
    "mcpServers": {
      "cowsay": {
        "command": "cowsay",
        "args": ["serve"]
      }
    }
  }

Available tools: say, list_cows`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer := output.NewPrinter(cmd.ErrOrStderr(), false, output.IsTTY(cmd.ErrOrStderr()))
			settings, _, err := config.Load(config.Dir())
			if err != nil {
				return fail(printer, toExitError(err))
			}
			base := baseRequest(settings)
			server := cowsaymcp.NewServer(buildVersion(), newRenderer(settings), base)
			if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
				return fail(printer, output.NewSystemErrorWithCause("mcp server: "+err.Error(), err))
			}
			return nil
		},
	}
}
