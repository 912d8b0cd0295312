// Package mcp provides a Model Context Protocol server for cowsay.
// It exposes rendering and the cow catalog as MCP tools that any MCP-capable
// agent can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/cowsay/internal/cow"
)

// NewServer creates an MCP server with all cowsay tools registered. Fields of
// base not supplied by a tool call are taken as defaults.
func NewServer(version string, renderer *cow.Renderer, base cow.Request) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "cowsay",
		Version: version,
	}, nil)
	registerTools(server, renderer, base)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// registerTools adds all cowsay tools to the server.
func registerTools(server *mcp.Server, renderer *cow.Renderer, base cow.Request) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "say",
		Description: "Render a message in a speech or thought balloon above an ASCII-art cow (or any cow from list_cows). Returns the rendered text.",
		Annotations: readOnlyAnnotations(),
	}, handleSay(renderer, base))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_cows",
		Description: "List the cows available to the say tool, with their descriptions, and the named eye styles.",
		Annotations: readOnlyAnnotations(),
	}, handleListCows(renderer))
}
