package server

import (
	"log"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/cardb/mcp-server/config"
	"github.com/cardb/mcp-server/tools"
)

// Start builds the MCP server, registers the catalog tools and serves them
// over SSE until the listener fails.
func Start() error {
	cfg := config.Load()

	srv := mcpserver.NewMCPServer("Car Database Server", "1.0.0",
		mcpserver.WithInstructions("This server provides search and lookup tools over a car listing database."),
	)
	tools.Register(srv)

	addr := ":" + cfg.Port
	log.Printf("[server] serving %d tools on %s", len(tools.All()), addr)
	return mcpserver.NewSSEServer(srv).Start(addr)
}
