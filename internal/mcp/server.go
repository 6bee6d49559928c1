// ABOUTME: MCP server setup for the healthflow state store.
// ABOUTME: Mutations flow through state.Store, hence the normal autosave path.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/healthflow/internal/session"
	"github.com/harperreed/healthflow/internal/state"
	"github.com/harperreed/healthflow/internal/suggest"
)

// Server wraps the MCP server with access to the application state.
type Server struct {
	mcpServer *mcp.Server
	states    *state.Store
	rec       *session.Reconciler
	suggester suggest.Provider
}

// NewServer creates an MCP server over the given state store. The
// suggester may be nil when no API key is configured.
func NewServer(st *state.Store, rec *session.Reconciler, suggester suggest.Provider) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "healthflow",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		states:    st,
		rec:       rec,
		suggester: suggester,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
