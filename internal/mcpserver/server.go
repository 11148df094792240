// Package mcpserver exposes the Nextcloud client as MCP (Model
// Context Protocol) tools over stdio. Every tool failure is returned
// as a tool error result, never as a protocol error, so a misbehaving
// server or bad input can not crash the host.
package mcpserver

import (
	"context"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"nextool/internal/results"
	"nextool/internal/widgets"
	"nextool/nextcloud"
)

// Server wraps the MCP server with the Nextcloud tools.
type Server struct {
	mcp      *server.MCPServer
	client   *nextcloud.Client
	renderer *widgets.Renderer
	store    *results.Store
}

// New creates an MCP server with all Nextcloud tools registered. The
// result store may be nil, in which case outputs are not replayable.
func New(client *nextcloud.Client, renderer *widgets.Renderer, store *results.Store) *Server {
	s := &Server{
		client:   client,
		renderer: renderer,
		store:    store,
	}

	s.mcp = server.NewMCPServer(
		"Nextool",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.registerFileTools()
	s.registerNoteTools()
	s.registerCalendarTools()
	s.registerContactTools()
	s.registerDeckTools()
	s.registerCookbookTools()
	s.registerRestoreTool()

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// record stores a rendered output under a fresh invocation id and
// appends the id so the host can ask for a replay later.
func (s *Server) record(tool, output string) string {
	if s.store == nil {
		return output
	}
	id := uuid.NewString()
	if err := s.store.Save(id, tool, output); err != nil {
		return output
	}
	return output + "\n[result " + id + "]"
}

// fail funnels an operation error into a tool error result.
func fail(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func (s *Server) registerRestoreTool() {
	s.mcp.AddTool(mcp.NewTool("nc_restore",
		mcp.WithDescription("Replay the stored output of a previous tool invocation by result id, without re-fetching."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Result id printed at the end of a previous tool output")),
	), s.restore)
}

func (s *Server) restore(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return fail(err)
	}
	if s.store == nil {
		return mcp.NewToolResultError("result storage is not configured"), nil
	}
	result, err := s.store.Get(id)
	if err != nil {
		return fail(err)
	}
	return mcp.NewToolResultText(result.Output), nil
}
