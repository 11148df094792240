package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerFileTools() {
	s.mcp.AddTool(mcp.NewTool("nc_list_files",
		mcp.WithDescription("List files and directories in Nextcloud. Path is relative to user root."),
		mcp.WithString("path", mcp.Description("Directory path relative to the user root (empty for root)")),
	), s.listFiles)

	s.mcp.AddTool(mcp.NewTool("nc_read_file",
		mcp.WithDescription("Read file content from Nextcloud."),
		mcp.WithString("path", mcp.Required(), mcp.Description("File path relative to the user root")),
	), s.readFile)

	s.mcp.AddTool(mcp.NewTool("nc_write_file",
		mcp.WithDescription("Write content to a file in Nextcloud."),
		mcp.WithString("path", mcp.Required(), mcp.Description("File path relative to the user root")),
		mcp.WithString("content", mcp.Required(), mcp.Description("File content")),
	), s.writeFile)

	s.mcp.AddTool(mcp.NewTool("nc_delete_file",
		mcp.WithDescription("Delete a file or directory in Nextcloud."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Path relative to the user root")),
	), s.deleteFile)

	s.mcp.AddTool(mcp.NewTool("nc_create_directory",
		mcp.WithDescription("Create a directory in Nextcloud."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Directory path relative to the user root")),
	), s.createDirectory)
}

func (s *Server) listFiles(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path := req.GetString("path", "")
	entries, err := s.client.ListFiles(path)
	if err != nil {
		return fail(err)
	}
	output := s.renderer.Files(path, entries)
	return mcp.NewToolResultText(s.record("nc_list_files", output)), nil
}

func (s *Server) readFile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return fail(err)
	}
	content, err := s.client.ReadFile(path)
	if err != nil {
		return fail(err)
	}
	return mcp.NewToolResultText(content), nil
}

func (s *Server) writeFile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return fail(err)
	}
	content, err := req.RequireString("content")
	if err != nil {
		return fail(err)
	}
	if err := s.client.WriteFile(path, content); err != nil {
		return fail(err)
	}
	return mcp.NewToolResultText(s.renderer.Success("wrote " + path)), nil
}

func (s *Server) deleteFile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return fail(err)
	}
	if err := s.client.DeleteFile(path); err != nil {
		return fail(err)
	}
	return mcp.NewToolResultText(s.renderer.Success("deleted " + path)), nil
}

func (s *Server) createDirectory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return fail(err)
	}
	if err := s.client.CreateDirectory(path); err != nil {
		return fail(err)
	}
	return mcp.NewToolResultText(s.renderer.Success("created directory " + path)), nil
}
