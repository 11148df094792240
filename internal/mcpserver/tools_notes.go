package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerNoteTools() {
	s.mcp.AddTool(mcp.NewTool("nc_list_notes",
		mcp.WithDescription("List all notes."),
	), s.listNotes)

	s.mcp.AddTool(mcp.NewTool("nc_get_note",
		mcp.WithDescription("Get content of a note by ID."),
		mcp.WithNumber("note_id", mcp.Required(), mcp.Description("Note ID")),
	), s.getNote)

	s.mcp.AddTool(mcp.NewTool("nc_create_note",
		mcp.WithDescription("Create a new note."),
		mcp.WithString("title", mcp.Required(), mcp.Description("Note title")),
		mcp.WithString("content", mcp.Required(), mcp.Description("Note content")),
		mcp.WithString("category", mcp.Description("Optional category")),
	), s.createNote)

	s.mcp.AddTool(mcp.NewTool("nc_delete_note",
		mcp.WithDescription("Delete a note by ID."),
		mcp.WithNumber("note_id", mcp.Required(), mcp.Description("Note ID")),
	), s.deleteNote)
}

func (s *Server) listNotes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	notes, err := s.client.ListNotes()
	if err != nil {
		return fail(err)
	}
	output := s.renderer.Notes(notes)
	return mcp.NewToolResultText(s.record("nc_list_notes", output)), nil
}

func (s *Server) getNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireInt("note_id")
	if err != nil {
		return fail(err)
	}
	note, err := s.client.GetNote(int64(id))
	if err != nil {
		return fail(err)
	}
	output := s.renderer.Note(note)
	return mcp.NewToolResultText(s.record("nc_get_note", output)), nil
}

func (s *Server) createNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := req.RequireString("title")
	if err != nil {
		return fail(err)
	}
	content, err := req.RequireString("content")
	if err != nil {
		return fail(err)
	}
	category := req.GetString("category", "")

	note, err := s.client.CreateNote(title, content, category)
	if err != nil {
		return fail(err)
	}
	return mcp.NewToolResultText(s.renderer.Success(fmt.Sprintf("created note %d: %s", note.ID, note.Title))), nil
}

func (s *Server) deleteNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireInt("note_id")
	if err != nil {
		return fail(err)
	}
	if err := s.client.DeleteNote(int64(id)); err != nil {
		return fail(err)
	}
	return mcp.NewToolResultText(s.renderer.Success(fmt.Sprintf("deleted note %d", id))), nil
}
