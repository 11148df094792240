package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerCalendarTools() {
	s.mcp.AddTool(mcp.NewTool("nc_list_calendars",
		mcp.WithDescription("List all calendars."),
	), s.listCalendars)

	s.mcp.AddTool(mcp.NewTool("nc_list_calendar_events",
		mcp.WithDescription("List events in a calendar within a time range. Timestamps: YYYYMMDDTHHMMSSZ."),
		mcp.WithString("calendar", mcp.Required(), mcp.Description("Calendar name")),
		mcp.WithString("start", mcp.Required(), mcp.Description("Range start, YYYYMMDDTHHMMSSZ")),
		mcp.WithString("end", mcp.Required(), mcp.Description("Range end, YYYYMMDDTHHMMSSZ")),
	), s.listEvents)

	s.mcp.AddTool(mcp.NewTool("nc_create_calendar_event",
		mcp.WithDescription("Create a new calendar event. Timestamps: YYYYMMDDTHHMMSSZ."),
		mcp.WithString("calendar", mcp.Required(), mcp.Description("Calendar name")),
		mcp.WithString("title", mcp.Required(), mcp.Description("Event title")),
		mcp.WithString("start", mcp.Required(), mcp.Description("Event start, YYYYMMDDTHHMMSSZ")),
		mcp.WithString("end", mcp.Required(), mcp.Description("Event end, YYYYMMDDTHHMMSSZ")),
		mcp.WithString("description", mcp.Description("Optional event description")),
	), s.createEvent)

	s.mcp.AddTool(mcp.NewTool("nc_get_calendar_event",
		mcp.WithDescription("Get details (ICS) of a calendar event."),
		mcp.WithString("calendar", mcp.Required(), mcp.Description("Calendar name")),
		mcp.WithString("event", mcp.Required(), mcp.Description("Event filename, e.g. <uid>.ics")),
	), s.getEvent)

	s.mcp.AddTool(mcp.NewTool("nc_delete_calendar_event",
		mcp.WithDescription("Delete a calendar event."),
		mcp.WithString("calendar", mcp.Required(), mcp.Description("Calendar name")),
		mcp.WithString("event", mcp.Required(), mcp.Description("Event filename, e.g. <uid>.ics")),
	), s.deleteEvent)
}

func (s *Server) listCalendars(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	calendars, err := s.client.ListCalendars()
	if err != nil {
		return fail(err)
	}
	output := s.renderer.Calendars(calendars)
	return mcp.NewToolResultText(s.record("nc_list_calendars", output)), nil
}

func (s *Server) listEvents(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	calendar, err := req.RequireString("calendar")
	if err != nil {
		return fail(err)
	}
	start, err := req.RequireString("start")
	if err != nil {
		return fail(err)
	}
	end, err := req.RequireString("end")
	if err != nil {
		return fail(err)
	}

	events, err := s.client.ListEvents(calendar, start, end)
	if err != nil {
		return fail(err)
	}
	output := s.renderer.Events(calendar, events)
	return mcp.NewToolResultText(s.record("nc_list_calendar_events", output)), nil
}

func (s *Server) createEvent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	calendar, err := req.RequireString("calendar")
	if err != nil {
		return fail(err)
	}
	title, err := req.RequireString("title")
	if err != nil {
		return fail(err)
	}
	start, err := req.RequireString("start")
	if err != nil {
		return fail(err)
	}
	end, err := req.RequireString("end")
	if err != nil {
		return fail(err)
	}
	description := req.GetString("description", "")

	uid, err := s.client.CreateEvent(calendar, title, start, end, description)
	if err != nil {
		return fail(err)
	}
	return mcp.NewToolResultText(s.renderer.Success("created event " + uid + ".ics in " + calendar)), nil
}

func (s *Server) getEvent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	calendar, err := req.RequireString("calendar")
	if err != nil {
		return fail(err)
	}
	event, err := req.RequireString("event")
	if err != nil {
		return fail(err)
	}

	ics, err := s.client.GetEvent(calendar, event)
	if err != nil {
		return fail(err)
	}
	return mcp.NewToolResultText(ics), nil
}

func (s *Server) deleteEvent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	calendar, err := req.RequireString("calendar")
	if err != nil {
		return fail(err)
	}
	event, err := req.RequireString("event")
	if err != nil {
		return fail(err)
	}

	if err := s.client.DeleteEvent(calendar, event); err != nil {
		return fail(err)
	}
	return mcp.NewToolResultText(s.renderer.Success("deleted event " + event)), nil
}
