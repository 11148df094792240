package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"nextool/nextcloud"
)

func (s *Server) registerContactTools() {
	s.mcp.AddTool(mcp.NewTool("nc_list_addressbooks",
		mcp.WithDescription("List address books."),
	), s.listAddressBooks)

	s.mcp.AddTool(mcp.NewTool("nc_list_contacts",
		mcp.WithDescription("List contacts in an address book with paging (30 per page) and search."),
		mcp.WithString("addressbook", mcp.Required(), mcp.Description("Address book name")),
		mcp.WithNumber("page", mcp.Description("Page number, starting at 1")),
		mcp.WithNumber("limit", mcp.Description("Contacts per page (default 30)")),
		mcp.WithString("search", mcp.Description("Substring to match against name, email or phone")),
	), s.listContacts)

	s.mcp.AddTool(mcp.NewTool("nc_get_contact",
		mcp.WithDescription("Get details of a specific contact."),
		mcp.WithString("addressbook", mcp.Required(), mcp.Description("Address book name")),
		mcp.WithString("contact", mcp.Required(), mcp.Description("Contact filename, e.g. abc123.vcf")),
	), s.getContact)
}

func (s *Server) listAddressBooks(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	books, err := s.client.ListAddressBooks()
	if err != nil {
		return fail(err)
	}
	output := s.renderer.AddressBooks(books)
	return mcp.NewToolResultText(s.record("nc_list_addressbooks", output)), nil
}

func (s *Server) listContacts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	book, err := req.RequireString("addressbook")
	if err != nil {
		return fail(err)
	}
	page := req.GetInt("page", 1)
	limit := req.GetInt("limit", nextcloud.DefaultContactPageLimit)
	search := req.GetString("search", "")

	contacts, err := s.client.ListContacts(book, page, limit, search)
	if err != nil {
		return fail(err)
	}
	output := s.renderer.ContactsPage(book, contacts)
	return mcp.NewToolResultText(s.record("nc_list_contacts", output)), nil
}

func (s *Server) getContact(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	book, err := req.RequireString("addressbook")
	if err != nil {
		return fail(err)
	}
	filename, err := req.RequireString("contact")
	if err != nil {
		return fail(err)
	}

	contact, err := s.client.GetContact(book, filename)
	if err != nil {
		return fail(err)
	}
	output := s.renderer.Contact(contact)
	return mcp.NewToolResultText(s.record("nc_get_contact", output)), nil
}
