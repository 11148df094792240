package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"nextool/nextcloud"
)

func (s *Server) registerDeckTools() {
	s.mcp.AddTool(mcp.NewTool("nc_list_deck_boards",
		mcp.WithDescription("List all Deck boards."),
	), s.listBoards)

	s.mcp.AddTool(mcp.NewTool("nc_create_deck_board",
		mcp.WithDescription("Create a new Deck board."),
		mcp.WithString("title", mcp.Required(), mcp.Description("Board title")),
		mcp.WithString("color", mcp.Description("Hex color without #, default 000000")),
	), s.createBoard)

	s.mcp.AddTool(mcp.NewTool("nc_list_deck_stacks",
		mcp.WithDescription("List stacks in a board."),
		mcp.WithNumber("board_id", mcp.Required(), mcp.Description("Board ID")),
	), s.listStacks)

	s.mcp.AddTool(mcp.NewTool("nc_list_deck_cards",
		mcp.WithDescription("List cards in a stack."),
		mcp.WithNumber("board_id", mcp.Required(), mcp.Description("Board ID")),
		mcp.WithNumber("stack_id", mcp.Required(), mcp.Description("Stack ID")),
	), s.listCards)

	s.mcp.AddTool(mcp.NewTool("nc_create_deck_stack",
		mcp.WithDescription("Create a new stack."),
		mcp.WithNumber("board_id", mcp.Required(), mcp.Description("Board ID")),
		mcp.WithString("title", mcp.Required(), mcp.Description("Stack title")),
		mcp.WithNumber("order", mcp.Description("Position, default 0")),
	), s.createStack)

	s.mcp.AddTool(mcp.NewTool("nc_update_deck_stack",
		mcp.WithDescription("Update a stack. Only the given fields change."),
		mcp.WithNumber("board_id", mcp.Required(), mcp.Description("Board ID")),
		mcp.WithNumber("stack_id", mcp.Required(), mcp.Description("Stack ID")),
		mcp.WithString("title", mcp.Description("New title")),
		mcp.WithNumber("order", mcp.Description("New position")),
	), s.updateStack)

	s.mcp.AddTool(mcp.NewTool("nc_delete_deck_stack",
		mcp.WithDescription("Delete a stack."),
		mcp.WithNumber("board_id", mcp.Required(), mcp.Description("Board ID")),
		mcp.WithNumber("stack_id", mcp.Required(), mcp.Description("Stack ID")),
	), s.deleteStack)

	s.mcp.AddTool(mcp.NewTool("nc_create_deck_card",
		mcp.WithDescription("Create a new card."),
		mcp.WithNumber("board_id", mcp.Required(), mcp.Description("Board ID")),
		mcp.WithNumber("stack_id", mcp.Required(), mcp.Description("Stack ID")),
		mcp.WithString("title", mcp.Required(), mcp.Description("Card title")),
		mcp.WithString("description", mcp.Description("Card description")),
		mcp.WithNumber("order", mcp.Description("Position, default 0")),
		mcp.WithString("duedate", mcp.Description("Due date, ISO-8601")),
	), s.createCard)

	s.mcp.AddTool(mcp.NewTool("nc_update_deck_card",
		mcp.WithDescription("Update a card. Only the given fields change."),
		mcp.WithNumber("board_id", mcp.Required(), mcp.Description("Board ID")),
		mcp.WithNumber("stack_id", mcp.Required(), mcp.Description("Stack ID")),
		mcp.WithNumber("card_id", mcp.Required(), mcp.Description("Card ID")),
		mcp.WithString("title", mcp.Description("New title")),
		mcp.WithString("description", mcp.Description("New description")),
		mcp.WithNumber("order", mcp.Description("New position")),
		mcp.WithString("duedate", mcp.Description("New due date, ISO-8601")),
	), s.updateCard)

	s.mcp.AddTool(mcp.NewTool("nc_archive_deck_card",
		mcp.WithDescription("Archive a card."),
		mcp.WithNumber("board_id", mcp.Required(), mcp.Description("Board ID")),
		mcp.WithNumber("stack_id", mcp.Required(), mcp.Description("Stack ID")),
		mcp.WithNumber("card_id", mcp.Required(), mcp.Description("Card ID")),
	), s.archiveCard)

	s.mcp.AddTool(mcp.NewTool("nc_unarchive_deck_card",
		mcp.WithDescription("Unarchive a card."),
		mcp.WithNumber("board_id", mcp.Required(), mcp.Description("Board ID")),
		mcp.WithNumber("stack_id", mcp.Required(), mcp.Description("Stack ID")),
		mcp.WithNumber("card_id", mcp.Required(), mcp.Description("Card ID")),
	), s.unarchiveCard)

	s.mcp.AddTool(mcp.NewTool("nc_reorder_deck_card",
		mcp.WithDescription("Reorder a card, optionally moving it to another stack."),
		mcp.WithNumber("board_id", mcp.Required(), mcp.Description("Board ID")),
		mcp.WithNumber("stack_id", mcp.Required(), mcp.Description("Current stack ID")),
		mcp.WithNumber("card_id", mcp.Required(), mcp.Description("Card ID")),
		mcp.WithNumber("order", mcp.Required(), mcp.Description("New position")),
		mcp.WithNumber("target_stack_id", mcp.Description("Destination stack ID when moving")),
	), s.reorderCard)

	s.mcp.AddTool(mcp.NewTool("nc_delete_deck_card",
		mcp.WithDescription("Delete a card."),
		mcp.WithNumber("board_id", mcp.Required(), mcp.Description("Board ID")),
		mcp.WithNumber("stack_id", mcp.Required(), mcp.Description("Stack ID")),
		mcp.WithNumber("card_id", mcp.Required(), mcp.Description("Card ID")),
	), s.deleteCard)

	s.mcp.AddTool(mcp.NewTool("nc_create_deck_label",
		mcp.WithDescription("Create a new label."),
		mcp.WithNumber("board_id", mcp.Required(), mcp.Description("Board ID")),
		mcp.WithString("title", mcp.Required(), mcp.Description("Label title")),
		mcp.WithString("color", mcp.Required(), mcp.Description("Hex color without #")),
	), s.createLabel)

	s.mcp.AddTool(mcp.NewTool("nc_update_deck_label",
		mcp.WithDescription("Update a label. Only the given fields change."),
		mcp.WithNumber("board_id", mcp.Required(), mcp.Description("Board ID")),
		mcp.WithNumber("label_id", mcp.Required(), mcp.Description("Label ID")),
		mcp.WithString("title", mcp.Description("New title")),
		mcp.WithString("color", mcp.Description("New hex color without #")),
	), s.updateLabel)

	s.mcp.AddTool(mcp.NewTool("nc_delete_deck_label",
		mcp.WithDescription("Delete a label."),
		mcp.WithNumber("board_id", mcp.Required(), mcp.Description("Board ID")),
		mcp.WithNumber("label_id", mcp.Required(), mcp.Description("Label ID")),
	), s.deleteLabel)

	s.mcp.AddTool(mcp.NewTool("nc_assign_deck_label_to_card",
		mcp.WithDescription("Assign a label to a card."),
		mcp.WithNumber("board_id", mcp.Required(), mcp.Description("Board ID")),
		mcp.WithNumber("stack_id", mcp.Required(), mcp.Description("Stack ID")),
		mcp.WithNumber("card_id", mcp.Required(), mcp.Description("Card ID")),
		mcp.WithNumber("label_id", mcp.Required(), mcp.Description("Label ID")),
	), s.assignLabel)

	s.mcp.AddTool(mcp.NewTool("nc_remove_deck_label_from_card",
		mcp.WithDescription("Remove a label from a card."),
		mcp.WithNumber("board_id", mcp.Required(), mcp.Description("Board ID")),
		mcp.WithNumber("stack_id", mcp.Required(), mcp.Description("Stack ID")),
		mcp.WithNumber("card_id", mcp.Required(), mcp.Description("Card ID")),
		mcp.WithNumber("label_id", mcp.Required(), mcp.Description("Label ID")),
	), s.removeLabel)

	s.mcp.AddTool(mcp.NewTool("nc_assign_deck_user_to_card",
		mcp.WithDescription("Assign a user to a card."),
		mcp.WithNumber("board_id", mcp.Required(), mcp.Description("Board ID")),
		mcp.WithNumber("stack_id", mcp.Required(), mcp.Description("Stack ID")),
		mcp.WithNumber("card_id", mcp.Required(), mcp.Description("Card ID")),
		mcp.WithString("user_id", mcp.Required(), mcp.Description("User ID")),
	), s.assignUser)

	s.mcp.AddTool(mcp.NewTool("nc_remove_deck_user_from_card",
		mcp.WithDescription("Remove a user from a card."),
		mcp.WithNumber("board_id", mcp.Required(), mcp.Description("Board ID")),
		mcp.WithNumber("stack_id", mcp.Required(), mcp.Description("Stack ID")),
		mcp.WithNumber("card_id", mcp.Required(), mcp.Description("Card ID")),
		mcp.WithString("user_id", mcp.Required(), mcp.Description("User ID")),
	), s.unassignUser)
}

// requireID reads a required numeric argument as an int64 entity id.
func requireID(req mcp.CallToolRequest, key string) (int64, error) {
	v, err := req.RequireInt(key)
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}

// optString returns a pointer only when the argument was provided.
func optString(req mcp.CallToolRequest, key string) *string {
	if v, ok := req.GetArguments()[key]; ok {
		if str, ok := v.(string); ok {
			return &str
		}
	}
	return nil
}

// optInt returns a pointer only when the argument was provided. JSON
// numbers arrive as float64.
func optInt(req mcp.CallToolRequest, key string) *int {
	if v, ok := req.GetArguments()[key]; ok {
		if f, ok := v.(float64); ok {
			n := int(f)
			return &n
		}
	}
	return nil
}

func (s *Server) listBoards(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	boards, err := s.client.ListBoards()
	if err != nil {
		return fail(err)
	}
	output := s.renderer.Boards(boards)
	return mcp.NewToolResultText(s.record("nc_list_deck_boards", output)), nil
}

func (s *Server) createBoard(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := req.RequireString("title")
	if err != nil {
		return fail(err)
	}
	color := req.GetString("color", "000000")

	board, err := s.client.CreateBoard(title, color)
	if err != nil {
		return fail(err)
	}
	return mcp.NewToolResultText(s.renderer.Success(fmt.Sprintf("created board %d: %s", board.ID, board.Title))), nil
}

func (s *Server) listStacks(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	boardID, err := requireID(req, "board_id")
	if err != nil {
		return fail(err)
	}
	stacks, err := s.client.ListStacks(boardID)
	if err != nil {
		return fail(err)
	}
	output := s.renderer.Stacks(fmt.Sprintf("board %d", boardID), stacks)
	return mcp.NewToolResultText(s.record("nc_list_deck_stacks", output)), nil
}

func (s *Server) listCards(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	boardID, err := requireID(req, "board_id")
	if err != nil {
		return fail(err)
	}
	stackID, err := requireID(req, "stack_id")
	if err != nil {
		return fail(err)
	}
	cards, err := s.client.ListCards(boardID, stackID)
	if err != nil {
		return fail(err)
	}
	output := s.renderer.Cards(fmt.Sprintf("stack %d", stackID), cards)
	return mcp.NewToolResultText(s.record("nc_list_deck_cards", output)), nil
}

func (s *Server) createStack(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	boardID, err := requireID(req, "board_id")
	if err != nil {
		return fail(err)
	}
	title, err := req.RequireString("title")
	if err != nil {
		return fail(err)
	}
	order := req.GetInt("order", 0)

	stack, err := s.client.CreateStack(boardID, title, order)
	if err != nil {
		return fail(err)
	}
	return mcp.NewToolResultText(s.renderer.Success(fmt.Sprintf("created stack %d: %s", stack.ID, stack.Title))), nil
}

func (s *Server) updateStack(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	boardID, err := requireID(req, "board_id")
	if err != nil {
		return fail(err)
	}
	stackID, err := requireID(req, "stack_id")
	if err != nil {
		return fail(err)
	}

	update := nextcloud.StackUpdate{
		Title: optString(req, "title"),
		Order: optInt(req, "order"),
	}
	if err := s.client.UpdateStack(boardID, stackID, update); err != nil {
		return fail(err)
	}
	return mcp.NewToolResultText(s.renderer.Success(fmt.Sprintf("updated stack %d", stackID))), nil
}

func (s *Server) deleteStack(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	boardID, err := requireID(req, "board_id")
	if err != nil {
		return fail(err)
	}
	stackID, err := requireID(req, "stack_id")
	if err != nil {
		return fail(err)
	}
	if err := s.client.DeleteStack(boardID, stackID); err != nil {
		return fail(err)
	}
	return mcp.NewToolResultText(s.renderer.Success(fmt.Sprintf("deleted stack %d", stackID))), nil
}

func (s *Server) createCard(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	boardID, err := requireID(req, "board_id")
	if err != nil {
		return fail(err)
	}
	stackID, err := requireID(req, "stack_id")
	if err != nil {
		return fail(err)
	}
	title, err := req.RequireString("title")
	if err != nil {
		return fail(err)
	}
	description := req.GetString("description", "")
	order := req.GetInt("order", 0)
	dueDate := req.GetString("duedate", "")

	card, err := s.client.CreateCard(boardID, stackID, title, description, order, dueDate)
	if err != nil {
		return fail(err)
	}
	return mcp.NewToolResultText(s.renderer.Success(fmt.Sprintf("created card %d: %s", card.ID, card.Title))), nil
}

func (s *Server) updateCard(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	boardID, err := requireID(req, "board_id")
	if err != nil {
		return fail(err)
	}
	stackID, err := requireID(req, "stack_id")
	if err != nil {
		return fail(err)
	}
	cardID, err := requireID(req, "card_id")
	if err != nil {
		return fail(err)
	}

	update := nextcloud.CardUpdate{
		Title:       optString(req, "title"),
		Description: optString(req, "description"),
		Order:       optInt(req, "order"),
		DueDate:     optString(req, "duedate"),
	}
	if err := s.client.UpdateCard(boardID, stackID, cardID, update); err != nil {
		return fail(err)
	}
	return mcp.NewToolResultText(s.renderer.Success(fmt.Sprintf("updated card %d", cardID))), nil
}

func (s *Server) archiveCard(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.setCardArchived(req, true)
}

func (s *Server) unarchiveCard(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.setCardArchived(req, false)
}

func (s *Server) setCardArchived(req mcp.CallToolRequest, archived bool) (*mcp.CallToolResult, error) {
	boardID, err := requireID(req, "board_id")
	if err != nil {
		return fail(err)
	}
	stackID, err := requireID(req, "stack_id")
	if err != nil {
		return fail(err)
	}
	cardID, err := requireID(req, "card_id")
	if err != nil {
		return fail(err)
	}

	if archived {
		err = s.client.ArchiveCard(boardID, stackID, cardID)
	} else {
		err = s.client.UnarchiveCard(boardID, stackID, cardID)
	}
	if err != nil {
		return fail(err)
	}

	verb := "archived"
	if !archived {
		verb = "unarchived"
	}
	return mcp.NewToolResultText(s.renderer.Success(fmt.Sprintf("%s card %d", verb, cardID))), nil
}

func (s *Server) reorderCard(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	boardID, err := requireID(req, "board_id")
	if err != nil {
		return fail(err)
	}
	stackID, err := requireID(req, "stack_id")
	if err != nil {
		return fail(err)
	}
	cardID, err := requireID(req, "card_id")
	if err != nil {
		return fail(err)
	}
	order, err := req.RequireInt("order")
	if err != nil {
		return fail(err)
	}
	targetStackID := int64(req.GetInt("target_stack_id", 0))

	if err := s.client.ReorderCard(boardID, stackID, cardID, order, targetStackID); err != nil {
		return fail(err)
	}
	return mcp.NewToolResultText(s.renderer.Success(fmt.Sprintf("reordered card %d", cardID))), nil
}

func (s *Server) deleteCard(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	boardID, err := requireID(req, "board_id")
	if err != nil {
		return fail(err)
	}
	stackID, err := requireID(req, "stack_id")
	if err != nil {
		return fail(err)
	}
	cardID, err := requireID(req, "card_id")
	if err != nil {
		return fail(err)
	}
	if err := s.client.DeleteCard(boardID, stackID, cardID); err != nil {
		return fail(err)
	}
	return mcp.NewToolResultText(s.renderer.Success(fmt.Sprintf("deleted card %d", cardID))), nil
}

func (s *Server) createLabel(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	boardID, err := requireID(req, "board_id")
	if err != nil {
		return fail(err)
	}
	title, err := req.RequireString("title")
	if err != nil {
		return fail(err)
	}
	color, err := req.RequireString("color")
	if err != nil {
		return fail(err)
	}

	label, err := s.client.CreateLabel(boardID, title, color)
	if err != nil {
		return fail(err)
	}
	return mcp.NewToolResultText(s.renderer.Success(fmt.Sprintf("created label %d: %s", label.ID, label.Title))), nil
}

func (s *Server) updateLabel(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	boardID, err := requireID(req, "board_id")
	if err != nil {
		return fail(err)
	}
	labelID, err := requireID(req, "label_id")
	if err != nil {
		return fail(err)
	}

	update := nextcloud.LabelUpdate{
		Title: optString(req, "title"),
		Color: optString(req, "color"),
	}
	if err := s.client.UpdateLabel(boardID, labelID, update); err != nil {
		return fail(err)
	}
	return mcp.NewToolResultText(s.renderer.Success(fmt.Sprintf("updated label %d", labelID))), nil
}

func (s *Server) deleteLabel(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	boardID, err := requireID(req, "board_id")
	if err != nil {
		return fail(err)
	}
	labelID, err := requireID(req, "label_id")
	if err != nil {
		return fail(err)
	}
	if err := s.client.DeleteLabel(boardID, labelID); err != nil {
		return fail(err)
	}
	return mcp.NewToolResultText(s.renderer.Success(fmt.Sprintf("deleted label %d", labelID))), nil
}

func (s *Server) assignLabel(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.setCardLabel(req, true)
}

func (s *Server) removeLabel(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.setCardLabel(req, false)
}

func (s *Server) setCardLabel(req mcp.CallToolRequest, assign bool) (*mcp.CallToolResult, error) {
	boardID, err := requireID(req, "board_id")
	if err != nil {
		return fail(err)
	}
	stackID, err := requireID(req, "stack_id")
	if err != nil {
		return fail(err)
	}
	cardID, err := requireID(req, "card_id")
	if err != nil {
		return fail(err)
	}
	labelID, err := requireID(req, "label_id")
	if err != nil {
		return fail(err)
	}

	if assign {
		err = s.client.AssignLabel(boardID, stackID, cardID, labelID)
	} else {
		err = s.client.RemoveLabel(boardID, stackID, cardID, labelID)
	}
	if err != nil {
		return fail(err)
	}

	verb := "assigned label %d to card %d"
	if !assign {
		verb = "removed label %d from card %d"
	}
	return mcp.NewToolResultText(s.renderer.Success(fmt.Sprintf(verb, labelID, cardID))), nil
}

func (s *Server) assignUser(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.setCardUser(req, true)
}

func (s *Server) unassignUser(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.setCardUser(req, false)
}

func (s *Server) setCardUser(req mcp.CallToolRequest, assign bool) (*mcp.CallToolResult, error) {
	boardID, err := requireID(req, "board_id")
	if err != nil {
		return fail(err)
	}
	stackID, err := requireID(req, "stack_id")
	if err != nil {
		return fail(err)
	}
	cardID, err := requireID(req, "card_id")
	if err != nil {
		return fail(err)
	}
	userID, err := req.RequireString("user_id")
	if err != nil {
		return fail(err)
	}

	if assign {
		err = s.client.AssignUser(boardID, stackID, cardID, userID)
	} else {
		err = s.client.UnassignUser(boardID, stackID, cardID, userID)
	}
	if err != nil {
		return fail(err)
	}

	verb := "assigned %s to card %d"
	if !assign {
		verb = "removed %s from card %d"
	}
	return mcp.NewToolResultText(s.renderer.Success(fmt.Sprintf(verb, userID, cardID))), nil
}
