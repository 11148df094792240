package nextcloud

import (
	"fmt"
)

// StackUpdate is a partial update for a Deck stack. Nil fields are
// omitted from the request so the server keeps its current values.
type StackUpdate struct {
	Title *string
	Order *int
}

// CardUpdate is a partial update for a Deck card.
type CardUpdate struct {
	Title       *string
	Description *string
	Order       *int
	DueDate     *string
	Archived    *bool
}

// LabelUpdate is a partial update for a Deck label.
type LabelUpdate struct {
	Title *string
	Color *string
}

// ListBoards fetches all Deck boards visible to the user.
func (c *Client) ListBoards() ([]Board, error) {
	var boards []Board
	if err := c.doJSON("ListBoards", "GET", c.deckURL("boards"), nil, &boards); err != nil {
		return nil, err
	}
	return boards, nil
}

// CreateBoard creates a board. Color is a hex string without '#'.
func (c *Client) CreateBoard(title, color string) (*Board, error) {
	payload := map[string]any{"title": title, "color": color}

	var board Board
	if err := c.doJSON("CreateBoard", "POST", c.deckURL("boards"), payload, &board); err != nil {
		return nil, err
	}
	return &board, nil
}

// ListStacks fetches the stacks of a board in display order.
func (c *Client) ListStacks(boardID int64) ([]Stack, error) {
	var stacks []Stack
	url := c.deckURL(fmt.Sprintf("boards/%d/stacks", boardID))
	if err := c.doJSON("ListStacks", "GET", url, nil, &stacks); err != nil {
		return nil, err
	}
	return stacks, nil
}

// CreateStack adds a stack to a board at the given order position.
func (c *Client) CreateStack(boardID int64, title string, order int) (*Stack, error) {
	payload := map[string]any{"title": title, "order": order}

	var stack Stack
	url := c.deckURL(fmt.Sprintf("boards/%d/stacks", boardID))
	if err := c.doJSON("CreateStack", "POST", url, payload, &stack); err != nil {
		return nil, err
	}
	return &stack, nil
}

// UpdateStack applies a partial update to a stack.
func (c *Client) UpdateStack(boardID, stackID int64, update StackUpdate) error {
	payload := map[string]any{}
	if update.Title != nil {
		payload["title"] = *update.Title
	}
	if update.Order != nil {
		payload["order"] = *update.Order
	}

	url := c.deckURL(fmt.Sprintf("boards/%d/stacks/%d", boardID, stackID))
	return c.doJSON("UpdateStack", "PUT", url, payload, nil)
}

// DeleteStack removes a stack and its cards.
func (c *Client) DeleteStack(boardID, stackID int64) error {
	url := c.deckURL(fmt.Sprintf("boards/%d/stacks/%d", boardID, stackID))
	return c.doJSON("DeleteStack", "DELETE", url, nil, nil)
}

// ListCards fetches the cards of one stack. The Deck API returns them
// embedded in the stack resource.
func (c *Client) ListCards(boardID, stackID int64) ([]Card, error) {
	var stack Stack
	url := c.deckURL(fmt.Sprintf("boards/%d/stacks/%d", boardID, stackID))
	if err := c.doJSON("ListCards", "GET", url, nil, &stack); err != nil {
		return nil, err
	}
	return stack.Cards, nil
}

// CreateCard adds a card to a stack. DueDate is an ISO-8601 string and
// may be empty to leave the card without a deadline.
func (c *Client) CreateCard(boardID, stackID int64, title, description string, order int, dueDate string) (*Card, error) {
	payload := map[string]any{
		"title":       title,
		"description": description,
		"type":        "plain",
		"order":       order,
	}
	if dueDate != "" {
		payload["duedate"] = dueDate
	}

	var card Card
	url := c.deckURL(fmt.Sprintf("boards/%d/stacks/%d/cards", boardID, stackID))
	if err := c.doJSON("CreateCard", "POST", url, payload, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

// UpdateCard applies a partial update to a card. Archived toggles the
// card's archive state when set.
func (c *Client) UpdateCard(boardID, stackID, cardID int64, update CardUpdate) error {
	payload := map[string]any{}
	if update.Title != nil {
		payload["title"] = *update.Title
	}
	if update.Description != nil {
		payload["description"] = *update.Description
	}
	if update.Order != nil {
		payload["order"] = *update.Order
	}
	if update.DueDate != nil {
		payload["duedate"] = *update.DueDate
	}
	if update.Archived != nil {
		payload["archived"] = *update.Archived
	}

	url := c.deckURL(fmt.Sprintf("boards/%d/stacks/%d/cards/%d", boardID, stackID, cardID))
	return c.doJSON("UpdateCard", "PUT", url, payload, nil)
}

// ReorderCard moves a card within its stack, or into another stack
// when targetStackID is non-zero. Concurrent reorders of the same card
// are not serialized client-side; the server's ordering wins.
func (c *Client) ReorderCard(boardID, stackID, cardID int64, order int, targetStackID int64) error {
	payload := map[string]any{"order": order}
	if targetStackID != 0 {
		payload["stackId"] = targetStackID
	}

	url := c.deckURL(fmt.Sprintf("boards/%d/stacks/%d/cards/%d", boardID, stackID, cardID))
	return c.doJSON("ReorderCard", "PUT", url, payload, nil)
}

// DeleteCard removes a card.
func (c *Client) DeleteCard(boardID, stackID, cardID int64) error {
	url := c.deckURL(fmt.Sprintf("boards/%d/stacks/%d/cards/%d", boardID, stackID, cardID))
	return c.doJSON("DeleteCard", "DELETE", url, nil, nil)
}

// ArchiveCard marks a card as archived.
func (c *Client) ArchiveCard(boardID, stackID, cardID int64) error {
	archived := true
	return c.UpdateCard(boardID, stackID, cardID, CardUpdate{Archived: &archived})
}

// UnarchiveCard returns a card to the active set.
func (c *Client) UnarchiveCard(boardID, stackID, cardID int64) error {
	archived := false
	return c.UpdateCard(boardID, stackID, cardID, CardUpdate{Archived: &archived})
}

// CreateLabel adds a label to a board. Color is hex without '#'.
func (c *Client) CreateLabel(boardID int64, title, color string) (*Label, error) {
	payload := map[string]any{"title": title, "color": color}

	var label Label
	url := c.deckURL(fmt.Sprintf("boards/%d/labels", boardID))
	if err := c.doJSON("CreateLabel", "POST", url, payload, &label); err != nil {
		return nil, err
	}
	return &label, nil
}

// UpdateLabel applies a partial update to a label.
func (c *Client) UpdateLabel(boardID, labelID int64, update LabelUpdate) error {
	payload := map[string]any{}
	if update.Title != nil {
		payload["title"] = *update.Title
	}
	if update.Color != nil {
		payload["color"] = *update.Color
	}

	url := c.deckURL(fmt.Sprintf("boards/%d/labels/%d", boardID, labelID))
	return c.doJSON("UpdateLabel", "PUT", url, payload, nil)
}

// DeleteLabel removes a label from a board.
func (c *Client) DeleteLabel(boardID, labelID int64) error {
	url := c.deckURL(fmt.Sprintf("boards/%d/labels/%d", boardID, labelID))
	return c.doJSON("DeleteLabel", "DELETE", url, nil, nil)
}

// AssignLabel attaches a board label to a card.
func (c *Client) AssignLabel(boardID, stackID, cardID, labelID int64) error {
	payload := map[string]any{"labelId": labelID}
	url := c.deckURL(fmt.Sprintf("boards/%d/stacks/%d/cards/%d/assignLabel", boardID, stackID, cardID))
	return c.doJSON("AssignLabel", "PUT", url, payload, nil)
}

// RemoveLabel detaches a label from a card.
func (c *Client) RemoveLabel(boardID, stackID, cardID, labelID int64) error {
	payload := map[string]any{"labelId": labelID}
	url := c.deckURL(fmt.Sprintf("boards/%d/stacks/%d/cards/%d/removeLabel", boardID, stackID, cardID))
	return c.doJSON("RemoveLabel", "PUT", url, payload, nil)
}

// AssignUser assigns a Nextcloud user to a card.
func (c *Client) AssignUser(boardID, stackID, cardID int64, userID string) error {
	payload := map[string]any{"userId": userID}
	url := c.deckURL(fmt.Sprintf("boards/%d/stacks/%d/cards/%d/assignUser", boardID, stackID, cardID))
	return c.doJSON("AssignUser", "PUT", url, payload, nil)
}

// UnassignUser removes a user assignment from a card.
func (c *Client) UnassignUser(boardID, stackID, cardID int64, userID string) error {
	payload := map[string]any{"userId": userID}
	url := c.deckURL(fmt.Sprintf("boards/%d/stacks/%d/cards/%d/unassignUser", boardID, stackID, cardID))
	return c.doJSON("UnassignUser", "PUT", url, payload, nil)
}
