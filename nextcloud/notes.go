package nextcloud

import (
	"fmt"
)

// ListNotes fetches all notes from the Notes app. A 404 on the app
// root means the app itself is missing, which deserves a clearer
// message than a plain not-found.
func (c *Client) ListNotes() ([]Note, error) {
	const op = "ListNotes"

	var notes []Note
	if err := c.doJSON(op, "GET", c.notesURL("notes"), nil, &notes); err != nil {
		if IsNotFound(err) {
			return nil, NewRequestError(op, 404, "notes app not found or not enabled on this instance")
		}
		return nil, err
	}
	return notes, nil
}

// GetNote fetches a single note by id.
func (c *Client) GetNote(id int64) (*Note, error) {
	const op = "GetNote"

	var note Note
	if err := c.doJSON(op, "GET", c.notesURL(fmt.Sprintf("notes/%d", id)), nil, &note); err != nil {
		if IsNotFound(err) {
			return nil, NewRequestError(op, 404, fmt.Sprintf("note %d not found", id))
		}
		return nil, err
	}
	return &note, nil
}

// CreateNote creates a note and returns the stored record including
// its server-assigned id. Category may be empty for the root.
func (c *Client) CreateNote(title, content, category string) (*Note, error) {
	const op = "CreateNote"

	payload := map[string]string{
		"title":    title,
		"content":  content,
		"category": category,
	}

	var note Note
	if err := c.doJSON(op, "POST", c.notesURL("notes"), payload, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// DeleteNote removes a note by id. Deleting an already-gone note maps
// to a not-found error instead of a hard failure.
func (c *Client) DeleteNote(id int64) error {
	const op = "DeleteNote"

	if err := c.doJSON(op, "DELETE", c.notesURL(fmt.Sprintf("notes/%d", id)), nil, nil); err != nil {
		if IsNotFound(err) {
			return NewRequestError(op, 404, fmt.Sprintf("note %d not found (may have been already deleted)", id))
		}
		return err
	}
	return nil
}
