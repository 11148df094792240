package nextcloud

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
)

func TestListNotes(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/index.php/apps/notes/api/v1/notes" {
			t.Errorf("path = %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode([]Note{
			{ID: 1, Title: "Shopping", Category: "personal"},
			{ID: 2, Title: "Ideas"},
		})
	}))

	notes, err := client.ListNotes()
	if err != nil {
		t.Fatalf("ListNotes failed: %v", err)
	}
	if len(notes) != 2 || notes[0].Title != "Shopping" {
		t.Errorf("notes = %+v", notes)
	}
}

func TestListNotesAppMissing(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(404)
	}))

	_, err := client.ListNotes()
	if err == nil || !strings.Contains(err.Error(), "notes app") {
		t.Errorf("expected app-missing message, got %v", err)
	}
}

func TestCreateNoteRoundTrip(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}

		body, _ := io.ReadAll(r.Body)
		var payload map[string]string
		if err := json.Unmarshal(body, &payload); err != nil {
			t.Fatalf("payload not JSON: %v", err)
		}

		// Echo the note back with a server-assigned id, like the app
		// does.
		json.NewEncoder(w).Encode(Note{
			ID:       77,
			Title:    payload["title"],
			Content:  payload["content"],
			Category: payload["category"],
		})
	}))

	note, err := client.CreateNote("Title", "Body text", "work")
	if err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}
	if note.ID != 77 {
		t.Errorf("ID = %d, want server-assigned 77", note.ID)
	}
	if note.Title != "Title" || note.Content != "Body text" || note.Category != "work" {
		t.Errorf("round-trip mismatch: %+v", note)
	}
}

func TestDeleteNoteAlreadyGone(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(404)
	}))

	err := client.DeleteNote(5)
	if !IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
	if !strings.Contains(err.Error(), "already deleted") {
		t.Errorf("message = %q", err.Error())
	}
}
