package mcpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"nextool/internal/results"
	"nextool/internal/widgets"
	"nextool/nextcloud"
)

func testServer(t *testing.T, handler http.Handler) *Server {
	t.Helper()

	backend := httptest.NewServer(handler)
	t.Cleanup(backend.Close)

	client, err := nextcloud.New(backend.URL, "testuser", "testpass")
	if err != nil {
		t.Fatal(err)
	}

	store, err := results.Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })

	renderer := widgets.NewRenderer(&widgets.Settings{Color: false, Icons: false, DateFormat: "2006-01-02"})
	return New(client, renderer, store)
}

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("empty tool result")
	}
	text, ok := mcp.AsTextContent(result.Content[0])
	if !ok {
		t.Fatalf("unexpected content type %T", result.Content[0])
	}
	return text.Text
}

func TestListNotesTool(t *testing.T) {
	srv := testServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]nextcloud.Note{{ID: 1, Title: "Shopping"}})
	}))

	result, err := srv.listNotes(context.Background(), callRequest("nc_list_notes", nil))
	if err != nil {
		t.Fatalf("handler returned protocol error: %v", err)
	}
	if result.IsError {
		t.Fatalf("tool error: %s", resultText(t, result))
	}

	text := resultText(t, result)
	if !strings.Contains(text, "Shopping") {
		t.Errorf("output = %q", text)
	}
}

func TestToolErrorsNeverEscalate(t *testing.T) {
	srv := testServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(500)
		w.Write([]byte("boom"))
	}))

	// A failing backend becomes a tool error result, never a Go error
	// that would crash the host.
	result, err := srv.listNotes(context.Background(), callRequest("nc_list_notes", nil))
	if err != nil {
		t.Fatalf("handler escalated: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected a tool error result")
	}
}

func TestMissingArgumentIsToolError(t *testing.T) {
	srv := testServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should reach the backend")
	}))

	result, err := srv.readFile(context.Background(), callRequest("nc_read_file", map[string]any{}))
	if err != nil {
		t.Fatalf("handler escalated: %v", err)
	}
	if !result.IsError {
		t.Fatal("missing required argument must be a tool error")
	}
}

func TestRestoreReplaysStoredOutput(t *testing.T) {
	srv := testServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]nextcloud.Note{{ID: 1, Title: "Shopping"}})
	}))

	first, err := srv.listNotes(context.Background(), callRequest("nc_list_notes", nil))
	if err != nil {
		t.Fatal(err)
	}
	text := resultText(t, first)

	// The output ends with the replay handle.
	start := strings.LastIndex(text, "[result ")
	if start < 0 {
		t.Fatalf("no result id in output: %q", text)
	}
	id := strings.TrimSuffix(text[start+len("[result "):], "]")

	replay, err := srv.restore(context.Background(), callRequest("nc_restore", map[string]any{"id": id}))
	if err != nil {
		t.Fatal(err)
	}
	if replay.IsError {
		t.Fatalf("restore failed: %s", resultText(t, replay))
	}
	if !strings.Contains(resultText(t, replay), "Shopping") {
		t.Errorf("replayed output = %q", resultText(t, replay))
	}
}

func TestRestoreUnknownID(t *testing.T) {
	srv := testServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	result, err := srv.restore(context.Background(), callRequest("nc_restore", map[string]any{"id": "missing"}))
	if err != nil {
		t.Fatal(err)
	}
	if !result.IsError {
		t.Fatal("expected tool error for unknown id")
	}
}

func TestUpdateCardForwardsOnlySetFields(t *testing.T) {
	var payload map[string]any
	srv := testServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&payload)
		w.WriteHeader(200)
	}))

	result, err := srv.updateCard(context.Background(), callRequest("nc_update_deck_card", map[string]any{
		"board_id": float64(1),
		"stack_id": float64(2),
		"card_id":  float64(3),
		"title":    "Renamed",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if result.IsError {
		t.Fatalf("tool error: %s", resultText(t, result))
	}

	if payload["title"] != "Renamed" {
		t.Errorf("title = %v", payload["title"])
	}
	if _, present := payload["description"]; present {
		t.Error("description must not be forwarded when absent")
	}
}
