package nextcloud

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"
)

func decodePayload(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	body, _ := io.ReadAll(r.Body)
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("payload not JSON: %v", err)
	}
	return payload
}

func TestListBoards(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/index.php/apps/deck/api/v1.0/boards" {
			t.Errorf("path = %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode([]Board{
			{ID: 1, Title: "Work"},
			{ID: 2, Title: "Done stuff", Archived: true},
		})
	}))

	boards, err := client.ListBoards()
	if err != nil {
		t.Fatalf("ListBoards failed: %v", err)
	}
	if len(boards) != 2 || !boards[1].Archived {
		t.Errorf("boards = %+v", boards)
	}
}

func TestListCardsEmbeddedInStack(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/index.php/apps/deck/api/v1.0/boards/1/stacks/2" {
			t.Errorf("path = %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(Stack{
			ID:    2,
			Title: "Doing",
			Cards: []Card{{ID: 10, Title: "Fix it"}},
		})
	}))

	cards, err := client.ListCards(1, 2)
	if err != nil {
		t.Fatalf("ListCards failed: %v", err)
	}
	if len(cards) != 1 || cards[0].Title != "Fix it" {
		t.Errorf("cards = %+v", cards)
	}
}

func TestCreateCardPayload(t *testing.T) {
	var payload map[string]any
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload = decodePayload(t, r)
		json.NewEncoder(w).Encode(Card{ID: 10, Title: "New card"})
	}))

	if _, err := client.CreateCard(1, 2, "New card", "", 0, ""); err != nil {
		t.Fatalf("CreateCard failed: %v", err)
	}

	if payload["type"] != "plain" {
		t.Errorf("type = %v, want plain", payload["type"])
	}
	if _, present := payload["duedate"]; present {
		t.Error("duedate must be omitted when empty")
	}
}

func TestCreateCardWithDueDate(t *testing.T) {
	var payload map[string]any
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload = decodePayload(t, r)
		json.NewEncoder(w).Encode(Card{ID: 11})
	}))

	if _, err := client.CreateCard(1, 2, "Card", "", 0, "2026-09-01T12:00:00Z"); err != nil {
		t.Fatal(err)
	}
	if payload["duedate"] != "2026-09-01T12:00:00Z" {
		t.Errorf("duedate = %v", payload["duedate"])
	}
}

func TestUpdateCardOnlySetFields(t *testing.T) {
	var payload map[string]any
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "PUT" {
			t.Errorf("method = %s, want PUT", r.Method)
		}
		payload = decodePayload(t, r)
		w.WriteHeader(200)
	}))

	title := "Renamed"
	if err := client.UpdateCard(1, 2, 10, CardUpdate{Title: &title}); err != nil {
		t.Fatalf("UpdateCard failed: %v", err)
	}

	if payload["title"] != "Renamed" {
		t.Errorf("title = %v", payload["title"])
	}
	for _, key := range []string{"description", "order", "duedate", "archived"} {
		if _, present := payload[key]; present {
			t.Errorf("%s must not be sent when unset", key)
		}
	}
}

func TestArchiveCard(t *testing.T) {
	var payload map[string]any
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload = decodePayload(t, r)
		w.WriteHeader(200)
	}))

	if err := client.ArchiveCard(1, 2, 10); err != nil {
		t.Fatal(err)
	}
	if payload["archived"] != true {
		t.Errorf("archived = %v, want true", payload["archived"])
	}
}

func TestReorderCardSameStack(t *testing.T) {
	var payload map[string]any
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload = decodePayload(t, r)
		w.WriteHeader(200)
	}))

	if err := client.ReorderCard(1, 2, 10, 3, 0); err != nil {
		t.Fatal(err)
	}
	if payload["order"] != float64(3) {
		t.Errorf("order = %v", payload["order"])
	}
	if _, present := payload["stackId"]; present {
		t.Error("stackId must be omitted when staying in the same stack")
	}
}

func TestReorderCardAcrossStacks(t *testing.T) {
	var payload map[string]any
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload = decodePayload(t, r)
		w.WriteHeader(200)
	}))

	if err := client.ReorderCard(1, 2, 10, 0, 5); err != nil {
		t.Fatal(err)
	}
	if payload["stackId"] != float64(5) {
		t.Errorf("stackId = %v, want 5", payload["stackId"])
	}
}

func TestLabelAndUserAssignment(t *testing.T) {
	var gotPath string
	var payload map[string]any
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		payload = decodePayload(t, r)
		w.WriteHeader(200)
	}))

	if err := client.AssignLabel(1, 2, 10, 7); err != nil {
		t.Fatal(err)
	}
	if gotPath != "/index.php/apps/deck/api/v1.0/boards/1/stacks/2/cards/10/assignLabel" {
		t.Errorf("path = %q", gotPath)
	}
	if payload["labelId"] != float64(7) {
		t.Errorf("labelId = %v", payload["labelId"])
	}

	if err := client.UnassignUser(1, 2, 10, "alice"); err != nil {
		t.Fatal(err)
	}
	if gotPath != "/index.php/apps/deck/api/v1.0/boards/1/stacks/2/cards/10/unassignUser" {
		t.Errorf("path = %q", gotPath)
	}
	if payload["userId"] != "alice" {
		t.Errorf("userId = %v", payload["userId"])
	}
}
