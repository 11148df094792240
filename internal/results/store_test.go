package results

import (
	"path/filepath"
	"testing"
	"time"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndGet(t *testing.T) {
	store := testStore(t)

	if err := store.Save("abc-123", "nc_list_files", "Files: /\n  a.txt"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	result, err := store.Get("abc-123")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if result.Tool != "nc_list_files" {
		t.Errorf("Tool = %q", result.Tool)
	}
	if result.Output != "Files: /\n  a.txt" {
		t.Errorf("Output = %q, replay must be verbatim", result.Output)
	}
}

func TestGetUnknownID(t *testing.T) {
	store := testStore(t)
	if _, err := store.Get("nope"); err == nil {
		t.Fatal("expected error for unknown id")
	}
}

func TestSaveOverwritesSameID(t *testing.T) {
	store := testStore(t)

	store.Save("id-1", "nc_list_notes", "old")
	if err := store.Save("id-1", "nc_list_notes", "new"); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	result, err := store.Get("id-1")
	if err != nil {
		t.Fatal(err)
	}
	if result.Output != "new" {
		t.Errorf("Output = %q, want new", result.Output)
	}
}

func TestRecent(t *testing.T) {
	store := testStore(t)

	store.Save("a", "t1", "one")
	store.Save("b", "t2", "two")
	store.Save("c", "t3", "three")

	results, err := store.Recent(2)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("got %d results, want 2", len(results))
	}
}

func TestPrune(t *testing.T) {
	store := testStore(t)
	store.Save("keep", "t", "fresh")

	n, err := store.Prune(24 * time.Hour)
	if err != nil {
		t.Fatalf("Prune failed: %v", err)
	}
	if n != 0 {
		t.Errorf("pruned %d fresh rows", n)
	}

	if _, err := store.Get("keep"); err != nil {
		t.Errorf("fresh row vanished: %v", err)
	}
}
