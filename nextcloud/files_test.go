package nextcloud

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
)

func TestListFiles(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "PROPFIND" {
			t.Errorf("method = %s, want PROPFIND", r.Method)
		}
		if r.Header.Get("Depth") != "1" {
			t.Errorf("Depth = %q, want 1", r.Header.Get("Depth"))
		}
		w.WriteHeader(207)
		w.Write([]byte(filesMultistatus))
	}))

	entries, err := client.ListFiles("Documents")
	if err != nil {
		t.Fatalf("ListFiles failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	if !entries[0].IsDirectory || entries[0].Name != "Documents" {
		t.Errorf("entry 0 = %+v, want Documents directory", entries[0])
	}
	if entries[1].IsDirectory || entries[1].Name != "a.txt" || entries[1].Size != 42 {
		t.Errorf("entry 1 = %+v, want a.txt with size 42", entries[1])
	}
	if entries[1].Size < 0 {
		t.Error("size must never be negative")
	}
}

func TestListFilesNotFound(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(404)
	}))

	_, err := client.ListFiles("missing")
	if !IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestReadFile(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/Documents/a.txt") {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte("hello world"))
	}))

	content, err := client.ReadFile("Documents/a.txt")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if content != "hello world" {
		t.Errorf("content = %q", content)
	}
}

func TestReadFileNotFound(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(404)
	}))

	_, err := client.ReadFile("nope.txt")
	if !IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}

	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatal("expected RequestError")
	}
	if reqErr.Path != "nope.txt" {
		t.Errorf("Path = %q", reqErr.Path)
	}
	if !strings.Contains(reqErr.Message, "not found") {
		t.Errorf("Message = %q, want a not-found result", reqErr.Message)
	}
}

func TestWriteFile(t *testing.T) {
	var gotBody string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "PUT" {
			t.Errorf("method = %s, want PUT", r.Method)
		}
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(201)
	}))

	if err := client.WriteFile("new.txt", "content here"); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if gotBody != "content here" {
		t.Errorf("body = %q", gotBody)
	}
}

func TestDeleteFile(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "DELETE" {
			t.Errorf("method = %s, want DELETE", r.Method)
		}
		w.WriteHeader(204)
	}))

	if err := client.DeleteFile("old.txt"); err != nil {
		t.Fatalf("DeleteFile failed: %v", err)
	}
}

func TestCreateDirectory(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "MKCOL" {
			t.Errorf("method = %s, want MKCOL", r.Method)
		}
		w.WriteHeader(201)
	}))

	if err := client.CreateDirectory("NewDir"); err != nil {
		t.Fatalf("CreateDirectory failed: %v", err)
	}
}

func TestCreateDirectoryAlreadyExists(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(405)
	}))

	err := client.CreateDirectory("Existing")
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got %v", err)
	}
	if reqErr.StatusCode != 405 {
		t.Errorf("StatusCode = %d, want 405", reqErr.StatusCode)
	}
	if !strings.Contains(reqErr.Message, "already exists") {
		t.Errorf("Message = %q", reqErr.Message)
	}
}
