package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testOptions(baseURL string) Options {
	return Options{
		APIKey:        "test-key",
		BaseURL:       baseURL,
		Model:         "gpt-4o-mini",
		VectorStoreID: "vs_123",
		MaxResults:    5,
	}
}

func TestGenerateRequestShape(t *testing.T) {
	var got Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/responses" {
			t.Errorf("path = %s, want /responses", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("authorization header = %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(Response{})
	}))
	defer server.Close()

	client := NewHTTPClient(testOptions(server.URL))
	if _, err := client.Generate(context.Background(), "hello"); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if got.Model != "gpt-4o-mini" {
		t.Errorf("model = %q", got.Model)
	}
	if got.Input != "hello" {
		t.Errorf("input = %q", got.Input)
	}
	if len(got.Tools) != 1 {
		t.Fatalf("got %d tools, want 1", len(got.Tools))
	}
	tool := got.Tools[0]
	if tool.Type != ToolTypeFileSearch {
		t.Errorf("tool type = %q", tool.Type)
	}
	if len(tool.VectorStoreIDs) != 1 || tool.VectorStoreIDs[0] != "vs_123" {
		t.Errorf("vector store ids = %v", tool.VectorStoreIDs)
	}
	if tool.MaxNumResults != 5 {
		t.Errorf("max results = %d, want 5", tool.MaxNumResults)
	}
	if len(got.Include) != 1 || got.Include[0] != IncludeSearchResults {
		t.Errorf("include = %v", got.Include)
	}
}

func TestGenerateDecodesTaggedOutput(t *testing.T) {
	// Unknown fields inside items must not break decoding.
	body := `{
		"id": "resp_1",
		"model": "gpt-4o-mini",
		"output": [
			{"type": "file_search_call", "id": "fs_1", "status": "completed", "queries": ["q"]},
			{"type": "message", "role": "assistant", "content": [
				{"type": "output_text", "text": "hi", "annotations": [
					{"type": "file_citation", "index": 2, "file_id": "file-1", "filename": "doc.pdf"}
				]}
			]}
		]
	}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	defer server.Close()

	resp, err := NewHTTPClient(testOptions(server.URL)).Generate(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(resp.Output) != 2 {
		t.Fatalf("got %d output items, want 2", len(resp.Output))
	}
	msg := resp.Output[1]
	if msg.Type != ItemTypeMessage || len(msg.Content) != 1 {
		t.Fatalf("unexpected message item: %+v", msg)
	}
	block := msg.Content[0]
	if block.Text != "hi" || len(block.Annotations) != 1 {
		t.Fatalf("unexpected content block: %+v", block)
	}
	ann := block.Annotations[0]
	if ann.Index == nil || *ann.Index != 2 || ann.Filename != "doc.pdf" {
		t.Errorf("unexpected annotation: %+v", ann)
	}
}

func TestGenerateAbsentIndexStaysNil(t *testing.T) {
	body := `{"output": [{"type": "message", "content": [
		{"type": "output_text", "text": "hi", "annotations": [
			{"type": "file_citation", "filename": "doc.pdf"}
		]}
	]}]}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	defer server.Close()

	resp, err := NewHTTPClient(testOptions(server.URL)).Generate(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	ann := resp.Output[0].Content[0].Annotations[0]
	if ann.Index != nil {
		t.Errorf("absent index decoded as %d, want nil", *ann.Index)
	}
}

func TestGenerateNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "invalid api key"}}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	if _, err := NewHTTPClient(testOptions(server.URL)).Generate(context.Background(), "hello"); err == nil {
		t.Fatal("Generate returned nil error for non-200 status")
	}
}

func TestGenerateMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	if _, err := NewHTTPClient(testOptions(server.URL)).Generate(context.Background(), "hello"); err == nil {
		t.Fatal("Generate returned nil error for malformed body")
	}
}
