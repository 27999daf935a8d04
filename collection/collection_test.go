package collection

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fabfab/docchat/config"
)

func TestInspect(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/vector_stores/vs_123":
			io.WriteString(w, `{
				"id": "vs_123",
				"object": "vector_store",
				"name": "contracts",
				"status": "completed",
				"file_counts": {"in_progress": 0, "completed": 2, "failed": 0, "cancelled": 0, "total": 2}
			}`)
		case "/vector_stores/vs_123/files":
			io.WriteString(w, `{
				"object": "list",
				"data": [
					{"id": "file-1", "object": "vector_store.file", "vector_store_id": "vs_123"},
					{"id": "file-2", "object": "vector_store.file", "vector_store_id": "vs_123"}
				]
			}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	cfg := config.Config{
		OpenAIAPIKey:  "test-key",
		OpenAIBaseURL: server.URL,
		VectorStoreID: "vs_123",
	}

	summary, err := Inspect(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}

	if summary.ID != "vs_123" || summary.Name != "contracts" {
		t.Errorf("summary = %+v", summary)
	}
	if summary.FilesCompleted != 2 || summary.FilesTotal != 2 {
		t.Errorf("file counts = %d/%d, want 2/2", summary.FilesCompleted, summary.FilesTotal)
	}
	if len(summary.FileIDs) != 2 || summary.FileIDs[0] != "file-1" {
		t.Errorf("file ids = %v", summary.FileIDs)
	}
}

func TestInspectMissingCollectionID(t *testing.T) {
	if _, err := Inspect(context.Background(), config.Config{}); err == nil {
		t.Fatal("Inspect returned nil error without a collection id")
	}
}
