// Package collection inspects the pre-provisioned document collection the
// generation API searches. It is an operator diagnostic: the query path
// never touches the collection directly.
package collection

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/fabfab/docchat/config"
)

type Summary struct {
	ID             string
	Name           string
	Status         string
	FilesCompleted int
	FilesTotal     int
	FileIDs        []string
}

// Inspect fetches the configured vector store and its file listing.
func Inspect(ctx context.Context, cfg config.Config) (Summary, error) {
	if cfg.VectorStoreID == "" {
		return Summary{}, fmt.Errorf("VECTOR_STORE_ID is not set")
	}

	clientCfg := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		clientCfg.BaseURL = cfg.OpenAIBaseURL
	}
	client := openai.NewClientWithConfig(clientCfg)

	store, err := client.RetrieveVectorStore(ctx, cfg.VectorStoreID)
	if err != nil {
		return Summary{}, fmt.Errorf("retrieve vector store: %w", err)
	}

	files, err := client.ListVectorStoreFiles(ctx, cfg.VectorStoreID, openai.Pagination{})
	if err != nil {
		return Summary{}, fmt.Errorf("list vector store files: %w", err)
	}

	fileIDs := make([]string, 0, len(files.VectorStoreFiles))
	for _, file := range files.VectorStoreFiles {
		fileIDs = append(fileIDs, file.ID)
	}

	return Summary{
		ID:             store.ID,
		Name:           store.Name,
		Status:         store.Status,
		FilesCompleted: store.FileCounts.Completed,
		FilesTotal:     store.FileCounts.Total,
		FileIDs:        fileIDs,
	}, nil
}
