package llm

import (
	"context"

	"github.com/fabfab/docchat/config"
)

// Client issues a single generation call with document search enabled and
// returns the raw tagged response for downstream normalization.
type Client interface {
	Generate(ctx context.Context, input string) (*Response, error)
}

// Options collects everything needed to talk to the generation API.
type Options struct {
	APIKey        string
	BaseURL       string
	Model         string
	VectorStoreID string
	MaxResults    int
}

func NewClient(cfg config.Config) Client {
	return NewHTTPClient(Options{
		APIKey:        cfg.OpenAIAPIKey,
		BaseURL:       cfg.OpenAIBaseURL,
		Model:         cfg.Model,
		VectorStoreID: cfg.VectorStoreID,
		MaxResults:    cfg.MaxResults,
	})
}
