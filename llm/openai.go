package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const responsesPath = "/responses"

// IncludeSearchResults asks the API to attach the search tool's raw result
// payload to the response so citations can be extracted downstream.
const IncludeSearchResults = "file_search_call.results"

type httpClient struct {
	opts   Options
	client *http.Client
}

// NewHTTPClient returns a Client backed by the hosted generation API. The
// underlying http.Client keeps its default timeout behavior; no local
// timeout is layered on top.
func NewHTTPClient(opts Options) Client {
	return &httpClient{
		opts:   opts,
		client: &http.Client{},
	}
}

func (c *httpClient) Generate(ctx context.Context, input string) (*Response, error) {
	reqBody := Request{
		Model: c.opts.Model,
		Input: input,
		Tools: []Tool{{
			Type:           ToolTypeFileSearch,
			VectorStoreIDs: []string{c.opts.VectorStoreID},
			MaxNumResults:  c.opts.MaxResults,
		}},
		Include: []string{IncludeSearchResults},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal generation request: %w", err)
	}

	url := strings.TrimRight(c.opts.BaseURL, "/") + responsesPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build generation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.opts.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call generation api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("generation api returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode generation response: %w", err)
	}

	return &out, nil
}
