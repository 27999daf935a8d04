package gateway

import (
	"context"
	"errors"
	"log"

	"github.com/fabfab/docchat/llm"
)

// FallbackContent is substituted when the model emits no usable text, for
// example tool-only output. This is a soft miss, not an error.
const FallbackContent = "I couldn't generate a response."

// ErrRequestFailed is the only error SubmitQuery returns. Root causes are
// logged server-side and never exposed to the caller.
var ErrRequestFailed = errors.New("Failed to process request")

// Citation points from a position in the generated text to a source
// document filename, as reported by the generation API's search tool.
type Citation struct {
	Index    int    `json:"index"`
	Filename string `json:"filename"`
}

// Result is the flat normalization of one generation call.
type Result struct {
	Content   string     `json:"content"`
	Citations []Citation `json:"citations"`
}

type Service struct {
	llm    llm.Client
	logger *log.Logger
}

func NewService(client llm.Client, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}

	return &Service{llm: client, logger: logger}
}

// SubmitQuery issues exactly one generation call and normalizes the tagged
// response. No retry, no backoff. Empty input is a caller-side concern and
// is passed through untouched.
func (s *Service) SubmitQuery(ctx context.Context, message string) (Result, error) {
	if s.llm == nil {
		s.logger.Printf("query failed: llm client is not configured")
		return Result{}, ErrRequestFailed
	}

	resp, err := s.llm.Generate(ctx, message)
	if err != nil {
		s.logger.Printf("query failed: %v", err)
		return Result{}, ErrRequestFailed
	}

	return normalize(resp), nil
}

// normalize locates the conversational message item and its output-text
// block, falling back to FallbackContent when either is absent. Unknown
// item, block, and annotation tags are skipped.
func normalize(resp *llm.Response) Result {
	if resp == nil {
		return Result{Content: FallbackContent, Citations: []Citation{}}
	}

	for _, item := range resp.Output {
		if item.Type != llm.ItemTypeMessage {
			continue
		}
		for _, block := range item.Content {
			if block.Type != llm.ContentTypeOutputText {
				continue
			}
			return Result{
				Content:   block.Text,
				Citations: extractCitations(block.Annotations),
			}
		}
	}

	return Result{Content: FallbackContent, Citations: []Citation{}}
}

// extractCitations keeps file-citation annotations that carry both an index
// and a filename, in source order. Partial annotations are dropped.
func extractCitations(annotations []llm.Annotation) []Citation {
	citations := make([]Citation, 0, len(annotations))
	for _, ann := range annotations {
		if ann.Type != llm.AnnotationTypeFileCitation {
			continue
		}
		if ann.Index == nil || ann.Filename == "" {
			continue
		}
		citations = append(citations, Citation{
			Index:    *ann.Index,
			Filename: ann.Filename,
		})
	}
	return citations
}
