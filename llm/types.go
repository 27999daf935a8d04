package llm

// Tags used by the generation API's polymorphic response. Anything outside
// these sets is skipped during normalization, never treated as an error.
const (
	ItemTypeMessage        = "message"
	ItemTypeFileSearchCall = "file_search_call"

	ContentTypeOutputText = "output_text"
	ContentTypeRefusal    = "refusal"

	AnnotationTypeFileCitation = "file_citation"

	ToolTypeFileSearch = "file_search"
)

// Request is the body of a single generation call: free-text input plus a
// file-search tool declaration bound to a fixed document collection.
type Request struct {
	Model   string   `json:"model"`
	Input   string   `json:"input"`
	Tools   []Tool   `json:"tools,omitempty"`
	Include []string `json:"include,omitempty"`
}

type Tool struct {
	Type           string   `json:"type"`
	VectorStoreIDs []string `json:"vector_store_ids,omitempty"`
	MaxNumResults  int      `json:"max_num_results,omitempty"`
}

// Response carries the ordered sequence of heterogeneous output items the
// generation API returns for one call.
type Response struct {
	ID     string       `json:"id"`
	Model  string       `json:"model"`
	Output []OutputItem `json:"output"`
}

// OutputItem is one tagged variant in the output sequence. Only items
// tagged as a conversational message carry content blocks; other variants
// (tool calls and any unrecognized tag) leave Content empty.
type OutputItem struct {
	Type    string         `json:"type"`
	ID      string         `json:"id,omitempty"`
	Role    string         `json:"role,omitempty"`
	Status  string         `json:"status,omitempty"`
	Content []ContentBlock `json:"content,omitempty"`
}

// ContentBlock is one tagged block inside a message item. Text blocks may
// carry an annotations sequence.
type ContentBlock struct {
	Type        string       `json:"type"`
	Text        string       `json:"text,omitempty"`
	Annotations []Annotation `json:"annotations,omitempty"`
}

// Annotation is one tagged annotation on a text block. Index is a pointer
// so an absent field is distinguishable from a literal zero.
type Annotation struct {
	Type     string `json:"type"`
	Index    *int   `json:"index,omitempty"`
	FileID   string `json:"file_id,omitempty"`
	Filename string `json:"filename,omitempty"`
}
