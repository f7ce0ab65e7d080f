package extract

import "context"

// DocumentParser is the document-to-text backend boundary: one file in,
// a text representation out. Implementations make exactly one attempt.
type DocumentParser interface {
	Parse(ctx context.Context, path string) (ParseResult, error)
}

// ParseResult carries the backend's text field plus optional structured
// chunks. Only Markdown is consumed by the pipeline; Chunks are surfaced
// for debugging tools.
type ParseResult struct {
	Markdown string
	Chunks   []Chunk
}

// Chunk is one structured region reported by the backend.
type Chunk struct {
	Type string `json:"type"`
	Text string `json:"text"`
	Page int    `json:"page"`
}
