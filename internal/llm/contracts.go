package llm

import "context"

// TextGenerator is the text-generation backend boundary: one prompt in,
// one free-form reply out. Implementations make exactly one attempt.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// GenerateRequest carries everything the Generator needs for one
// (document text, schema) pair.
type GenerateRequest struct {
	SchemaName   string
	HeaderLine   string // expected CSV header row, verbatim
	Instructions string // schema directive, passed through untouched
	Text         string // full extracted text; Generator applies the ceiling
}

// TableResult is the tri-state outcome of one generation attempt.
type TableResult struct {
	RawReply string
	Content  string // sanitized tabular text; empty when Empty is true
	Empty    bool   // backend replied but produced no usable table
}
