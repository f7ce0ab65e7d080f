package pipeline

import (
	"context"

	"github.com/kavinduUdhara/extract-document-data-automation/internal/llm"
)

// TextCache is the cache-lookup side of text resolution.
type TextCache interface {
	Lookup(stem string) (string, bool)
}

// TextExtractor is the backend side of text resolution.
type TextExtractor interface {
	Available() bool
	Extract(ctx context.Context, path string) (string, error)
}

// TableGenerator produces one sanitized table per schema request.
type TableGenerator interface {
	Generate(ctx context.Context, req llm.GenerateRequest) (llm.TableResult, error)
}
