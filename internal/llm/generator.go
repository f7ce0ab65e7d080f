package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kavinduUdhara/extract-document-data-automation/internal/common"
)

// Generator turns one (document text, schema) pair into a sanitized
// table. Every schema gets the full text and decides for itself what is
// relevant; one backend call per schema, no retries. Persistence is the
// coordinator's job, not the Generator's.
type Generator struct {
	backend  TextGenerator
	maxChars int
	logger   *slog.Logger
}

func NewGenerator(backend TextGenerator, maxChars int, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{backend: backend, maxChars: maxChars, logger: logger}
}

// Generate invokes the backend once and sanitizes the reply. A reply
// with no usable tabular content yields Empty=true; a failed call yields
// an error wrapping ErrGenerationFailed with the cause preserved.
func (g *Generator) Generate(ctx context.Context, req GenerateRequest) (TableResult, error) {
	start := time.Now()
	prompt := BuildTablePrompt(req, g.maxChars)

	g.logger.Debug("llm.generate.start",
		"schema", req.SchemaName,
		"text_len", len(req.Text),
		"prompt_len", len(prompt),
	)

	raw, err := g.backend.GenerateText(ctx, prompt)
	if err != nil {
		g.logger.Error("llm.generate.backend_error",
			"schema", req.SchemaName,
			"error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return TableResult{}, fmt.Errorf("%w: %w", common.ErrGenerationFailed, err)
	}

	content, ok := SanitizeTable(raw)
	if !ok {
		g.logger.Warn("llm.generate.empty",
			"schema", req.SchemaName,
			"raw_len", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return TableResult{RawReply: raw, Empty: true}, nil
	}

	g.logger.Info("llm.generate.ok",
		"schema", req.SchemaName,
		"content_len", len(content),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return TableResult{RawReply: raw, Content: content}, nil
}
