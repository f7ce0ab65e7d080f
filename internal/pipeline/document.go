package pipeline

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kavinduUdhara/extract-document-data-automation/constants"
	"github.com/kavinduUdhara/extract-document-data-automation/internal/entity"
	"github.com/kavinduUdhara/extract-document-data-automation/internal/llm"
	"github.com/kavinduUdhara/extract-document-data-automation/internal/schema"
)

// DocumentProcessor coordinates one document end to end: resolve text via
// cache-then-backend fallback, then drive the generator across every
// registry schema and persist each result. It always emits exactly one
// DocumentOutcome; failures become outcome records, never panics or
// aborted siblings.
type DocumentProcessor struct {
	cache     TextCache
	extractor TextExtractor
	generator TableGenerator
	registry  *schema.Registry
	store     ArtifactStore
	workers   int
	logger    *slog.Logger
}

func NewDocumentProcessor(
	cache TextCache,
	extractor TextExtractor,
	generator TableGenerator,
	registry *schema.Registry,
	store ArtifactStore,
	workers int,
	logger *slog.Logger,
) *DocumentProcessor {
	if logger == nil {
		logger = slog.Default()
	}
	if workers < 1 {
		workers = 1
	}
	return &DocumentProcessor{
		cache:     cache,
		extractor: extractor,
		generator: generator,
		registry:  registry,
		store:     store,
		workers:   workers,
		logger:    logger,
	}
}

// Process runs the per-document state machine. When neither cache nor
// backend yields text the outcome records extraction failure and no
// schema is attempted; otherwise every schema gets exactly one attempt
// regardless of how its siblings fare.
func (p *DocumentProcessor) Process(ctx context.Context, doc entity.SourceDocument) entity.DocumentOutcome {
	outcome := entity.DocumentOutcome{
		Document:  doc,
		StartedAt: time.Now(),
	}

	text, status := p.resolveText(ctx, doc)
	outcome.Extraction = status
	if status == constants.ExtractionFailed {
		outcome.FinishedAt = time.Now()
		p.logger.Error("pipeline.document.extraction_failed", "doc", doc.Name)
		return outcome
	}

	p.logger.Info("pipeline.document.text_resolved",
		"doc", doc.Name,
		"source", status,
		"text_len", len(text.Content),
	)

	outcome.Schemas = p.generateAll(ctx, doc, text)
	outcome.FinishedAt = time.Now()

	p.logger.Info("pipeline.document.done",
		"doc", doc.Name,
		"schemas", len(outcome.Schemas),
		"generated", outcome.GeneratedCount(),
		"elapsed_ms", outcome.FinishedAt.Sub(outcome.StartedAt).Milliseconds(),
	)
	return outcome
}

// resolveText prefers the cache; the extraction backend is only invoked
// on a miss. An empty text from either source counts as a miss/failure.
func (p *DocumentProcessor) resolveText(ctx context.Context, doc entity.SourceDocument) (entity.ExtractedText, constants.ExtractionStatus) {
	if p.cache != nil {
		if text, ok := p.cache.Lookup(doc.Stem); ok {
			return entity.ExtractedText{Content: text, Source: "cache"}, constants.ExtractionCached
		}
	}
	if p.extractor == nil || !p.extractor.Available() {
		p.logger.Warn("pipeline.document.extractor_unavailable", "doc", doc.Name)
		return entity.ExtractedText{}, constants.ExtractionFailed
	}
	text, err := p.extractor.Extract(ctx, doc.Path)
	if err != nil {
		p.logger.Error("pipeline.document.extract_error", "doc", doc.Name, "error", err)
		return entity.ExtractedText{}, constants.ExtractionFailed
	}
	return entity.ExtractedText{Content: text, Source: "backend"}, constants.ExtractionFresh
}

// generateAll attempts every schema in registry order. Attempts run with
// bounded parallelism; results keep registry order via their slot index.
func (p *DocumentProcessor) generateAll(ctx context.Context, doc entity.SourceDocument, text entity.ExtractedText) []entity.SchemaOutcome {
	schemas := p.registry.Schemas()
	results := make([]entity.SchemaOutcome, len(schemas))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i, sc := range schemas {
		g.Go(func() error {
			results[i] = p.generateOne(gctx, doc, sc, text)
			return nil // sibling schemas never abort each other
		})
	}
	_ = g.Wait()
	return results
}

func (p *DocumentProcessor) generateOne(ctx context.Context, doc entity.SourceDocument, sc schema.ArtifactSchema, text entity.ExtractedText) entity.SchemaOutcome {
	out := entity.SchemaOutcome{SchemaName: sc.Name}

	res, err := p.generator.Generate(ctx, llm.GenerateRequest{
		SchemaName:   sc.Name,
		HeaderLine:   sc.HeaderLine(),
		Instructions: sc.Instructions,
		Text:         text.Content,
	})
	if err != nil {
		out.Status = constants.ArtifactError
		out.Error = err.Error()
		return out
	}
	if res.Empty {
		out.Status = constants.ArtifactEmpty
		return out
	}

	artifact := entity.NewGeneratedArtifact(sc.Name, res.RawReply, res.Content)
	path, err := p.store.Save(doc.Stem, sc.Name, artifact.Content)
	if err != nil {
		p.logger.Error("pipeline.document.persist_failed",
			"doc", doc.Name, "schema", sc.Name, "error", err)
		out.Status = constants.ArtifactError
		out.Error = err.Error()
		return out
	}

	out.Status = constants.ArtifactGenerated
	out.RowCount = artifact.RowCount
	out.ByteSize = artifact.ByteSize
	out.OutputPath = path
	return out
}
