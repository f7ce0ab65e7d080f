package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/kavinduUdhara/extract-document-data-automation/internal/entity"
)

// DocumentEnumerator lists the source documents for a run.
type DocumentEnumerator interface {
	ListDocuments(root string) ([]entity.SourceDocument, error)
}

// RunRecorder persists the final report to the run-history store.
type RunRecorder interface {
	SaveReport(ctx context.Context, report *entity.BatchReport) error
}

// BatchProcessor enumerates all input documents and drives one
// DocumentProcessor run per document. Documents share no mutable state,
// so they may be processed in parallel; the report keeps enumeration
// order regardless.
type BatchProcessor struct {
	enumerator DocumentEnumerator
	processor  *DocumentProcessor
	recorder   RunRecorder // optional
	workers    int
	logger     *slog.Logger
}

func NewBatchProcessor(enumerator DocumentEnumerator, processor *DocumentProcessor, recorder RunRecorder, workers int, logger *slog.Logger) *BatchProcessor {
	if logger == nil {
		logger = slog.Default()
	}
	if workers < 1 {
		workers = 1
	}
	return &BatchProcessor{
		enumerator: enumerator,
		processor:  processor,
		recorder:   recorder,
		workers:    workers,
		logger:     logger,
	}
}

// Run processes every enumerated document and aggregates the report.
// Zero documents is a valid empty run. Only enumeration itself can fail
// the batch; per-document failures land in their outcome records.
func (b *BatchProcessor) Run(ctx context.Context, inputDir string) (*entity.BatchReport, error) {
	report := &entity.BatchReport{
		RunID:     uuid.New().String(),
		StartedAt: time.Now(),
	}

	docs, err := b.enumerator.ListDocuments(inputDir)
	if err != nil {
		return nil, err
	}

	b.logger.Info("pipeline.batch.start",
		"run_id", report.RunID,
		"input_dir", inputDir,
		"documents", len(docs),
	)

	report.Outcomes = make([]entity.DocumentOutcome, len(docs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)
	for i, doc := range docs {
		g.Go(func() error {
			report.Outcomes[i] = b.processor.Process(gctx, doc)
			return nil
		})
	}
	_ = g.Wait()
	report.FinishedAt = time.Now()

	if b.recorder != nil {
		if err := b.recorder.SaveReport(ctx, report); err != nil {
			b.logger.Error("pipeline.batch.record_failed", "run_id", report.RunID, "error", err)
		}
	}

	b.logger.Info("pipeline.batch.done",
		"run_id", report.RunID,
		"attempted", report.Attempted(),
		"succeeded", report.Succeeded(),
		"failed", report.Failed(),
		"elapsed_ms", report.FinishedAt.Sub(report.StartedAt).Milliseconds(),
	)
	return report, nil
}
