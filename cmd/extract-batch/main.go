package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kavinduUdhara/extract-document-data-automation/internal/common"
	"github.com/kavinduUdhara/extract-document-data-automation/internal/export"
	"github.com/kavinduUdhara/extract-document-data-automation/internal/extract"
	"github.com/kavinduUdhara/extract-document-data-automation/internal/extract/landingai"
	"github.com/kavinduUdhara/extract-document-data-automation/internal/ingest"
	"github.com/kavinduUdhara/extract-document-data-automation/internal/llm"
	"github.com/kavinduUdhara/extract-document-data-automation/internal/llm/gemini"
	"github.com/kavinduUdhara/extract-document-data-automation/internal/pipeline"
	repo "github.com/kavinduUdhara/extract-document-data-automation/internal/repository"
	"github.com/kavinduUdhara/extract-document-data-automation/internal/schema"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	// Parse CLI flags
	var (
		input    = flag.String("input", "", "directory of source documents (defaults to INPUT_DIR)")
		output   = flag.String("output", "", "directory for generated CSVs (defaults to OUTPUT_DIR)")
		cacheDir = flag.String("cache", "", "directory of prior extraction records (defaults to EXTRACTION_CACHE_DIR)")
		registry = flag.String("registry", "", "JSON file overriding the built-in schema catalog (optional)")
		report   = flag.String("report", "", "XLSX report output path (optional, defaults next to output dir)")
		inmem    = flag.Bool("inmem", false, "use an in-memory SQLite run store")
	)
	flag.Parse()

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	cfg := common.LoadConfig()
	if *input != "" {
		cfg.Paths.InputDir = *input
	}
	if *output != "" {
		cfg.Paths.OutputDir = *output
	}
	if *cacheDir != "" {
		cfg.Paths.CacheDir = *cacheDir
	}
	if err := cfg.Validate(); err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}
	if *report == "" {
		*report = filepath.Join(filepath.Dir(cfg.Paths.OutputDir), "batch-report.xlsx")
	}

	// Schema registry
	reg := schema.Default()
	if *registry != "" {
		loaded, err := schema.LoadFile(*registry)
		if err != nil {
			logger.Error("failed to load schema registry", "path", *registry, "error", err)
			os.Exit(1)
		}
		reg = loaded
		logger.Info("schema registry loaded from file", "path", *registry, "schemas", reg.Len())
	}

	// Run store
	dsn := cfg.Database.DSN
	if *inmem {
		dsn = ":memory:"
	}
	db, pool, dialect, err := repo.Open(ctx, repo.Config{DSN: dsn, DialTimeout: cfg.Database.DialTimeout}, logger)
	if err != nil {
		logger.Error("failed to open run store", "error", err)
		os.Exit(1)
	}
	defer repo.Close(db, pool, logger)

	runsRepo := repo.NewRunRepository(db, dialect, logger)
	if err := runsRepo.Migrate(ctx); err != nil {
		logger.Error("failed to migrate run store", "error", err)
		os.Exit(1)
	}

	// Extraction backend (graceful if missing: cache-only runs still work)
	var parser extract.DocumentParser
	if cfg.Extraction.APIKey != "" {
		parser = landingai.NewClient(landingai.Config{
			APIKey:  cfg.Extraction.APIKey,
			BaseURL: cfg.Extraction.BaseURL,
			Timeout: cfg.Extraction.Timeout,
		}, logger)
		logger.Info("extraction backend initialized", "base_url", cfg.Extraction.BaseURL)
	} else {
		logger.Warn("VISION_AGENT_API_KEY not configured, extraction falls back to cache only")
	}

	// Generation backend
	genClient := gemini.NewClient(gemini.Config{
		APIKey:      cfg.Generation.APIKey,
		BaseURL:     cfg.Generation.BaseURL,
		Model:       cfg.Generation.Model,
		Temperature: cfg.Generation.Temperature,
		Timeout:     cfg.Generation.Timeout,
	}, logger)
	logger.Info("generation backend initialized", "model", cfg.Generation.Model)

	// Wire the pipeline
	cache := extract.NewCacheReader(cfg.Paths.CacheDir, logger)
	adapter := extract.NewAdapter(parser, cfg.Paths.TempDir, logger)
	generator := llm.NewGenerator(genClient, cfg.Generation.MaxPromptChars, logger)
	store := pipeline.NewFSStore(cfg.Paths.OutputDir)
	docProc := pipeline.NewDocumentProcessor(cache, adapter, generator, reg, store, cfg.Generation.MaxConcurrent, logger)
	enumerator := ingest.NewEnumerator(logger)
	batch := pipeline.NewBatchProcessor(enumerator, docProc, runsRepo, cfg.Generation.DocWorkers, logger)

	rep, err := batch.Run(ctx, cfg.Paths.InputDir)
	if err != nil {
		logger.Error("batch run failed", "error", err)
		os.Exit(1)
	}

	// Export XLSX report
	exportService := export.NewService(logger)
	xlsxBytes, err := exportService.ExportReportXLSX(rep)
	if err != nil {
		logger.Error("failed to export report", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*report, xlsxBytes, 0644); err != nil {
		logger.Error("failed to write report file", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Batch extraction complete!\n")
	fmt.Printf("- Documents attempted: %d\n", rep.Attempted())
	fmt.Printf("- With artifacts: %d\n", rep.Succeeded())
	fmt.Printf("- Fully failed: %d\n", rep.Failed())
	fmt.Printf("- Output: %s\n", cfg.Paths.OutputDir)
	fmt.Printf("- Report: %s\n", *report)
}
