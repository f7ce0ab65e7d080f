package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/kavinduUdhara/extract-document-data-automation/internal/common"
	"github.com/kavinduUdhara/extract-document-data-automation/internal/extract"
	"github.com/kavinduUdhara/extract-document-data-automation/internal/extract/landingai"
)

// runparse extracts one document and prints its text representation.
// Useful for seeding the extraction cache and inspecting backend output.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		logger.Error("usage: runparse <file>")
		os.Exit(2)
	}
	path := os.Args[1]

	cfg := common.LoadConfig()
	if cfg.Extraction.APIKey == "" {
		logger.Error("VISION_AGENT_API_KEY env var is required")
		os.Exit(2)
	}

	parser := landingai.NewClient(landingai.Config{
		APIKey:  cfg.Extraction.APIKey,
		BaseURL: cfg.Extraction.BaseURL,
		Timeout: cfg.Extraction.Timeout,
	}, logger)
	adapter := extract.NewAdapter(parser, cfg.Paths.TempDir, logger)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Extraction.Timeout)
	defer cancel()

	text, err := adapter.Extract(ctx, path)
	if err != nil {
		logger.Error("extraction failed", "path", path, "error", err)
		os.Exit(1)
	}

	fmt.Println(text)
}
