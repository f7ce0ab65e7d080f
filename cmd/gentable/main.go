package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/kavinduUdhara/extract-document-data-automation/internal/common"
	"github.com/kavinduUdhara/extract-document-data-automation/internal/llm"
	"github.com/kavinduUdhara/extract-document-data-automation/internal/llm/gemini"
	"github.com/kavinduUdhara/extract-document-data-automation/internal/schema"
)

// gentable runs one schema against a text file and prints the sanitized
// table, for prompt debugging without a full batch run.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if len(os.Args) < 3 {
		logger.Error("usage: gentable <schema_name> <text_file>")
		os.Exit(2)
	}
	schemaName, textPath := os.Args[1], os.Args[2]

	cfg := common.LoadConfig()
	if cfg.Generation.APIKey == "" {
		logger.Error("GOOGLE_AI_STUDIO_API_KEY env var is required")
		os.Exit(2)
	}

	reg := schema.Default()
	sc, ok := reg.Lookup(schemaName)
	if !ok {
		names := make([]string, 0, reg.Len())
		for _, s := range reg.Schemas() {
			names = append(names, s.Name)
		}
		logger.Error("unknown schema", "name", schemaName, "known", names)
		os.Exit(2)
	}

	text, err := os.ReadFile(textPath)
	if err != nil {
		logger.Error("read text file", "path", textPath, "error", err)
		os.Exit(1)
	}

	client := gemini.NewClient(gemini.Config{
		APIKey:      cfg.Generation.APIKey,
		BaseURL:     cfg.Generation.BaseURL,
		Model:       cfg.Generation.Model,
		Temperature: cfg.Generation.Temperature,
		Timeout:     cfg.Generation.Timeout,
	}, logger)
	generator := llm.NewGenerator(client, cfg.Generation.MaxPromptChars, logger)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Generation.Timeout)
	defer cancel()

	res, err := generator.Generate(ctx, llm.GenerateRequest{
		SchemaName:   sc.Name,
		HeaderLine:   sc.HeaderLine(),
		Instructions: sc.Instructions,
		Text:         string(text),
	})
	if err != nil {
		logger.Error("generation failed", "schema", sc.Name, "error", err)
		os.Exit(1)
	}
	if res.Empty {
		logger.Warn("no usable tabular content", "schema", sc.Name)
		os.Exit(0)
	}

	fmt.Println(res.Content)
}
