package ingest

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/kavinduUdhara/extract-document-data-automation/constants"
	"github.com/kavinduUdhara/extract-document-data-automation/internal/entity"
)

// DirStats summarizes one enumeration pass.
type DirStats struct {
	Scanned uint32
	Matched uint32
	Skipped uint32
}

// Enumerator walks an input directory and turns every file on the
// extension allow-list into a SourceDocument. Non-matching and hidden
// files are skipped, not errored.
type Enumerator struct {
	logger *slog.Logger
}

func NewEnumerator(logger *slog.Logger) *Enumerator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Enumerator{logger: logger}
}

// ListDocuments enumerates root in walk order. A missing root is a
// configuration error and fails the whole run before any document is
// touched; an existing-but-empty root yields an empty slice.
func (e *Enumerator) ListDocuments(root string) ([]entity.SourceDocument, error) {
	docs, _, err := e.listWithStats(root)
	return docs, err
}

func (e *Enumerator) listWithStats(root string) ([]entity.SourceDocument, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, fmt.Errorf("input directory is required")
	}
	if st, err := os.Stat(root); err != nil {
		return nil, DirStats{}, fmt.Errorf("input directory %s: %w", root, err)
	} else if !st.IsDir() {
		return nil, DirStats{}, fmt.Errorf("input path %s is not a directory", root)
	}

	var docs []entity.SourceDocument
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			e.logger.Warn("ingest.walk_error", "path", path, "error", walkErr)
			stats.Skipped++
			return nil // continue walking
		}
		if isHidden(path) && path != root {
			if d.IsDir() {
				return filepath.SkipDir
			}
			stats.Skipped++
			return nil
		}
		if d.IsDir() {
			return nil
		}
		stats.Scanned++
		if !constants.IsSupportedExt(filepath.Ext(path)) {
			stats.Skipped++
			return nil
		}
		stats.Matched++
		docs = append(docs, entity.SourceDocument{
			Name: filepath.Base(path),
			Stem: constants.DocumentStem(path),
			Path: path,
		})
		return nil
	})
	if err != nil {
		return docs, stats, fmt.Errorf("walk: %w", err)
	}

	e.logger.Info("ingest.enumerated",
		"root", root,
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"skipped", stats.Skipped,
	)
	return docs, stats, nil
}

func isHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".") && base != "." && base != ".."
}
