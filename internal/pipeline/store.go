package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kavinduUdhara/extract-document-data-automation/internal/common"
)

// ArtifactStore persists one sanitized table per (document, schema).
type ArtifactStore interface {
	// Save writes content and returns the path it was stored under.
	Save(stem, schemaName, content string) (string, error)
}

// FSStore lays artifacts out as <root>/<document-stem>/<SchemaName>.csv.
// Per-document subdirectories never overlap, so concurrent documents
// need no locking. A schema with no output simply has no file.
type FSStore struct {
	root string
}

func NewFSStore(root string) *FSStore {
	return &FSStore{root: root}
}

func (s *FSStore) Save(stem, schemaName, content string) (string, error) {
	dir := filepath.Join(s.root, stem)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrPersistenceFailed, err)
	}
	path := filepath.Join(dir, schemaName+".csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrPersistenceFailed, err)
	}
	return path, nil
}
