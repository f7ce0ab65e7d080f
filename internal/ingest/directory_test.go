package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
}

func TestListDocuments_FiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "offer.pdf")
	touch(t, dir, "sheet.xlsx")
	touch(t, dir, "notes.txt")
	touch(t, dir, "README.md")

	docs, err := NewEnumerator(nil).ListDocuments(dir)
	require.NoError(t, err)
	require.Len(t, docs, 2)

	names := []string{docs[0].Name, docs[1].Name}
	assert.Contains(t, names, "offer.pdf")
	assert.Contains(t, names, "sheet.xlsx")
}

func TestListDocuments_PopulatesStemAndPath(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "resort_offer.pdf")

	docs, err := NewEnumerator(nil).ListDocuments(dir)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "resort_offer", docs[0].Stem)
	assert.Equal(t, filepath.Join(dir, "resort_offer.pdf"), docs[0].Path)
}

func TestListDocuments_EmptyDirIsNotAnError(t *testing.T) {
	docs, err := NewEnumerator(nil).ListDocuments(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestListDocuments_MissingDirFails(t *testing.T) {
	_, err := NewEnumerator(nil).ListDocuments(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}

func TestListDocuments_SkipsHidden(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, ".hidden.pdf")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".cache"), 0o755))
	touch(t, filepath.Join(dir, ".cache"), "stashed.pdf")
	touch(t, dir, "visible.pdf")

	docs, err := NewEnumerator(nil).ListDocuments(dir)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "visible.pdf", docs[0].Name)
}

func TestListDocuments_WalksSubdirectories(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "batch-2")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	touch(t, sub, "nested.docx")

	docs, err := NewEnumerator(nil).ListDocuments(dir)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "nested", docs[0].Stem)
}
