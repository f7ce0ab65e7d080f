package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCacheFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestCacheReader_HitOnMarkdownField(t *testing.T) {
	dir := t.TempDir()
	writeCacheFile(t, dir, "offer_a.json", `{"markdown": "# Resort A"}`)

	text, ok := NewCacheReader(dir, nil).Lookup("offer_a")
	require.True(t, ok)
	assert.Equal(t, "# Resort A", text)
}

func TestCacheReader_TextFieldFallback(t *testing.T) {
	dir := t.TempDir()
	writeCacheFile(t, dir, "offer_b.json", `{"text": "plain text body"}`)

	text, ok := NewCacheReader(dir, nil).Lookup("offer_b")
	require.True(t, ok)
	assert.Equal(t, "plain text body", text)
}

func TestCacheReader_EmptyTextIsAMiss(t *testing.T) {
	dir := t.TempDir()
	writeCacheFile(t, dir, "offer_c.json", `{"markdown": "   "}`)

	_, ok := NewCacheReader(dir, nil).Lookup("offer_c")
	assert.False(t, ok)
}

func TestCacheReader_StemAssociation(t *testing.T) {
	dir := t.TempDir()
	writeCacheFile(t, dir, "other_doc.json", `{"markdown": "wrong doc"}`)

	_, ok := NewCacheReader(dir, nil).Lookup("offer_d")
	assert.False(t, ok)
}

func TestCacheReader_LexicalOrderDeterministic(t *testing.T) {
	dir := t.TempDir()
	writeCacheFile(t, dir, "offer_e_v2.json", `{"markdown": "second"}`)
	writeCacheFile(t, dir, "offer_e_v1.json", `{"markdown": "first"}`)

	for i := 0; i < 5; i++ {
		text, ok := NewCacheReader(dir, nil).Lookup("offer_e")
		require.True(t, ok)
		assert.Equal(t, "first", text)
	}
}

func TestCacheReader_SkipsCorruptRecords(t *testing.T) {
	dir := t.TempDir()
	writeCacheFile(t, dir, "offer_f_a.json", `not json at all`)
	writeCacheFile(t, dir, "offer_f_b.json", `{"markdown": "good record"}`)

	text, ok := NewCacheReader(dir, nil).Lookup("offer_f")
	require.True(t, ok)
	assert.Equal(t, "good record", text)
}

func TestCacheReader_MissingDirIsAMiss(t *testing.T) {
	_, ok := NewCacheReader(filepath.Join(t.TempDir(), "absent"), nil).Lookup("anything")
	assert.False(t, ok)
}

func TestCacheReader_IgnoresNonJSONFiles(t *testing.T) {
	dir := t.TempDir()
	writeCacheFile(t, dir, "offer_g.txt", `{"markdown": "not a json record"}`)

	_, ok := NewCacheReader(dir, nil).Lookup("offer_g")
	assert.False(t, ok)
}
