package extract

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// CacheReader looks up previously stored extraction records so a document
// that was already parsed never hits the backend again.
type CacheReader struct {
	dir    string
	logger *slog.Logger
}

func NewCacheReader(dir string, logger *slog.Logger) *CacheReader {
	if logger == nil {
		logger = slog.Default()
	}
	return &CacheReader{dir: dir, logger: logger}
}

// cacheRecord is the stored extraction shape. Older records use "text"
// where newer ones use "markdown"; both are accepted.
type cacheRecord struct {
	Markdown string `json:"markdown"`
	Text     string `json:"text"`
}

func (r cacheRecord) content() string {
	if strings.TrimSpace(r.Markdown) != "" {
		return r.Markdown
	}
	return r.Text
}

// Lookup returns the cached text for a document stem, if a usable record
// exists. Candidates are JSON records whose filename contains the stem,
// scanned in lexical order so the choice is deterministic for a given
// directory snapshot. A record with an empty text field is skipped.
// No side effects; a missing cache directory is a miss, not an error.
func (c *CacheReader) Lookup(stem string) (string, bool) {
	if c.dir == "" {
		return "", false
	}
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		if !os.IsNotExist(err) {
			c.logger.Warn("extract.cache.read_dir_failed", "dir", c.dir, "error", err)
		}
		return "", false
	}

	var candidates []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".json") {
			continue
		}
		if strings.Contains(e.Name(), stem) {
			candidates = append(candidates, e.Name())
		}
	}
	sort.Strings(candidates)

	for _, name := range candidates {
		path := filepath.Join(c.dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			c.logger.Warn("extract.cache.read_failed", "path", path, "error", err)
			continue
		}
		var rec cacheRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			c.logger.Warn("extract.cache.decode_failed", "path", path, "error", err)
			continue
		}
		if text := rec.content(); strings.TrimSpace(text) != "" {
			c.logger.Info("extract.cache.hit", "stem", stem, "record", name, "text_len", len(text))
			return text, true
		}
	}
	return "", false
}
