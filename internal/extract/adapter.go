package extract

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kavinduUdhara/extract-document-data-automation/internal/common"
)

// Adapter invokes the document-parse backend on a single file. The file
// is first copied into an adapter-controlled temp location so concurrent
// runs and permission quirks on the original path cannot interfere; the
// copy is removed on every exit path.
type Adapter struct {
	parser  DocumentParser
	tempDir string
	logger  *slog.Logger
}

func NewAdapter(parser DocumentParser, tempDir string, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	return &Adapter{parser: parser, tempDir: tempDir, logger: logger}
}

// Available reports whether the backend can be invoked at all. A nil
// parser models a backend that is not configured or not reachable.
func (a *Adapter) Available() bool {
	return a.parser != nil
}

// Extract runs the backend once against an isolated copy of path and
// returns its text field. Unavailability short-circuits before any file
// copy; a backend call that yields no usable text is ErrExtractionFailed
// with the cause preserved.
func (a *Adapter) Extract(ctx context.Context, path string) (string, error) {
	if !a.Available() {
		return "", common.ErrExtractionUnavailable
	}

	start := time.Now()
	tmp, cleanup, err := a.stageCopy(path)
	if err != nil {
		return "", common.NewAppError("EXTRACT_STAGE", "stage temp copy", err)
	}
	defer cleanup()

	res, err := a.parser.Parse(ctx, tmp)
	if err != nil {
		a.logger.Error("extract.adapter.parse_failed",
			"path", path,
			"error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", fmt.Errorf("%w: %w", common.ErrExtractionFailed, err)
	}
	if strings.TrimSpace(res.Markdown) == "" {
		a.logger.Warn("extract.adapter.empty_text", "path", path)
		return "", common.ErrExtractionFailed
	}

	a.logger.Info("extract.adapter.ok",
		"path", path,
		"text_len", len(res.Markdown),
		"chunks", len(res.Chunks),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return res.Markdown, nil
}

// stageCopy copies src into the temp dir under a unique name and returns
// the copy's path with a cleanup func that always removes it.
func (a *Adapter) stageCopy(src string) (string, func(), error) {
	if err := os.MkdirAll(a.tempDir, 0o755); err != nil {
		return "", nil, err
	}
	dst := filepath.Join(a.tempDir, uuid.New().String()+"_"+filepath.Base(src))

	in, err := os.Open(src)
	if err != nil {
		return "", nil, err
	}
	defer func() {
		if cerr := in.Close(); cerr != nil {
			a.logger.Warn("extract.adapter.close_source_failed", "path", src, "error", cerr)
		}
	}()

	out, err := os.Create(dst)
	if err != nil {
		return "", nil, err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return "", nil, err
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return "", nil, err
	}

	cleanup := func() {
		if err := os.Remove(dst); err != nil && !os.IsNotExist(err) {
			a.logger.Warn("extract.adapter.cleanup_failed", "path", dst, "error", err)
		}
	}
	return dst, cleanup, nil
}
