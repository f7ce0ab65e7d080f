package landingai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kavinduUdhara/extract-document-data-automation/constants"
	"github.com/kavinduUdhara/extract-document-data-automation/internal/extract"
)

// Config for the agentic document analysis client.
type Config struct {
	APIKey  string        // if empty, falls back to env VISION_AGENT_API_KEY
	BaseURL string        // default https://api.va.landing.ai/v1
	Timeout time.Duration // http client timeout
}

type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("VISION_AGENT_API_KEY")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.va.landing.ai/v1"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Minute
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// Parse implements extract.DocumentParser: it uploads one file to the
// document analysis endpoint and returns the markdown representation
// plus structured chunks. Exactly one attempt per call.
func (c *Client) Parse(ctx context.Context, path string) (extract.ParseResult, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.logger.Info("landingai.parse.start", "req_id", rid, "path", path)

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/tools/agentic-document-analysis"
	raw, err := c.upload(ctx, endpoint, path)
	if err != nil {
		c.logger.Error("landingai.parse.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return extract.ParseResult{}, err
	}

	var pr struct {
		Data struct {
			Markdown string          `json:"markdown"`
			Chunks   []extract.Chunk `json:"chunks"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &pr); err != nil {
		c.logger.Error("landingai.parse.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return extract.ParseResult{}, fmt.Errorf("decode landingai response: %w", err)
	}

	c.logger.Info("landingai.parse.ok",
		"req_id", rid,
		"markdown_len", len(pr.Data.Markdown),
		"chunks", len(pr.Data.Chunks),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return extract.ParseResult{Markdown: pr.Data.Markdown, Chunks: pr.Data.Chunks}, nil
}

// upload posts the file as multipart form data. PDFs go under the "pdf"
// field, everything else under "image", per the backend's contract.
func (c *Client) upload(ctx context.Context, url, path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func(f *os.File) {
		if cerr := f.Close(); cerr != nil {
			c.logger.Warn("landingai.upload.close_error", "path", path, "error", cerr)
		}
	}(f)

	field := "image"
	if constants.NormalizeExt(filepath.Ext(path)) == "pdf" {
		field = "pdf"
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, fmt.Errorf("copy file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Basic "+c.cfg.APIKey)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("landingai http error: %w", err)
	}
	defer func(body io.ReadCloser) {
		if cerr := body.Close(); cerr != nil {
			c.logger.Warn("landingai.upload.body_close_error", "error", cerr)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("landingai status %d: %s", resp.StatusCode, string(raw))
	}
	return raw, nil
}
