package entity

// SourceDocument represents one input file discovered by directory
// enumeration. Immutable once created.
type SourceDocument struct {
	Name string `json:"name"` // base filename including extension
	Stem string `json:"stem"` // filename without extension; output/cache key
	Path string `json:"path"` // absolute or run-relative path on disk
}

// ExtractedText is the text representation of one SourceDocument. Content
// carries no guaranteed structure beyond UTF-8 text; an empty Content is
// never produced on success.
type ExtractedText struct {
	Content string `json:"content"`
	Source  string `json:"source"` // "cache" | "backend"
}
