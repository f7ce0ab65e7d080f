package entity

import "strings"

// GeneratedArtifact is the sanitized tabular output for one
// (SourceDocument, schema) pair. Not mutated after creation.
type GeneratedArtifact struct {
	SchemaName string `json:"schema_name"`
	RawReply   string `json:"-"`
	Content    string `json:"-"`
	RowCount   int    `json:"row_count"`
	ByteSize   int    `json:"byte_size"`
}

// NewGeneratedArtifact derives row count and byte size from the sanitized
// content. Row count is non-blank lines minus the header line.
func NewGeneratedArtifact(schemaName, rawReply, content string) GeneratedArtifact {
	return GeneratedArtifact{
		SchemaName: schemaName,
		RawReply:   rawReply,
		Content:    content,
		RowCount:   countDataRows(content),
		ByteSize:   len(content),
	}
}

func countDataRows(content string) int {
	rows := 0
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) != "" {
			rows++
		}
	}
	if rows > 0 {
		rows-- // header line
	}
	return rows
}
