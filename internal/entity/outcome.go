package entity

import (
	"time"

	"github.com/kavinduUdhara/extract-document-data-automation/constants"
)

// SchemaOutcome is the per-schema result recorded on a DocumentOutcome.
type SchemaOutcome struct {
	SchemaName string                   `json:"schema_name"`
	Status     constants.ArtifactStatus `json:"status"`
	Error      string                   `json:"error,omitempty"`
	RowCount   int                      `json:"row_count,omitempty"`
	ByteSize   int                      `json:"byte_size,omitempty"`
	OutputPath string                   `json:"output_path,omitempty"`
}

// DocumentOutcome is the single terminal record for one document's run.
// Created when processing starts, filled as each schema completes.
type DocumentOutcome struct {
	Document   SourceDocument             `json:"document"`
	Extraction constants.ExtractionStatus `json:"extraction"`
	Schemas    []SchemaOutcome            `json:"schemas"`
	StartedAt  time.Time                  `json:"started_at"`
	FinishedAt time.Time                  `json:"finished_at"`
}

// GeneratedCount returns how many schemas produced a persisted artifact.
func (o *DocumentOutcome) GeneratedCount() int {
	n := 0
	for _, s := range o.Schemas {
		if s.Status == constants.ArtifactGenerated {
			n++
		}
	}
	return n
}

// Success reports whether at least one artifact was generated.
func (o *DocumentOutcome) Success() bool {
	return o.GeneratedCount() > 0
}

// FullSuccess reports whether every schema produced an artifact.
func (o *DocumentOutcome) FullSuccess() bool {
	return len(o.Schemas) > 0 && o.GeneratedCount() == len(o.Schemas)
}

// BatchReport aggregates one run across all enumerated documents.
// Outcomes appear in enumeration order.
type BatchReport struct {
	RunID      string            `json:"run_id"`
	Outcomes   []DocumentOutcome `json:"outcomes"`
	StartedAt  time.Time         `json:"started_at"`
	FinishedAt time.Time         `json:"finished_at"`
}

// Attempted is the number of documents the batch run touched.
func (r *BatchReport) Attempted() int { return len(r.Outcomes) }

// Succeeded counts documents with at least one generated artifact.
func (r *BatchReport) Succeeded() int {
	n := 0
	for i := range r.Outcomes {
		if r.Outcomes[i].Success() {
			n++
		}
	}
	return n
}

// Failed counts documents that produced no artifact at all.
func (r *BatchReport) Failed() int {
	return len(r.Outcomes) - r.Succeeded()
}
