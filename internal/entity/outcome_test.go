package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kavinduUdhara/extract-document-data-automation/constants"
)

func TestNewGeneratedArtifact_RowCount(t *testing.T) {
	tests := []struct {
		name    string
		content string
		rows    int
	}{
		{"header plus two rows", "a,b\n1,2\n3,4", 2},
		{"header only", "a,b", 0},
		{"blank lines ignored", "a,b\n\n1,2\n\n", 1},
		{"empty content", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewGeneratedArtifact("X", tt.content, tt.content)
			assert.Equal(t, tt.rows, a.RowCount)
			assert.Equal(t, len(tt.content), a.ByteSize)
		})
	}
}

func TestDocumentOutcome_SuccessFlags(t *testing.T) {
	partial := DocumentOutcome{Schemas: []SchemaOutcome{
		{Status: constants.ArtifactGenerated},
		{Status: constants.ArtifactEmpty},
	}}
	assert.True(t, partial.Success())
	assert.False(t, partial.FullSuccess())

	full := DocumentOutcome{Schemas: []SchemaOutcome{
		{Status: constants.ArtifactGenerated},
		{Status: constants.ArtifactGenerated},
	}}
	assert.True(t, full.FullSuccess())

	failed := DocumentOutcome{Extraction: constants.ExtractionFailed}
	assert.False(t, failed.Success())
	assert.False(t, failed.FullSuccess())
}

func TestBatchReport_Counts(t *testing.T) {
	r := BatchReport{Outcomes: []DocumentOutcome{
		{Schemas: []SchemaOutcome{{Status: constants.ArtifactGenerated}}},
		{Extraction: constants.ExtractionFailed},
		{Schemas: []SchemaOutcome{{Status: constants.ArtifactError}}},
	}}
	assert.Equal(t, 3, r.Attempted())
	assert.Equal(t, 1, r.Succeeded())
	assert.Equal(t, 2, r.Failed())
}
