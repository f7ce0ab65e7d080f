package constants

// ExtractionStatus records how a document's text representation was resolved.
type ExtractionStatus string

// Stable values (these exact strings go into the run store).
const (
	ExtractionCached ExtractionStatus = "CACHED" // served from a prior extraction record
	ExtractionFresh  ExtractionStatus = "FRESH"  // extraction backend invoked
	ExtractionFailed ExtractionStatus = "FAILED" // no usable text from cache or backend
)

// ArtifactStatus is the per-schema outcome of one generation attempt.
type ArtifactStatus string

const (
	ArtifactGenerated ArtifactStatus = "GENERATED" // sanitized table persisted
	ArtifactEmpty     ArtifactStatus = "EMPTY"     // backend replied, no usable tabular content
	ArtifactError     ArtifactStatus = "ERROR"     // backend call or persistence failed
)
