package driven

import "github.com/veldt-labs/ragvault/internal/core/domain"

// Extractor normalises one source format into a plain text blob.
// Implementations are pure with respect to their input bytes.
type Extractor interface {
	// Type returns the source type this extractor handles.
	Type() domain.SourceType

	// Extract converts file bytes into the document text. The
	// filename is available for extractors that embed it in their
	// output (the PDF placeholder does).
	Extract(filename string, data []byte) (string, error)
}

// ExtractorRegistry selects the extractor for a source type.
type ExtractorRegistry interface {
	// Get returns the extractor for the given source type.
	Get(sourceType domain.SourceType) (Extractor, error)
}
