package domain

import "time"

// SourceType identifies the format a document was ingested from.
type SourceType string

// Recognised source types.
const (
	// SourceTypeTxt is plain UTF-8 text.
	SourceTypeTxt SourceType = "txt"

	// SourceTypeCSV is comma-separated values with a header row.
	SourceTypeCSV SourceType = "csv"

	// SourceTypeJSON is an arbitrary JSON value.
	SourceTypeJSON SourceType = "json"

	// SourceTypePDF is a PDF file. Extraction is a documented
	// placeholder; see the extractors package.
	SourceTypePDF SourceType = "pdf"
)

// IsValid returns true if the source type is recognised.
func (t SourceType) IsValid() bool {
	switch t {
	case SourceTypeTxt, SourceTypeCSV, SourceTypeJSON, SourceTypePDF:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t SourceType) String() string {
	return string(t)
}

// SourceTypeForExtension maps a lowercase file extension (without the
// dot) to a source type. Unknown extensions fall back to plain text;
// only the explicitly recognised binary/structured formats get their
// own extractor.
func SourceTypeForExtension(ext string) SourceType {
	switch ext {
	case "pdf":
		return SourceTypePDF
	case "csv":
		return SourceTypeCSV
	case "json":
		return SourceTypeJSON
	default:
		return SourceTypeTxt
	}
}

// Document represents an ingested document. It is owned by the vector
// index: created on successful extraction, removed on explicit
// deletion or a full clear.
type Document struct {
	// ID is the unique identifier for the document.
	ID string `json:"id"`

	// Name is the original filename as uploaded.
	Name string `json:"name"`

	// Type is the source format the content was extracted from.
	Type SourceType `json:"type"`

	// Content is the full extracted text before chunking.
	Content string `json:"content"`

	// Size is the byte size of the original file.
	Size int64 `json:"size"`

	// UploadedAt is when the document was ingested.
	UploadedAt time.Time `json:"uploadedAt"`
}

// Chunk represents a contiguous text segment of a document, the unit
// of retrieval. Chunks are immutable once created and share their
// document's lifetime.
type Chunk struct {
	// ID is the unique identifier for the chunk.
	ID string `json:"id"`

	// DocumentID links to the owning Document.
	DocumentID string `json:"fileId"`

	// Sequence is the ordinal position within the document,
	// contiguous from 0.
	Sequence int `json:"index"`

	// Content is the chunk text.
	Content string `json:"content"`

	// Length is the pre-trim character length of the segment.
	Length int `json:"length"`

	// StartChar/EndChar are inclusive rune offsets into the document
	// content. Set only for character-mode chunks.
	StartChar *int `json:"startChar,omitempty"`
	EndChar   *int `json:"endChar,omitempty"`

	// StartSentence/EndSentence are inclusive sentence indices.
	// Set only for sentence-mode chunks.
	StartSentence *int `json:"startSentence,omitempty"`
	EndSentence   *int `json:"endSentence,omitempty"`
}

// Embedding is the vector representation of one chunk, produced by the
// embedding service. One-to-one with Chunk, never mutated after
// creation.
type Embedding struct {
	// ChunkID links to the chunk this vector was generated from.
	ChunkID string `json:"chunkId"`

	// Vector is the raw embedding.
	Vector []float64 `json:"embedding"`

	// Norm is the Euclidean norm of Vector, cached at creation time.
	// Similarity search recomputes norms from the raw vector, so a
	// stale cached norm costs cycles, not correctness.
	Norm float64 `json:"norm"`
}

// IndexStats summarises the in-memory index.
type IndexStats struct {
	// Documents is the number of documents in the index.
	Documents int

	// Chunks is the total chunk count across all documents.
	Chunks int

	// Embeddings is the total embedding count across all documents.
	Embeddings int
}
