package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnsupportedType indicates an unrecognised source type.
	ErrUnsupportedType = errors.New("unsupported source type")

	// ErrExtraction indicates a source file could not be read or
	// parsed. Ingestion of that file aborts; other files in the same
	// batch continue independently.
	ErrExtraction = errors.New("extraction failed")

	// ErrEmbedding indicates the embedding service call failed
	// (network error or non-2xx response). It aborts the current
	// document's ingestion only.
	ErrEmbedding = errors.New("embedding service error")

	// ErrPersistence indicates a snapshot store operation failed.
	// The in-memory index is never rolled back on persistence
	// failure; durability and in-memory correctness are decoupled.
	ErrPersistence = errors.New("persistence error")

	// ErrMalformedSnapshot indicates a loaded snapshot is missing
	// required top-level fields. The load is rejected and the
	// in-memory index is left untouched.
	ErrMalformedSnapshot = errors.New("malformed snapshot")

	// ErrInvalidChunking indicates chunking configuration that
	// cannot make progress, such as an overlap reaching the chunk
	// size.
	ErrInvalidChunking = errors.New("invalid chunking configuration")

	// ErrChunkMismatch indicates chunks and embeddings offered to the
	// index do not line up one-to-one by chunk ID.
	ErrChunkMismatch = errors.New("chunk/embedding mismatch")
)
