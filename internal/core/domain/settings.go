package domain

import "fmt"

// Default index settings.
const (
	// DefaultChunkSize is the default chunk size in characters.
	DefaultChunkSize = 1000

	// DefaultChunkOverlap is the default overlap between chunks.
	DefaultChunkOverlap = 200

	// DefaultEmbeddingModel is the default Ollama embedding model.
	DefaultEmbeddingModel = "nomic-embed-text"
)

// IndexSettings holds the chunking and embedding configuration that
// travels with every snapshot. All fields are mutable at runtime.
type IndexSettings struct {
	// ChunkSize is the maximum chunk size in characters.
	ChunkSize int `json:"chunkSize"`

	// ChunkOverlap is the overlap carried between adjacent chunks.
	ChunkOverlap int `json:"chunkOverlap"`

	// EmbeddingModel is the embedding model name.
	EmbeddingModel string `json:"embeddingModel"`
}

// DefaultIndexSettings returns settings with the stock defaults.
func DefaultIndexSettings() IndexSettings {
	return IndexSettings{
		ChunkSize:      DefaultChunkSize,
		ChunkOverlap:   DefaultChunkOverlap,
		EmbeddingModel: DefaultEmbeddingModel,
	}
}

// Validate checks the settings are internally consistent. An overlap
// that reaches the chunk size would stall character-mode chunking, so
// it is rejected here rather than guarded downstream.
func (s IndexSettings) Validate() error {
	if s.ChunkSize <= 0 {
		return fmt.Errorf("%w: chunk size must be positive, got %d", ErrInvalidChunking, s.ChunkSize)
	}
	if s.ChunkOverlap < 0 {
		return fmt.Errorf("%w: chunk overlap must not be negative, got %d", ErrInvalidChunking, s.ChunkOverlap)
	}
	if s.ChunkOverlap >= s.ChunkSize {
		return fmt.Errorf("%w: chunk overlap %d must be smaller than chunk size %d",
			ErrInvalidChunking, s.ChunkOverlap, s.ChunkSize)
	}
	if s.EmbeddingModel == "" {
		return fmt.Errorf("%w: embedding model must not be empty", ErrInvalidChunking)
	}
	return nil
}
