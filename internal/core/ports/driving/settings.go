package driving

import "github.com/veldt-labs/ragvault/internal/core/domain"

// SettingsService manages the runtime chunking/embedding settings.
type SettingsService interface {
	// Get returns the effective settings (config values over
	// defaults).
	Get() domain.IndexSettings

	// Apply validates and persists a full settings value.
	Apply(settings domain.IndexSettings) error

	// SetChunkSize updates the chunk size, keeping the invariant
	// overlap < size.
	SetChunkSize(size int) error

	// SetChunkOverlap updates the chunk overlap, keeping the
	// invariant overlap < size.
	SetChunkOverlap(overlap int) error

	// SetEmbeddingModel updates the embedding model name.
	SetEmbeddingModel(model string) error
}
