package driving

import (
	"context"

	"github.com/veldt-labs/ragvault/internal/core/domain"
)

// IndexStats extends the raw index counts with the settings in effect.
type IndexStats struct {
	domain.IndexStats

	// Settings are the current chunking/embedding settings.
	Settings domain.IndexSettings
}

// IndexService manages documents already in the index.
type IndexService interface {
	// List returns all indexed documents in insertion order.
	List(ctx context.Context) ([]domain.Document, error)

	// Remove deletes a document with its chunks and embeddings, then
	// autosaves the shrunken index. Removing an unknown ID is an
	// error so callers can report typos.
	Remove(ctx context.Context, documentID string) error

	// Clear empties the in-memory index. Durable storage is NOT
	// cleared here; that is PersistenceService.ClearStorage.
	Clear(ctx context.Context) error

	// Stats reports index counts and current settings.
	Stats(ctx context.Context) (IndexStats, error)
}
