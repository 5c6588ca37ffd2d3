package driven

import (
	"context"

	"github.com/veldt-labs/ragvault/internal/core/domain"
)

// VectorIndex is the in-memory collection of (document, chunk,
// embedding) triples, keyed by document ID, with cosine similarity
// search over all chunks.
//
// Mutating operations (Insert, Remove, Clear, Restore) are atomic with
// respect to concurrent readers: no caller ever observes a document
// whose chunks or embeddings are missing.
type VectorIndex interface {
	// Insert stores a document together with its chunks and
	// embeddings. Chunks and embeddings must align one-to-one by
	// chunk ID with contiguous sequence indices from 0; a mismatch is
	// rejected and nothing is stored.
	Insert(ctx context.Context, doc domain.Document, chunks []domain.Chunk, embeddings []domain.Embedding) error

	// Remove deletes a document and all of its chunks and embeddings.
	// Removing an absent document is a no-op.
	Remove(ctx context.Context, documentID string) error

	// Clear empties the index.
	Clear(ctx context.Context) error

	// Search ranks every chunk in the index by cosine similarity
	// against the query vector and returns the top k results,
	// descending. Ties keep document insertion order, then chunk
	// sequence order. An empty index yields an empty result.
	Search(ctx context.Context, query []float64, topK int) ([]domain.SearchResult, error)

	// Documents returns all documents in insertion order.
	Documents(ctx context.Context) ([]domain.Document, error)

	// Document returns a single document by ID.
	Document(ctx context.Context, documentID string) (*domain.Document, error)

	// Export returns the complete index state as snapshot entries in
	// document insertion order, with chunk and embedding lists
	// array-aligned per document.
	Export(ctx context.Context) ([]domain.DocumentEntry, []domain.ChunkListEntry, []domain.EmbeddingListEntry, error)

	// Restore replaces the index state wholesale from snapshot
	// entries. The previous state is discarded only if the new state
	// is accepted.
	Restore(ctx context.Context, docs []domain.DocumentEntry, chunks []domain.ChunkListEntry, embeddings []domain.EmbeddingListEntry) error

	// Stats returns document, chunk and embedding counts.
	Stats(ctx context.Context) (domain.IndexStats, error)
}
