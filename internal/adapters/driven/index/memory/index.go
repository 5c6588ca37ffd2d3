// Package memory provides the in-memory vector index. All index state
// lives in process memory; durability is the snapshot stores' job.
package memory

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/veldt-labs/ragvault/internal/core/domain"
	"github.com/veldt-labs/ragvault/internal/core/ports/driven"
)

// Ensure Index implements the interface.
var _ driven.VectorIndex = (*Index)(nil)

// Index holds documents, chunks and embeddings keyed by document ID,
// plus the insertion order of document IDs. A single RWMutex guards
// all four structures so mutations are atomic with respect to readers.
type Index struct {
	mu         sync.RWMutex
	documents  map[string]domain.Document
	chunks     map[string][]domain.Chunk
	embeddings map[string][]domain.Embedding
	order      []string
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{
		documents:  make(map[string]domain.Document),
		chunks:     make(map[string][]domain.Chunk),
		embeddings: make(map[string][]domain.Embedding),
	}
}

// Insert stores a document with its chunks and embeddings after
// validating one-to-one chunk/embedding alignment and contiguous
// sequence indices. On any validation failure nothing is stored.
func (idx *Index) Insert(_ context.Context, doc domain.Document, chunks []domain.Chunk, embeddings []domain.Embedding) error {
	if err := validateAlignment(doc.ID, chunks, embeddings); err != nil {
		return err
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	if _, exists := idx.documents[doc.ID]; !exists {
		idx.order = append(idx.order, doc.ID)
	}
	idx.documents[doc.ID] = doc
	idx.chunks[doc.ID] = chunks
	idx.embeddings[doc.ID] = embeddings
	return nil
}

func validateAlignment(docID string, chunks []domain.Chunk, embeddings []domain.Embedding) error {
	if len(chunks) != len(embeddings) {
		return fmt.Errorf("%w: %d chunks, %d embeddings", domain.ErrChunkMismatch, len(chunks), len(embeddings))
	}
	for i, c := range chunks {
		if c.Sequence != i {
			return fmt.Errorf("%w: chunk %q has sequence %d at position %d", domain.ErrChunkMismatch, c.ID, c.Sequence, i)
		}
		if c.DocumentID != docID {
			return fmt.Errorf("%w: chunk %q belongs to document %q", domain.ErrChunkMismatch, c.ID, c.DocumentID)
		}
		if embeddings[i].ChunkID != c.ID {
			return fmt.Errorf("%w: embedding %d is for chunk %q, expected %q", domain.ErrChunkMismatch, i, embeddings[i].ChunkID, c.ID)
		}
	}
	return nil
}

// Remove deletes a document and everything attached to it. Removing an
// absent document is a no-op.
func (idx *Index) Remove(_ context.Context, documentID string) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if _, exists := idx.documents[documentID]; !exists {
		return nil
	}

	delete(idx.documents, documentID)
	delete(idx.chunks, documentID)
	delete(idx.embeddings, documentID)
	for i, id := range idx.order {
		if id == documentID {
			idx.order = append(idx.order[:i], idx.order[i+1:]...)
			break
		}
	}
	return nil
}

// Clear empties the index.
func (idx *Index) Clear(_ context.Context) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.documents = make(map[string]domain.Document)
	idx.chunks = make(map[string][]domain.Chunk)
	idx.embeddings = make(map[string][]domain.Embedding)
	idx.order = nil
	return nil
}

// Search scores every chunk against the query vector by cosine
// similarity and returns the top k, descending. Norms are recomputed
// from the raw vectors rather than trusting the cached values, so a
// snapshot with stale norms still ranks correctly. A zero-norm vector
// on either side scores zero.
func (idx *Index) Search(_ context.Context, query []float64, topK int) ([]domain.SearchResult, error) {
	if topK <= 0 {
		topK = domain.DefaultTopK
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	queryNorm := norm(query)

	var results []domain.SearchResult
	for _, docID := range idx.order {
		doc := idx.documents[docID]
		chunks := idx.chunks[docID]
		embeddings := idx.embeddings[docID]

		for i, emb := range embeddings {
			results = append(results, domain.SearchResult{
				Chunk:        chunks[i],
				Similarity:   cosine(query, queryNorm, emb.Vector),
				DocumentID:   docID,
				DocumentName: doc.Name,
			})
		}
	}

	// Stable keeps insertion order then sequence order among ties.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})

	if len(results) > topK {
		results = results[:topK]
	}
	return results, nil
}

func norm(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

func cosine(query []float64, queryNorm float64, candidate []float64) float64 {
	if queryNorm == 0 {
		return 0
	}
	candidateNorm := norm(candidate)
	if candidateNorm == 0 {
		return 0
	}

	n := len(query)
	if len(candidate) < n {
		n = len(candidate)
	}
	var dot float64
	for i := 0; i < n; i++ {
		dot += query[i] * candidate[i]
	}
	return dot / (queryNorm * candidateNorm)
}

// Documents returns all documents in insertion order.
func (idx *Index) Documents(_ context.Context) ([]domain.Document, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	docs := make([]domain.Document, 0, len(idx.order))
	for _, id := range idx.order {
		docs = append(docs, idx.documents[id])
	}
	return docs, nil
}

// Document returns a single document by ID.
func (idx *Index) Document(_ context.Context, documentID string) (*domain.Document, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	doc, exists := idx.documents[documentID]
	if !exists {
		return nil, fmt.Errorf("%w: document %s", domain.ErrNotFound, documentID)
	}
	return &doc, nil
}

// Export returns the full index state as snapshot entries in document
// insertion order.
func (idx *Index) Export(_ context.Context) ([]domain.DocumentEntry, []domain.ChunkListEntry, []domain.EmbeddingListEntry, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	docs := make([]domain.DocumentEntry, 0, len(idx.order))
	chunks := make([]domain.ChunkListEntry, 0, len(idx.order))
	embeddings := make([]domain.EmbeddingListEntry, 0, len(idx.order))
	for _, id := range idx.order {
		docs = append(docs, domain.DocumentEntry{ID: id, Document: idx.documents[id]})
		chunks = append(chunks, domain.ChunkListEntry{ID: id, Chunks: idx.chunks[id]})
		embeddings = append(embeddings, domain.EmbeddingListEntry{ID: id, Embeddings: idx.embeddings[id]})
	}
	return docs, chunks, embeddings, nil
}

// Restore replaces the index state wholesale from snapshot entries.
// The incoming state is staged first; the live state is only swapped
// once staging succeeds, so a bad snapshot leaves the index untouched.
func (idx *Index) Restore(_ context.Context, docs []domain.DocumentEntry, chunks []domain.ChunkListEntry, embeddings []domain.EmbeddingListEntry) error {
	documents := make(map[string]domain.Document, len(docs))
	order := make([]string, 0, len(docs))
	for _, e := range docs {
		if _, dup := documents[e.ID]; !dup {
			order = append(order, e.ID)
		}
		documents[e.ID] = e.Document
	}

	chunkMap := make(map[string][]domain.Chunk, len(chunks))
	for _, e := range chunks {
		chunkMap[e.ID] = e.Chunks
	}
	embeddingMap := make(map[string][]domain.Embedding, len(embeddings))
	for _, e := range embeddings {
		embeddingMap[e.ID] = e.Embeddings
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.documents = documents
	idx.chunks = chunkMap
	idx.embeddings = embeddingMap
	idx.order = order
	return nil
}

// Stats returns document, chunk and embedding counts.
func (idx *Index) Stats(_ context.Context) (domain.IndexStats, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	stats := domain.IndexStats{Documents: len(idx.documents)}
	for _, c := range idx.chunks {
		stats.Chunks += len(c)
	}
	for _, e := range idx.embeddings {
		stats.Embeddings += len(e)
	}
	return stats, nil
}
