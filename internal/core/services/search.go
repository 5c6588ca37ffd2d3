package services

import (
	"context"
	"fmt"

	"github.com/veldt-labs/ragvault/internal/core/domain"
	"github.com/veldt-labs/ragvault/internal/core/ports/driven"
	"github.com/veldt-labs/ragvault/internal/core/ports/driving"
	"github.com/veldt-labs/ragvault/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService answers similarity queries: embed the query text with
// the same model the chunks were embedded with, then rank chunks by
// cosine similarity.
type SearchService struct {
	embedder driven.EmbeddingService
	index    driven.VectorIndex
}

// NewSearchService creates a new search service.
func NewSearchService(embedder driven.EmbeddingService, index driven.VectorIndex) *SearchService {
	return &SearchService{
		embedder: embedder,
		index:    index,
	}
}

// Search embeds the query and returns the topK most similar chunks.
func (s *SearchService) Search(ctx context.Context, query string, topK int) ([]domain.SearchResult, error) {
	if topK <= 0 {
		topK = domain.DefaultTopK
	}

	vector, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}

	results, err := s.index.Search(ctx, vector, topK)
	if err != nil {
		return nil, err
	}
	logger.Debug("search %q: %d results", query, len(results))
	return results, nil
}
