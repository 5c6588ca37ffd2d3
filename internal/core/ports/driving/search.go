package driving

import (
	"context"

	"github.com/veldt-labs/ragvault/internal/core/domain"
)

// SearchService answers similarity queries against the index.
type SearchService interface {
	// Search embeds the query text and returns the topK most similar
	// chunks, descending by cosine similarity. topK values below 1
	// fall back to domain.DefaultTopK.
	Search(ctx context.Context, query string, topK int) ([]domain.SearchResult, error)
}
