package domain

// DefaultTopK is the default number of search results returned.
const DefaultTopK = 5

// SearchResult represents a single similarity hit against the index.
type SearchResult struct {
	// Chunk is the matched chunk.
	Chunk Chunk `json:"chunk"`

	// Similarity is the cosine similarity against the query vector.
	Similarity float64 `json:"similarity"`

	// DocumentID identifies the owning document.
	DocumentID string `json:"fileId"`

	// DocumentName is the display name of the owning document.
	DocumentName string `json:"fileName"`
}
