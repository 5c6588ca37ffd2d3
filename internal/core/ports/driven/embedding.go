package driven

import "context"

// EmbeddingService generates vector embeddings from text.
//
// Implementations may include:
//   - Ollama (nomic-embed-text, all-minilm)
//   - Any service speaking the Ollama /api/embeddings contract
type EmbeddingService interface {
	// Embed generates a vector embedding for the given text.
	Embed(ctx context.Context, text string) ([]float64, error)

	// EmbedBatch generates embeddings for multiple texts, strictly
	// sequentially and in input order: result i corresponds to
	// texts[i]. The whole batch fails on the first error so callers
	// never observe a partial, misaligned result set.
	EmbedBatch(ctx context.Context, texts []string) ([][]float64, error)

	// ModelName returns the name of the embedding model being used.
	ModelName() string

	// Ping validates the service is reachable with a lightweight
	// request that does not run inference.
	Ping(ctx context.Context) error
}
