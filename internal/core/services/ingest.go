package services

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/veldt-labs/ragvault/internal/chunker"
	"github.com/veldt-labs/ragvault/internal/core/domain"
	"github.com/veldt-labs/ragvault/internal/core/ports/driven"
	"github.com/veldt-labs/ragvault/internal/core/ports/driving"
	"github.com/veldt-labs/ragvault/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.IngestService = (*IngestService)(nil)

// IngestService runs the ingestion pipeline for uploaded files:
// extract text, chunk it, embed every chunk, insert the aligned triple
// into the index and autosave.
type IngestService struct {
	extractors  driven.ExtractorRegistry
	embedder    driven.EmbeddingService
	index       driven.VectorIndex
	settings    driving.SettingsService
	persistence driving.PersistenceService
}

// NewIngestService creates a new ingest service. persistence may be
// nil to disable autosave.
func NewIngestService(
	extractors driven.ExtractorRegistry,
	embedder driven.EmbeddingService,
	index driven.VectorIndex,
	settings driving.SettingsService,
	persistence driving.PersistenceService,
) *IngestService {
	return &IngestService{
		extractors:  extractors,
		embedder:    embedder,
		index:       index,
		settings:    settings,
		persistence: persistence,
	}
}

// IngestFile ingests a single uploaded file.
func (s *IngestService) IngestFile(ctx context.Context, filename string, data []byte) driving.IngestResult {
	result := driving.IngestResult{Name: filename}

	doc, chunks, embeddings, err := s.process(ctx, filename, data)
	if err != nil {
		result.Err = err
		return result
	}

	if err := s.index.Insert(ctx, *doc, chunks, embeddings); err != nil {
		result.Err = err
		return result
	}
	result.DocumentID = doc.ID
	result.Chunks = len(chunks)
	logger.Info("indexed %s: %d chunks", filename, len(chunks))

	if s.persistence != nil {
		if err := s.persistence.Autosave(ctx); err != nil {
			logger.Warn("autosave after ingesting %s failed: %v", filename, err)
			result.PersistErr = err
		}
	}
	return result
}

// IngestBatch ingests several files independently. One file failing
// leaves the other files' results untouched; autosave runs per file
// so earlier documents are durable even if a later one fails.
func (s *IngestService) IngestBatch(ctx context.Context, files []driving.NamedFile) []driving.IngestResult {
	results := make([]driving.IngestResult, len(files))
	for i, f := range files {
		results[i] = s.IngestFile(ctx, f.Name, f.Data)
	}
	return results
}

// process runs extraction, chunking and embedding without touching the
// index, so a failure at any stage leaves no partial state behind.
func (s *IngestService) process(ctx context.Context, filename string, data []byte) (*domain.Document, []domain.Chunk, []domain.Embedding, error) {
	sourceType := sourceTypeFor(filename)

	extractor, err := s.extractors.Get(sourceType)
	if err != nil {
		return nil, nil, nil, err
	}

	content, err := extractor.Extract(filename, data)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("extracting %s: %w", filename, err)
	}

	settings := s.settings.Get()
	ck, err := chunker.New(
		chunker.WithChunkSize(settings.ChunkSize),
		chunker.WithOverlap(settings.ChunkOverlap),
	)
	if err != nil {
		return nil, nil, nil, err
	}

	doc := domain.Document{
		ID:         uuid.NewString(),
		Name:       filename,
		Type:       sourceType,
		Content:    content,
		Size:       int64(len(data)),
		UploadedAt: time.Now().UTC(),
	}

	chunks := ck.Chunk(doc.ID, content)
	logger.Debug("chunked %s into %d chunks (size=%d overlap=%d)",
		filename, len(chunks), settings.ChunkSize, settings.ChunkOverlap)

	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Content
	}

	// The whole batch embeds before anything is inserted, so the index
	// never holds a document with missing embeddings.
	vectors, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("embedding %s: %w", filename, err)
	}

	embeddings := make([]domain.Embedding, len(chunks))
	for i, c := range chunks {
		embeddings[i] = domain.Embedding{
			ChunkID: c.ID,
			Vector:  vectors[i],
			Norm:    vectorNorm(vectors[i]),
		}
	}
	return &doc, chunks, embeddings, nil
}

func sourceTypeFor(filename string) domain.SourceType {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	return domain.SourceTypeForExtension(ext)
}

func vectorNorm(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}
