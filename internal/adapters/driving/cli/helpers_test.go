package cli

import (
	"context"
	"errors"
	"time"

	"github.com/veldt-labs/ragvault/internal/core/domain"
	"github.com/veldt-labs/ragvault/internal/core/ports/driving"
)

// mockSearchService returns one canned result.
type mockSearchService struct {
	results []domain.SearchResult
	err     error
}

func (m *mockSearchService) Search(context.Context, string, int) ([]domain.SearchResult, error) {
	return m.results, m.err
}

// mockIngestService records calls and succeeds.
type mockIngestService struct {
	ingested []string
	err      error
}

func (m *mockIngestService) IngestFile(_ context.Context, filename string, _ []byte) driving.IngestResult {
	m.ingested = append(m.ingested, filename)
	return driving.IngestResult{DocumentID: "doc-" + filename, Name: filename, Chunks: 2, Err: m.err}
}

func (m *mockIngestService) IngestBatch(ctx context.Context, files []driving.NamedFile) []driving.IngestResult {
	results := make([]driving.IngestResult, len(files))
	for i, f := range files {
		results[i] = m.IngestFile(ctx, f.Name, f.Data)
	}
	return results
}

// mockIndexService serves a static document list.
type mockIndexService struct {
	docs    []domain.Document
	removed []string
	cleared bool
}

func (m *mockIndexService) List(context.Context) ([]domain.Document, error) {
	return m.docs, nil
}

func (m *mockIndexService) Remove(_ context.Context, id string) error {
	for _, d := range m.docs {
		if d.ID == id {
			m.removed = append(m.removed, id)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *mockIndexService) Clear(context.Context) error {
	m.cleared = true
	return nil
}

func (m *mockIndexService) Stats(context.Context) (driving.IndexStats, error) {
	return driving.IndexStats{
		IndexStats: domain.IndexStats{Documents: len(m.docs), Chunks: 4, Embeddings: 4},
		Settings:   domain.DefaultIndexSettings(),
	}, nil
}

// mockSettingsService stores settings in memory.
type mockSettingsService struct {
	settings domain.IndexSettings
}

func newMockSettingsService() *mockSettingsService {
	return &mockSettingsService{settings: domain.DefaultIndexSettings()}
}

func (m *mockSettingsService) Get() domain.IndexSettings { return m.settings }

func (m *mockSettingsService) Apply(s domain.IndexSettings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	m.settings = s
	return nil
}

func (m *mockSettingsService) SetChunkSize(size int) error {
	s := m.settings
	s.ChunkSize = size
	return m.Apply(s)
}

func (m *mockSettingsService) SetChunkOverlap(overlap int) error {
	s := m.settings
	s.ChunkOverlap = overlap
	return m.Apply(s)
}

func (m *mockSettingsService) SetEmbeddingModel(model string) error {
	s := m.settings
	s.EmbeddingModel = model
	return m.Apply(s)
}

// mockPersistenceService tracks persistence calls.
type mockPersistenceService struct {
	persisted int
	restored  bool
	cleared   bool
}

func (m *mockPersistenceService) Snapshot(context.Context) (*domain.Snapshot, error) {
	return &domain.Snapshot{Version: domain.SnapshotVersion, Timestamp: time.Now().UTC()}, nil
}

func (m *mockPersistenceService) Persist(context.Context) (string, error) {
	m.persisted++
	return "ollama-rag-vectordb-2025-06-01_09-30-15.json", nil
}

func (m *mockPersistenceService) Autosave(context.Context) error { return nil }

func (m *mockPersistenceService) Restore(context.Context) (bool, error) {
	return m.restored, nil
}

func (m *mockPersistenceService) ClearStorage(context.Context) error {
	m.cleared = true
	return nil
}

var errMockSearch = errors.New("mock search failure")

// setupTestServices wires mock services and returns a cleanup that
// restores the previous wiring.
func setupTestServices() func() {
	oldIngest, oldSearch, oldIndex := ingestService, searchService, indexService
	oldSettings, oldPersistence := settingsService, persistenceService

	SetServices(Services{
		Ingest: &mockIngestService{},
		Search: &mockSearchService{
			results: []domain.SearchResult{
				{
					Chunk:        domain.Chunk{ID: "d1_chunk_0", DocumentID: "d1", Content: "The quick brown fox."},
					Similarity:   0.95,
					DocumentID:   "d1",
					DocumentName: "notes.txt",
				},
			},
		},
		Index: &mockIndexService{
			docs: []domain.Document{
				{ID: "d1", Name: "notes.txt", Type: domain.SourceTypeTxt, Size: 100, UploadedAt: time.Now().UTC()},
			},
		},
		Settings:    newMockSettingsService(),
		Persistence: &mockPersistenceService{},
	})

	return func() {
		ingestService, searchService, indexService = oldIngest, oldSearch, oldIndex
		settingsService, persistenceService = oldSettings, oldPersistence
	}
}
