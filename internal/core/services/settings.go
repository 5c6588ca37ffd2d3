package services

import (
	"fmt"

	"github.com/veldt-labs/ragvault/internal/core/domain"
	"github.com/veldt-labs/ragvault/internal/core/ports/driven"
	"github.com/veldt-labs/ragvault/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Configuration keys for index settings.
const (
	KeyChunkSize      = "index.chunk_size"
	KeyChunkOverlap   = "index.chunk_overlap"
	KeyEmbeddingModel = "embedding.model"
)

// SettingsService manages the chunking/embedding settings, backed by
// the config store so changes survive restarts.
type SettingsService struct {
	config driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(config driven.ConfigStore) *SettingsService {
	return &SettingsService{config: config}
}

// Get returns the effective settings: configured values where present,
// defaults otherwise.
func (s *SettingsService) Get() domain.IndexSettings {
	settings := domain.DefaultIndexSettings()

	if s.config == nil {
		return settings
	}
	if v := s.config.GetInt(KeyChunkSize); v > 0 {
		settings.ChunkSize = v
	}
	if _, ok := s.config.Get(KeyChunkOverlap); ok {
		settings.ChunkOverlap = s.config.GetInt(KeyChunkOverlap)
	}
	if v := s.config.GetString(KeyEmbeddingModel); v != "" {
		settings.EmbeddingModel = v
	}
	return settings
}

// Apply validates and persists a full settings value.
func (s *SettingsService) Apply(settings domain.IndexSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	if s.config == nil {
		return nil
	}

	if err := s.config.Set(KeyChunkSize, settings.ChunkSize); err != nil {
		return fmt.Errorf("persisting chunk size: %w", err)
	}
	if err := s.config.Set(KeyChunkOverlap, settings.ChunkOverlap); err != nil {
		return fmt.Errorf("persisting chunk overlap: %w", err)
	}
	if err := s.config.Set(KeyEmbeddingModel, settings.EmbeddingModel); err != nil {
		return fmt.Errorf("persisting embedding model: %w", err)
	}
	return nil
}

// SetChunkSize updates the chunk size.
func (s *SettingsService) SetChunkSize(size int) error {
	settings := s.Get()
	settings.ChunkSize = size
	return s.Apply(settings)
}

// SetChunkOverlap updates the chunk overlap.
func (s *SettingsService) SetChunkOverlap(overlap int) error {
	settings := s.Get()
	settings.ChunkOverlap = overlap
	return s.Apply(settings)
}

// SetEmbeddingModel updates the embedding model name.
func (s *SettingsService) SetEmbeddingModel(model string) error {
	settings := s.Get()
	settings.EmbeddingModel = model
	return s.Apply(settings)
}
