package services

import (
	"context"
	"fmt"

	"github.com/veldt-labs/ragvault/internal/core/domain"
	"github.com/veldt-labs/ragvault/internal/core/ports/driven"
	"github.com/veldt-labs/ragvault/internal/core/ports/driving"
	"github.com/veldt-labs/ragvault/internal/logger"
)

// Ensure IndexService implements the interface.
var _ driving.IndexService = (*IndexService)(nil)

// IndexService manages documents already in the index.
type IndexService struct {
	index       driven.VectorIndex
	settings    driving.SettingsService
	persistence driving.PersistenceService
}

// NewIndexService creates a new index service. persistence may be nil
// to disable autosave.
func NewIndexService(
	index driven.VectorIndex,
	settings driving.SettingsService,
	persistence driving.PersistenceService,
) *IndexService {
	return &IndexService{
		index:       index,
		settings:    settings,
		persistence: persistence,
	}
}

// List returns all indexed documents in insertion order.
func (s *IndexService) List(ctx context.Context) ([]domain.Document, error) {
	return s.index.Documents(ctx)
}

// Remove deletes one document and autosaves the shrunken index. The
// underlying index treats removal of an absent ID as a no-op, so
// existence is checked first to surface typos.
func (s *IndexService) Remove(ctx context.Context, documentID string) error {
	if _, err := s.index.Document(ctx, documentID); err != nil {
		return err
	}
	if err := s.index.Remove(ctx, documentID); err != nil {
		return fmt.Errorf("removing document %s: %w", documentID, err)
	}
	logger.Info("removed document %s", documentID)

	if s.persistence != nil {
		if err := s.persistence.Autosave(ctx); err != nil {
			logger.Warn("autosave after removing %s failed: %v", documentID, err)
		}
	}
	return nil
}

// Clear empties the in-memory index. Durable snapshots are left alone;
// PersistenceService.ClearStorage removes those.
func (s *IndexService) Clear(ctx context.Context) error {
	return s.index.Clear(ctx)
}

// Stats reports index counts plus the settings in effect.
func (s *IndexService) Stats(ctx context.Context) (driving.IndexStats, error) {
	stats, err := s.index.Stats(ctx)
	if err != nil {
		return driving.IndexStats{}, err
	}
	return driving.IndexStats{
		IndexStats: stats,
		Settings:   s.settings.Get(),
	}, nil
}
