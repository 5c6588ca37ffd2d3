package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/veldt-labs/ragvault/internal/core/domain"
	"github.com/veldt-labs/ragvault/internal/core/ports/driven"
	"github.com/veldt-labs/ragvault/internal/core/ports/driving"
	"github.com/veldt-labs/ragvault/internal/logger"
)

// Ensure PersistenceService implements the interface.
var _ driving.PersistenceService = (*PersistenceService)(nil)

// SnapshotFilePrefix is shared with snapshots written by the browser
// client; List filtering and retention key on it.
const SnapshotFilePrefix = "ollama-rag-vectordb-"

// PersistenceService bridges the in-memory index to durable snapshot
// storage. Retention is single-snapshot: every Persist deletes all
// prior snapshot files before writing the new one.
type PersistenceService struct {
	index    driven.VectorIndex
	store    driven.SnapshotStore
	settings driving.SettingsService

	// now is swappable for deterministic filenames in tests.
	now func() time.Time
}

// NewPersistenceService creates a new persistence service.
func NewPersistenceService(
	index driven.VectorIndex,
	store driven.SnapshotStore,
	settings driving.SettingsService,
) *PersistenceService {
	return &PersistenceService{
		index:    index,
		store:    store,
		settings: settings,
		now:      time.Now,
	}
}

// Snapshot serialises the full index plus current settings.
func (s *PersistenceService) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	docs, chunks, embeddings, err := s.index.Export(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.Snapshot{
		Version:    domain.SnapshotVersion,
		Timestamp:  s.now().UTC(),
		Settings:   s.settings.Get(),
		Documents:  docs,
		Chunks:     chunks,
		Embeddings: embeddings,
	}, nil
}

// Persist writes a new timestamped snapshot and enforces retention:
// prior snapshot files are deleted first, so after a successful save
// exactly one snapshot exists. Returns the stored filename.
func (s *PersistenceService) Persist(ctx context.Context) (string, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return "", err
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("%w: encoding snapshot: %v", domain.ErrPersistence, err)
	}

	if err := s.deleteSnapshots(ctx); err != nil {
		return "", err
	}

	filename := SnapshotFilePrefix + snap.Timestamp.Format("2006-01-02_15-04-05") + ".json"
	if err := s.store.Save(ctx, filename, data); err != nil {
		return "", err
	}
	logger.Info("saved snapshot %s (%d documents)", filename, len(snap.Documents))
	return filename, nil
}

// Autosave persists only when the index holds documents. Operations
// that empty the index skip the save so an accidental clear does not
// overwrite the last good snapshot.
func (s *PersistenceService) Autosave(ctx context.Context) error {
	stats, err := s.index.Stats(ctx)
	if err != nil {
		return err
	}
	if stats.Documents == 0 {
		logger.Debug("autosave skipped: index is empty")
		return nil
	}

	_, err = s.Persist(ctx)
	return err
}

// Restore loads the newest snapshot, replacing the in-memory index
// and applying the snapshot's settings. Empty storage is not an
// error; the bool reports whether anything was restored.
func (s *PersistenceService) Restore(ctx context.Context) (bool, error) {
	infos, err := s.store.List(ctx)
	if err != nil {
		return false, err
	}

	var filename string
	for _, info := range infos {
		if strings.HasPrefix(info.Filename, SnapshotFilePrefix) {
			filename = info.Filename
			break
		}
	}
	if filename == "" {
		logger.Debug("restore skipped: no snapshots in storage")
		return false, nil
	}

	data, err := s.store.Load(ctx, filename)
	if err != nil {
		return false, err
	}

	// Parse and validate fully before touching the index so a
	// malformed snapshot never partially overwrites live state.
	snap, err := domain.ParseSnapshot(data)
	if err != nil {
		return false, fmt.Errorf("snapshot %s: %w", filename, err)
	}

	if err := s.index.Restore(ctx, snap.Documents, snap.Chunks, snap.Embeddings); err != nil {
		return false, err
	}

	if err := s.settings.Apply(snap.Settings); err != nil {
		logger.Warn("snapshot %s carries invalid settings, keeping current: %v", filename, err)
	}

	logger.Info("restored snapshot %s (%d documents)", filename, len(snap.Documents))
	return true, nil
}

// ClearStorage deletes every snapshot file, best-effort: an individual
// failed delete is logged and the loop continues.
func (s *PersistenceService) ClearStorage(ctx context.Context) error {
	return s.deleteSnapshots(ctx)
}

func (s *PersistenceService) deleteSnapshots(ctx context.Context) error {
	infos, err := s.store.List(ctx)
	if err != nil {
		return err
	}

	for _, info := range infos {
		if !strings.HasPrefix(info.Filename, SnapshotFilePrefix) {
			continue
		}
		if err := s.store.Delete(ctx, info.Filename); err != nil {
			logger.Warn("deleting old snapshot %s: %v", info.Filename, err)
		}
	}
	return nil
}
