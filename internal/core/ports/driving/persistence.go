package driving

import (
	"context"

	"github.com/veldt-labs/ragvault/internal/core/domain"
)

// PersistenceService bridges the in-memory index to durable snapshot
// storage with single-snapshot retention: after any successful
// Persist, exactly one snapshot file exists.
type PersistenceService interface {
	// Snapshot serialises the full index plus current settings.
	Snapshot(ctx context.Context) (*domain.Snapshot, error)

	// Persist writes a new timestamped snapshot, deleting all prior
	// snapshot files first. Returns the stored filename.
	Persist(ctx context.Context) (string, error)

	// Autosave persists only when the index is non-empty. Called
	// after every successful ingestion; clears that empty the index
	// skip it entirely.
	Autosave(ctx context.Context) error

	// Restore loads the most recent snapshot from storage, replacing
	// the in-memory index and applying the snapshot's settings. An
	// empty storage namespace is not an error: the index stays empty.
	Restore(ctx context.Context) (bool, error)

	// ClearStorage deletes every snapshot file, best-effort: a failed
	// individual delete is logged and the loop continues.
	ClearStorage(ctx context.Context) error
}
