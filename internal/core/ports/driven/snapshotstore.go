package driven

import (
	"context"
	"time"
)

// SnapshotInfo describes one stored snapshot file.
type SnapshotInfo struct {
	// Filename is the storage key.
	Filename string `json:"filename"`

	// Size is the stored size in bytes.
	Size int64 `json:"size"`

	// Modified is the last modification time.
	Modified time.Time `json:"modified"`

	// Created is the creation time, where the backend tracks it.
	Created time.Time `json:"created"`
}

// SnapshotStore is filename-keyed durable blob storage for index
// snapshots. The reference deployment is an HTTP file-storage service;
// local directory and SQLite backends implement the same contract.
type SnapshotStore interface {
	// Save stores a snapshot blob under the given filename,
	// replacing any existing blob with the same name.
	Save(ctx context.Context, filename string, data []byte) error

	// List enumerates stored snapshots, newest first.
	List(ctx context.Context) ([]SnapshotInfo, error)

	// Load retrieves a snapshot blob by filename.
	Load(ctx context.Context, filename string) ([]byte, error)

	// Delete removes a snapshot by filename.
	Delete(ctx context.Context, filename string) error
}
