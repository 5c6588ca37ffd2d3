// Package sqlite provides a snapshot store backed by a single SQLite
// database file. Useful when snapshots should live in one portable
// file instead of a directory of JSON blobs.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/veldt-labs/ragvault/internal/core/domain"
	"github.com/veldt-labs/ragvault/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.SnapshotStore = (*Store)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	filename   TEXT PRIMARY KEY,
	data       BLOB NOT NULL,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
`

// Store keeps snapshot blobs in a snapshots table keyed by filename.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (or creates) the snapshot database at the specified
// data directory. If dataDir is empty, defaults to ~/.ragvault/data.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".ragvault", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "snapshots.db")

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Save upserts a snapshot blob, preserving the original creation time
// on replace.
func (s *Store) Save(ctx context.Context, filename string, data []byte) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO snapshots (filename, data, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(filename) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at
	`, filename, data, now, now)
	if err != nil {
		return fmt.Errorf("%w: saving %s: %v", domain.ErrPersistence, filename, err)
	}
	return nil
}

// List enumerates stored snapshots, newest first.
func (s *Store) List(ctx context.Context) ([]driven.SnapshotInfo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT filename, length(data), created_at, updated_at
		FROM snapshots
		ORDER BY updated_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("%w: listing snapshots: %v", domain.ErrPersistence, err)
	}
	defer rows.Close()

	var infos []driven.SnapshotInfo
	for rows.Next() {
		var info driven.SnapshotInfo
		var createdAt, updatedAt string
		if err := rows.Scan(&info.Filename, &info.Size, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: scanning snapshot row: %v", domain.ErrPersistence, err)
		}
		info.Created, _ = time.Parse(time.RFC3339Nano, createdAt)
		info.Modified, _ = time.Parse(time.RFC3339Nano, updatedAt)
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating snapshots: %v", domain.ErrPersistence, err)
	}
	return infos, nil
}

// Load retrieves a snapshot blob by filename.
func (s *Store) Load(ctx context.Context, filename string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM snapshots WHERE filename = ?`, filename,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: snapshot %s", domain.ErrNotFound, filename)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: loading %s: %v", domain.ErrPersistence, filename, err)
	}
	return data, nil
}

// Delete removes a snapshot by filename.
func (s *Store) Delete(ctx context.Context, filename string) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM snapshots WHERE filename = ?`, filename,
	)
	if err != nil {
		return fmt.Errorf("%w: deleting %s: %v", domain.ErrPersistence, filename, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: deleting %s: %v", domain.ErrPersistence, filename, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: snapshot %s", domain.ErrNotFound, filename)
	}
	return nil
}
