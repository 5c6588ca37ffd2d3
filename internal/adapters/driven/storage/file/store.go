// Package file provides a snapshot store backed by a local directory.
// Each snapshot is one JSON file; no external service is needed.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/veldt-labs/ragvault/internal/core/domain"
	"github.com/veldt-labs/ragvault/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.SnapshotStore = (*Store)(nil)

// Store persists snapshots as files in a single directory.
type Store struct {
	dir string
}

// NewStore creates a snapshot store rooted at dir, creating the
// directory if needed. If dir is empty, defaults to
// ~/.ragvault/snapshots.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dir = filepath.Join(home, ".ragvault", "snapshots")
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("%w: creating snapshot directory: %v", domain.ErrPersistence, err)
	}

	return &Store{dir: dir}, nil
}

// Dir returns the storage directory.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes the blob under filename, replacing any existing file.
func (s *Store) Save(_ context.Context, filename string, data []byte) error {
	path, err := s.resolve(filename)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("%w: writing %s: %v", domain.ErrPersistence, filename, err)
	}
	return nil
}

// List enumerates stored snapshot files, newest first by modification
// time.
func (s *Store) List(_ context.Context) ([]driven.SnapshotInfo, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: listing snapshots: %v", domain.ErrPersistence, err)
	}

	infos := make([]driven.SnapshotInfo, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		fi, err := e.Info()
		if err != nil {
			continue
		}
		infos = append(infos, driven.SnapshotInfo{
			Filename: e.Name(),
			Size:     fi.Size(),
			Modified: fi.ModTime(),
			Created:  fi.ModTime(),
		})
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Modified.After(infos[j].Modified)
	})
	return infos, nil
}

// Load reads a snapshot blob by filename.
func (s *Store) Load(_ context.Context, filename string) ([]byte, error) {
	path, err := s.resolve(filename)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: snapshot %s", domain.ErrNotFound, filename)
		}
		return nil, fmt.Errorf("%w: reading %s: %v", domain.ErrPersistence, filename, err)
	}
	return data, nil
}

// Delete removes a snapshot file. Deleting an absent file is an error
// so retention logic can detect drift.
func (s *Store) Delete(_ context.Context, filename string) error {
	path, err := s.resolve(filename)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: snapshot %s", domain.ErrNotFound, filename)
		}
		return fmt.Errorf("%w: deleting %s: %v", domain.ErrPersistence, filename, err)
	}
	return nil
}

// resolve joins filename onto the store directory, rejecting names
// that would escape it.
func (s *Store) resolve(filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) {
		return "", fmt.Errorf("%w: invalid snapshot filename %q", domain.ErrPersistence, filename)
	}
	return filepath.Join(s.dir, filename), nil
}
