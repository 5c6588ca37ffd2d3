package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/veldt-labs/ragvault/internal/core/ports/driven"
)

// stubEmbedder returns a deterministic vector per text so tests can
// assert alignment without a live model.
type stubEmbedder struct {
	model string

	// failOn aborts the call when the prompt matches.
	failOn string

	calls []string
}

func newStubEmbedder() *stubEmbedder {
	return &stubEmbedder{model: "nomic-embed-text"}
}

func (e *stubEmbedder) Embed(_ context.Context, text string) ([]float64, error) {
	e.calls = append(e.calls, text)
	if e.failOn != "" && text == e.failOn {
		return nil, errors.New("stub embedder failure")
	}
	return []float64{float64(len(text)), 1}, nil
}

func (e *stubEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float64, error) {
	vectors := make([][]float64, len(texts))
	for i, t := range texts {
		v, err := e.Embed(ctx, t)
		if err != nil {
			return nil, fmt.Errorf("embed text %d: %w", i, err)
		}
		vectors[i] = v
	}
	return vectors, nil
}

func (e *stubEmbedder) ModelName() string { return e.model }

func (e *stubEmbedder) Ping(context.Context) error { return nil }

// memStore is an in-memory snapshot store. List order is most
// recently saved first, mirroring the mtime ordering of the real
// backends.
type memStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
	order []string

	saveErr error
	listErr error
}

func newMemStore() *memStore {
	return &memStore{blobs: make(map[string][]byte)}
}

func (s *memStore) Save(_ context.Context, filename string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	if _, exists := s.blobs[filename]; !exists {
		s.order = append([]string{filename}, s.order...)
	}
	s.blobs[filename] = data
	return nil
}

func (s *memStore) List(context.Context) ([]driven.SnapshotInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	infos := make([]driven.SnapshotInfo, 0, len(s.order))
	for i, name := range s.order {
		infos = append(infos, driven.SnapshotInfo{
			Filename: name,
			Size:     int64(len(s.blobs[name])),
			Modified: time.Now().Add(-time.Duration(i) * time.Minute),
		})
	}
	return infos, nil
}

func (s *memStore) Load(_ context.Context, filename string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.blobs[filename]
	if !ok {
		return nil, errors.New("not found: " + filename)
	}
	return data, nil
}

func (s *memStore) Delete(_ context.Context, filename string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.blobs[filename]; !ok {
		return errors.New("not found: " + filename)
	}
	delete(s.blobs, filename)
	for i, name := range s.order {
		if name == filename {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *memStore) filenames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.order...)
}

// stubConfig is a map-backed config store.
type stubConfig struct {
	mu   sync.Mutex
	data map[string]any
}

func newStubConfig() *stubConfig {
	return &stubConfig{data: make(map[string]any)}
}

func (c *stubConfig) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	return v, ok
}

func (c *stubConfig) GetString(key string) string {
	v, _ := c.Get(key)
	s, _ := v.(string)
	return s
}

func (c *stubConfig) GetInt(key string) int {
	v, _ := c.Get(key)
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	default:
		return 0
	}
}

func (c *stubConfig) GetBool(key string) bool {
	v, _ := c.Get(key)
	b, _ := v.(bool)
	return b
}

func (c *stubConfig) Set(key string, value any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *stubConfig) Save() error { return nil }

func (c *stubConfig) Load() error { return nil }

func (c *stubConfig) Path() string { return "stub" }
