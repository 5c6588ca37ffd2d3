package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// SnapshotVersion is the current snapshot file format version.
const SnapshotVersion = "1.0"

// DocumentEntry pairs a document ID with the document itself. On the
// wire it is a two-element array [id, document], which keeps the file
// format compatible with index snapshots written by the browser
// client.
type DocumentEntry struct {
	ID       string
	Document Document
}

// MarshalJSON encodes the entry as [id, document].
func (e DocumentEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{e.ID, e.Document})
}

// UnmarshalJSON decodes the [id, document] pair form.
func (e *DocumentEntry) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 2 {
		return fmt.Errorf("document entry: expected [id, document] pair, got %d elements", len(raw))
	}
	if err := json.Unmarshal(raw[0], &e.ID); err != nil {
		return fmt.Errorf("document entry id: %w", err)
	}
	if err := json.Unmarshal(raw[1], &e.Document); err != nil {
		return fmt.Errorf("document entry value: %w", err)
	}
	return nil
}

// ChunkListEntry pairs a document ID with that document's ordered
// chunk list. Wire form is [id, chunks].
type ChunkListEntry struct {
	ID     string
	Chunks []Chunk
}

// MarshalJSON encodes the entry as [id, chunks].
func (e ChunkListEntry) MarshalJSON() ([]byte, error) {
	chunks := e.Chunks
	if chunks == nil {
		chunks = []Chunk{}
	}
	return json.Marshal([2]any{e.ID, chunks})
}

// UnmarshalJSON decodes the [id, chunks] pair form.
func (e *ChunkListEntry) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 2 {
		return fmt.Errorf("chunk entry: expected [id, chunks] pair, got %d elements", len(raw))
	}
	if err := json.Unmarshal(raw[0], &e.ID); err != nil {
		return fmt.Errorf("chunk entry id: %w", err)
	}
	if err := json.Unmarshal(raw[1], &e.Chunks); err != nil {
		return fmt.Errorf("chunk entry value: %w", err)
	}
	return nil
}

// EmbeddingListEntry pairs a document ID with that document's
// embeddings, array-aligned with the corresponding chunk list.
// Wire form is [id, embeddings].
type EmbeddingListEntry struct {
	ID         string
	Embeddings []Embedding
}

// MarshalJSON encodes the entry as [id, embeddings].
func (e EmbeddingListEntry) MarshalJSON() ([]byte, error) {
	embeddings := e.Embeddings
	if embeddings == nil {
		embeddings = []Embedding{}
	}
	return json.Marshal([2]any{e.ID, embeddings})
}

// UnmarshalJSON decodes the [id, embeddings] pair form.
func (e *EmbeddingListEntry) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 2 {
		return fmt.Errorf("embedding entry: expected [id, embeddings] pair, got %d elements", len(raw))
	}
	if err := json.Unmarshal(raw[0], &e.ID); err != nil {
		return fmt.Errorf("embedding entry id: %w", err)
	}
	if err := json.Unmarshal(raw[1], &e.Embeddings); err != nil {
		return fmt.Errorf("embedding entry value: %w", err)
	}
	return nil
}

// Snapshot is a complete serialised copy of the vector index and its
// settings: the unit of durable persistence. One snapshot file
// represents the entire index state at a point in time.
type Snapshot struct {
	// Version is the snapshot format version, currently "1.0".
	Version string `json:"version"`

	// Timestamp is when the snapshot was taken.
	Timestamp time.Time `json:"timestamp"`

	// Settings are the index settings in effect at snapshot time.
	Settings IndexSettings `json:"settings"`

	// Documents, Chunks and Embeddings carry the full index state as
	// [documentID, value] pair arrays, in document insertion order.
	Documents  []DocumentEntry      `json:"documents"`
	Chunks     []ChunkListEntry     `json:"chunks"`
	Embeddings []EmbeddingListEntry `json:"embeddings"`
}

// Validate checks the snapshot carries every required top-level field.
// A snapshot may legitimately be empty, but the field arrays must be
// present: their absence means the payload is not a snapshot at all.
func (s *Snapshot) Validate() error {
	if s.Version == "" {
		return fmt.Errorf("%w: missing version", ErrMalformedSnapshot)
	}
	if s.Documents == nil {
		return fmt.Errorf("%w: missing documents", ErrMalformedSnapshot)
	}
	if s.Chunks == nil {
		return fmt.Errorf("%w: missing chunks", ErrMalformedSnapshot)
	}
	if s.Embeddings == nil {
		return fmt.Errorf("%w: missing embeddings", ErrMalformedSnapshot)
	}
	return nil
}

// ParseSnapshot decodes and validates snapshot JSON. The returned
// snapshot is safe to swap into an index wholesale; on any error the
// caller's state should be left untouched.
func ParseSnapshot(data []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}
	if err := snap.Validate(); err != nil {
		return nil, err
	}
	return &snap, nil
}
