// Package httpapi provides a snapshot store client for the companion
// vector-storage HTTP service.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/veldt-labs/ragvault/internal/core/domain"
	"github.com/veldt-labs/ragvault/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.SnapshotStore = (*Store)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "http://localhost:3001"
	DefaultTimeout = 30 * time.Second
)

// Config holds configuration for the storage service client.
type Config struct {
	// BaseURL is the storage service base URL (default: http://localhost:3001).
	BaseURL string

	// Timeout is the per-request timeout (default: 30s).
	Timeout time.Duration
}

// Store talks to the vector-storage endpoints of the companion
// service.
type Store struct {
	client  *http.Client
	baseURL string
}

// saveRequest is the save endpoint request format. Data carries the
// snapshot JSON verbatim so the service stores exactly what the client
// produced.
type saveRequest struct {
	Filename string          `json:"filename"`
	Data     json.RawMessage `json:"data"`
}

// saveResponse is the save endpoint response format.
type saveResponse struct {
	Success  bool   `json:"success"`
	Filename string `json:"filename"`
	Location string `json:"location"`
}

// deleteResponse is the delete endpoint response format.
type deleteResponse struct {
	Success bool `json:"success"`
}

// NewStore creates a storage service client.
func NewStore(cfg Config) *Store {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Store{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
	}
}

// Save posts a snapshot blob to the service.
func (s *Store) Save(ctx context.Context, filename string, data []byte) error {
	body, err := json.Marshal(saveRequest{
		Filename: filename,
		Data:     json.RawMessage(data),
	})
	if err != nil {
		return fmt.Errorf("%w: marshal save request: %v", domain.ErrPersistence, err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		s.baseURL+"/api/vector-storage/save",
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: save request: %v", domain.ErrPersistence, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError("save", resp)
	}

	var saveResp saveResponse
	if err := json.NewDecoder(resp.Body).Decode(&saveResp); err != nil {
		return fmt.Errorf("%w: decode save response: %v", domain.ErrPersistence, err)
	}
	if !saveResp.Success {
		return fmt.Errorf("%w: storage service rejected save of %s", domain.ErrPersistence, filename)
	}
	return nil
}

// List fetches stored snapshots. The result is sorted newest first
// locally rather than trusting service-side ordering.
func (s *Store) List(ctx context.Context) ([]driven.SnapshotInfo, error) {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		s.baseURL+"/api/vector-storage/list",
		http.NoBody,
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: list request: %v", domain.ErrPersistence, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError("list", resp)
	}

	var infos []driven.SnapshotInfo
	if err := json.NewDecoder(resp.Body).Decode(&infos); err != nil {
		return nil, fmt.Errorf("%w: decode list response: %v", domain.ErrPersistence, err)
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Modified.After(infos[j].Modified)
	})
	return infos, nil
}

// Load fetches a snapshot blob by filename.
func (s *Store) Load(ctx context.Context, filename string) ([]byte, error) {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		s.baseURL+"/api/vector-storage/load/"+url.PathEscape(filename),
		http.NoBody,
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: load request: %v", domain.ErrPersistence, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: snapshot %s", domain.ErrNotFound, filename)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, statusError("load", resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read load response: %v", domain.ErrPersistence, err)
	}
	return data, nil
}

// Delete removes a snapshot by filename.
func (s *Store) Delete(ctx context.Context, filename string) error {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodDelete,
		s.baseURL+"/api/vector-storage/delete/"+url.PathEscape(filename),
		http.NoBody,
	)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: delete request: %v", domain.ErrPersistence, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: snapshot %s", domain.ErrNotFound, filename)
	}
	if resp.StatusCode != http.StatusOK {
		return statusError("delete", resp)
	}

	var delResp deleteResponse
	if err := json.NewDecoder(resp.Body).Decode(&delResp); err != nil {
		return fmt.Errorf("%w: decode delete response: %v", domain.ErrPersistence, err)
	}
	if !delResp.Success {
		return fmt.Errorf("%w: storage service rejected delete of %s", domain.ErrPersistence, filename)
	}
	return nil
}

func statusError(op string, resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %s: storage service status %d", domain.ErrPersistence, op, resp.StatusCode)
	}
	return fmt.Errorf("%w: %s: storage service status %d: %s", domain.ErrPersistence, op, resp.StatusCode, string(body))
}
