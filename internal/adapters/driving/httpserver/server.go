// Package httpserver exposes the vector-storage HTTP contract backed
// by any snapshot store. Running it gives browser clients and other
// ragvault processes a shared durable store.
package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/veldt-labs/ragvault/internal/core/domain"
	"github.com/veldt-labs/ragvault/internal/core/ports/driven"
	"github.com/veldt-labs/ragvault/internal/logger"
)

// DefaultAddr is the listen address the reference deployment uses.
const DefaultAddr = ":3001"

// Server serves the vector-storage endpoints.
type Server struct {
	store driven.SnapshotStore
	http  *http.Server
}

// saveRequest mirrors the client's save payload. Data is kept raw so
// the stored bytes are exactly what the client produced.
type saveRequest struct {
	Filename string          `json:"filename"`
	Data     json.RawMessage `json:"data"`
}

// NewServer creates a server on addr backed by store. An empty addr
// uses DefaultAddr.
func NewServer(addr string, store driven.SnapshotStore) *Server {
	if addr == "" {
		addr = DefaultAddr
	}

	s := &Server{store: store}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Route("/api/vector-storage", func(r chi.Router) {
		r.Post("/save", s.handleSave)
		r.Get("/list", s.handleList)
		r.Get("/load/{filename}", s.handleLoad)
		r.Delete("/delete/{filename}", s.handleDelete)
	})

	s.http = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Handler returns the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// ListenAndServe blocks serving requests until Shutdown or failure.
func (s *Server) ListenAndServe() error {
	logger.Info("storage server listening on %s", s.http.Addr)
	err := s.http.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	var req saveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Filename == "" || len(req.Data) == 0 {
		writeError(w, http.StatusBadRequest, "filename and data are required")
		return
	}

	if err := s.store.Save(r.Context(), req.Filename, req.Data); err != nil {
		logger.Warn("save %s: %v", req.Filename, err)
		writeError(w, http.StatusInternalServerError, "failed to save snapshot")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"filename": req.Filename,
		"location": "/api/vector-storage/load/" + req.Filename,
	})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	infos, err := s.store.List(r.Context())
	if err != nil {
		logger.Warn("list snapshots: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list snapshots")
		return
	}
	if infos == nil {
		infos = []driven.SnapshotInfo{}
	}
	writeJSON(w, http.StatusOK, infos)
}

func (s *Server) handleLoad(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")

	data, err := s.store.Load(r.Context(), filename)
	if errors.Is(err, domain.ErrNotFound) {
		writeError(w, http.StatusNotFound, "snapshot not found")
		return
	}
	if err != nil {
		logger.Warn("load %s: %v", filename, err)
		writeError(w, http.StatusInternalServerError, "failed to load snapshot")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")

	err := s.store.Delete(r.Context(), filename)
	if errors.Is(err, domain.ErrNotFound) {
		writeError(w, http.StatusNotFound, "snapshot not found")
		return
	}
	if err != nil {
		logger.Warn("delete %s: %v", filename, err)
		writeError(w, http.StatusInternalServerError, "failed to delete snapshot")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"error": msg})
}
