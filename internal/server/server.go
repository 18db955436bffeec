// Package server provides the HTTP REST API over the achievement block catalog.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/google/uuid"

	"github.com/jonathan/achievement-blocks/internal/catalog"
	"github.com/jonathan/achievement-blocks/internal/db"
)

// Persistence stores imported catalogs and reads them back. *db.DB satisfies it.
type Persistence interface {
	SaveCatalog(ctx context.Context, input db.ImportInput) (*db.ImportRun, error)
	GetImportRun(ctx context.Context, id uuid.UUID) (*db.ImportRun, error)
	GetBlock(ctx context.Context, id uuid.UUID) (*db.StoredBlock, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	store      *catalog.Store
	loader     *catalog.Loader
	saver      Persistence
	logger     *zap.Logger
	topN       int
	maxBlocks  int
}

// Config holds server configuration
type Config struct {
	Port      int
	Store     *catalog.Store
	Loader    *catalog.Loader
	Saver     Persistence // optional; nil disables persisted imports and stored lookups
	Logger    *zap.Logger
	TopN      int
	MaxBlocks int
}

// New creates a new server instance
func New(cfg Config) *Server {
	s := &Server{
		store:     cfg.Store,
		loader:    cfg.Loader,
		saver:     cfg.Saver,
		logger:    cfg.Logger,
		topN:      cfg.TopN,
		maxBlocks: cfg.MaxBlocks,
	}
	if s.store == nil {
		s.store = catalog.NewStore(nil)
	}
	if s.loader == nil {
		s.loader = catalog.NewLoader(catalog.DefaultOptions())
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler returns the routed handler wrapped in the middleware chain
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("GET /blocks", s.handleSearchBlocks)
	mux.HandleFunc("GET /blocks/categories", s.handleCategories)
	mux.HandleFunc("GET /blocks/stats", s.handleStats)
	mux.HandleFunc("POST /blocks/import", s.handleImport)
	mux.HandleFunc("POST /blocks/rank", s.handleRank)
	mux.HandleFunc("POST /blocks/select", s.handleSelect)
	mux.HandleFunc("GET /blocks/imports/{id}", s.handleGetImportRun)
	mux.HandleFunc("GET /blocks/stored/{id}", s.handleGetStoredBlock)

	return s.withLogging(s.withCORS(mux))
}

// Start listens until Shutdown is called. A clean shutdown returns nil.
func (s *Server) Start() error {
	s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr), zap.Int("blocks", s.store.Load().Len()))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones until ctx expires
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the status code written by a handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote", r.RemoteAddr),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("error encoding JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// failure maps err to its status code and writes it
func (s *Server) failure(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", zap.Error(err))
	}
	s.errorResponse(w, status, err.Error())
}
