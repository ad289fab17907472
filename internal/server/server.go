// Package server exposes the scoring, adaptive and compatibility engines as
// a JSON API.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/abhisek/genesis/internal/adaptive"
	"github.com/abhisek/genesis/internal/registry"
	"github.com/abhisek/genesis/internal/scoring"
	"github.com/abhisek/genesis/internal/store"
)

// maxBodyBytes caps request bodies. A full history is well below this.
const maxBodyBytes = 1 << 20

// Config holds server configuration.
type Config struct {
	Addr     string
	AllowAll bool // allow all CORS origins (dev mode)
}

// ScanSource reads persisted scans. *store.Store satisfies it.
type ScanSource interface {
	ScanHistory(ctx context.Context) (store.ScanHistory, error)
	LatestScans(ctx context.Context, limit int) ([]store.ScanRecord, error)
}

// Server serves the genesis JSON API.
type Server struct {
	cfg        Config
	registry   *registry.Registry
	engine     *scoring.Engine
	seq        *adaptive.Sequencer
	scans      ScanSource
	logger     *slog.Logger
	router     chi.Router
	httpServer *http.Server
}

// New creates a server. scans may be nil, in which case /v1/scans is not
// mounted.
func New(cfg Config, reg *registry.Registry, engine *scoring.Engine, seq *adaptive.Sequencer, scans ScanSource, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		cfg:      cfg,
		registry: reg,
		engine:   engine,
		seq:      seq,
		scans:    scans,
		logger:   logger,
	}
	s.router = s.buildRouter()
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/v1", func(r chi.Router) {
		r.Post("/analysis", s.handleAnalysis)
		r.Post("/adaptive", s.handleAdaptive)
		r.Post("/compatibility", s.handleCompatibility)
		r.Get("/registry", s.handleRegistry)
		if s.scans != nil {
			r.Get("/scans", s.handleScans)
		}
	})

	return r
}

// requestLogger logs one line per request through slog.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// Handler returns the router as an http.Handler.
func (s *Server) Handler() http.Handler { return s.router }

// Start begins listening on the configured address.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.logger.Info("genesis api listening", "addr", s.cfg.Addr, "allow_all_origins", s.cfg.AllowAll)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
