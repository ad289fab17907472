package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/abhisek/genesis/internal/calibration"
	"github.com/abhisek/genesis/internal/compat"
	"github.com/abhisek/genesis/internal/profile"
	"github.com/abhisek/genesis/internal/registry"
	"github.com/abhisek/genesis/internal/scoring"
)

// CompatibilityRequest is the body of POST /v1/compatibility.
type CompatibilityRequest struct {
	A *scoring.AnalysisResult `json:"a"`
	B *scoring.AnalysisResult `json:"b"`
}

// RegistryResponse is the body of GET /v1/registry.
type RegistryResponse struct {
	TotalNodes int               `json:"totalNodes"`
	Domains    []registry.Domain `json:"domains"`
	Nodes      []registry.Node   `json:"nodes"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	h, ok := s.readHistory(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.engine.ComputeResult(h))
}

// handleAdaptive computes the live adaptive state. The baseline is the
// in-progress one unless ?baseline= overrides it.
func (s *Server) handleAdaptive(w http.ResponseWriter, r *http.Request) {
	h, ok := s.readHistory(w, r)
	if !ok {
		return
	}

	baseline := calibration.LiveBaseline(h)
	if v := r.URL.Query().Get("baseline"); v != "" {
		b, err := strconv.ParseFloat(v, 64)
		if err != nil || b <= 0 {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid baseline %q", v))
			return
		}
		baseline = b
	}
	writeJSON(w, http.StatusOK, s.seq.AdaptiveState(h, baseline))
}

func (s *Server) handleCompatibility(w http.ResponseWriter, r *http.Request) {
	var req CompatibilityRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}
	if req.A == nil || req.B == nil {
		writeError(w, http.StatusBadRequest, errors.New("both a and b results are required"))
		return
	}
	writeJSON(w, http.StatusOK, compat.Analyze(*req.A, *req.B))
}

func (s *Server) handleRegistry(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, RegistryResponse{
		TotalNodes: s.registry.TotalNodes(),
		Domains:    s.registry.Domains(),
		Nodes:      s.registry.Nodes(),
	})
}

// handleScans returns the full scan history, or the newest ?limit= scans.
func (s *Server) handleScans(w http.ResponseWriter, r *http.Request) {
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid limit %q", v))
			return
		}
		recs, err := s.scans.LatestScans(r.Context(), n)
		if err != nil {
			s.logger.Error("load scans failed", "error", err)
			writeError(w, http.StatusInternalServerError, errors.New("load scans failed"))
			return
		}
		writeJSON(w, http.StatusOK, recs)
		return
	}

	hist, err := s.scans.ScanHistory(r.Context())
	if err != nil {
		s.logger.Error("load scan history failed", "error", err)
		writeError(w, http.StatusInternalServerError, errors.New("load scan history failed"))
		return
	}
	writeJSON(w, http.StatusOK, hist)
}

// readHistory decodes and validates a history body, writing a 400 on
// failure.
func (s *Server) readHistory(w http.ResponseWriter, r *http.Request) (profile.History, bool) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("read body: %w", err))
		return nil, false
	}
	h, err := profile.ParseHistory(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return nil, false
	}
	return h, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
