// Package api exposes the ranking pipeline over HTTP.
//
// The API is a thin layer over [pipeline.Runner]: it accepts a link graph
// as JSON, runs both estimators, and returns the distributions. All
// domain logic lives in pkg/ so the CLI and API cannot drift apart.
package api

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/linkrank/linkrank/pkg/buildinfo"
	"github.com/linkrank/linkrank/pkg/errors"
	"github.com/linkrank/linkrank/pkg/graph"
	"github.com/linkrank/linkrank/pkg/pipeline"
	"github.com/linkrank/linkrank/pkg/rank"
)

// maxBodyBytes bounds request bodies so a giant graph can't exhaust memory.
const maxBodyBytes = 8 << 20

// Server handles HTTP requests for the ranking API.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
}

// New creates a server backed by the given runner.
// A nil logger falls back to the default logger.
func New(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{runner: runner, logger: logger}
}

// Handler returns the HTTP handler with all routes and middleware wired.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Get("/v1/healthz", s.handleHealthz)
	r.Post("/v1/rank", s.handleRank)

	return r
}

// requestLogger tags each request with an ID and logs its outcome.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)

		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		s.logger.Info("request",
			"id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start))
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

// rankRequest is the POST /v1/rank body. The graph is an adjacency map of
// page name to outgoing link targets; every target must itself be a key.
type rankRequest struct {
	Graph     map[string][]string `json:"graph"`
	Damping   *float64            `json:"damping,omitempty"`
	Samples   *int                `json:"samples,omitempty"`
	Threshold *float64            `json:"threshold,omitempty"`
	Seed      *int64              `json:"seed,omitempty"`
}

type rankResponse struct {
	RunID     string             `json:"run_id"`
	GraphHash string             `json:"graph_hash"`
	Sampled   rank.Distribution  `json:"sampled"`
	Iterated  rank.Distribution  `json:"iterated"`
	Stats     pipeline.Stats     `json:"stats"`
	Cache     pipeline.CacheInfo `json:"cache"`
}

func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	var req rankRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body"))
		return
	}

	g, err := graph.New(req.Graph)
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeMalformedGraph, err, "invalid graph"))
		return
	}

	opts := rank.DefaultOptions()
	if req.Damping != nil {
		opts.Damping = *req.Damping
	}
	if req.Samples != nil {
		opts.Samples = *req.Samples
	}
	if req.Threshold != nil {
		opts.Threshold = *req.Threshold
	}
	if req.Seed != nil {
		opts.Rand = rand.New(rand.NewSource(*req.Seed))
	}

	result, err := s.runner.Execute(r.Context(), pipeline.Options{Graph: g, Rank: opts})
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, rankResponse{
		RunID:     result.RunID,
		GraphHash: result.GraphHash,
		Sampled:   result.Sampled,
		Iterated:  result.Iterated,
		Stats:     result.Stats,
		Cache:     result.CacheInfo,
	})
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := statusForCode(code)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "code", code, "err", err)
	}
	writeJSON(w, status, errorResponse{
		Code:  string(code),
		Error: errors.UserMessage(err),
	})
}

func statusForCode(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput,
		errors.ErrCodeInvalidDamping,
		errors.ErrCodeInvalidSamples,
		errors.ErrCodeInvalidThreshold,
		errors.ErrCodeInvalidPath,
		errors.ErrCodeUnknownPage,
		errors.ErrCodeMalformedGraph:
		return http.StatusBadRequest
	case errors.ErrCodeConvergence:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
