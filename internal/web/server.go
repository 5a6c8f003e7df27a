// Package web exposes the estimate API: one endpoint per project type that
// runs the matching calculator and then the pricing chain.
package web

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/diaz199379-ctrl/quickquote-app-sub000/internal/domain"
	"github.com/diaz199379-ctrl/quickquote-app-sub000/internal/estimate"
	"github.com/diaz199379-ctrl/quickquote-app-sub000/internal/pricing"
)

// pricer is the subset of pricing.Fetcher the server requires.
type pricer interface {
	FetchPricing(ctx context.Context, items []domain.MaterialItem, zipCode string, complexity pricing.Complexity) *domain.PricingResult
}

type Server struct {
	pricer pricer
	book   estimate.Costbook
	router chi.Router
	logger *slog.Logger
}

func NewServer(p pricer, book estimate.Costbook, logger *slog.Logger) *Server {
	s := &Server{
		pricer: p,
		book:   book,
		router: chi.NewRouter(),
		logger: logger,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	s.router.Post("/api/estimates/deck", s.handleDeckEstimate)
	s.router.Post("/api/estimates/kitchen", s.handleKitchenEstimate)
	s.router.Post("/api/estimates/bathroom", s.handleBathroomEstimate)
}

// statusRecorder wraps http.ResponseWriter to capture the written status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestLogger(s.logger, s.router).ServeHTTP(w, r)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}
