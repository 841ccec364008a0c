// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okian/pubgate/internal/domain/types"
	"github.com/okian/pubgate/pkg/logger"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	Dog(ctx context.Context) (types.DogImage, error)
	Cat(ctx context.Context) (types.CatImage, error)
	Joke(ctx context.Context) (types.Joke, error)
	Advice(ctx context.Context) (types.Advice, error)
	Age(ctx context.Context, name string) (types.AgePrediction, error)
	Country(ctx context.Context, name string) (types.CountryDetail, error)
	Universities(ctx context.Context, country string) (types.CountryUniversities, error)
	UniversitiesGrouped(ctx context.Context, country string) (types.CountryUniversities, error)
	Bored(ctx context.Context, activityType string) (types.Activity, error)
	Quote(ctx context.Context) (types.Quote, error)
}

// Server wires HTTP routes for the gateway API.
type Server struct {
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	resourceHandler *ResourceHandler

	quotesEnabled bool
	logger        logger.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithQuotes toggles registration of /quotes/.
func WithQuotes(enabled bool) Option {
	return func(s *Server) {
		s.quotesEnabled = enabled
	}
}

// WithLogger sets the access and panic logger.
func WithLogger(l logger.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...Option) *Server {
	s := &Server{
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(statsProvider),
		resourceHandler: NewResourceHandler(deps),
		quotesEnabled:   true,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Nop()
	}
	return s
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	mux.HandleFunc("GET /healthz", s.wrap(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("GET /metrics", s.healthHandler.HandleMetrics)
	mux.HandleFunc("GET /stats", s.wrap(s.statsHandler.HandleStats, "stats"))

	h := s.resourceHandler
	mux.HandleFunc("GET /dog/{$}", s.wrap(h.HandleDog, "dog"))
	mux.HandleFunc("GET /cat/{$}", s.wrap(h.HandleCat, "cat"))
	mux.HandleFunc("GET /joke/{$}", s.wrap(h.HandleJoke, "joke"))
	mux.HandleFunc("GET /advice/{$}", s.wrap(h.HandleAdvice, "advice"))
	mux.HandleFunc("GET /age/{$}", s.wrap(h.HandleAge, "age"))
	mux.HandleFunc("GET /country/{$}", s.wrap(h.HandleCountry, "country"))
	mux.HandleFunc("GET /universities/{$}", s.wrap(h.HandleUniversities, "universities"))
	mux.HandleFunc("GET /universities/pro/{$}", s.wrap(h.HandleUniversitiesGrouped, "universities_pro"))
	mux.HandleFunc("GET /bored/{$}", s.wrap(h.HandleBored, "bored"))
	if s.quotesEnabled {
		mux.HandleFunc("GET /quotes/{$}", s.wrap(h.HandleQuote, "quotes"))
	}
}

// wrap applies the middleware chain shared by every JSON route.
func (s *Server) wrap(next http.HandlerFunc, endpoint string) http.HandlerFunc {
	next = RecoverMiddleware(next, s.logger)
	next = MetricsMiddleware(next, endpoint)
	next = LoggingMiddleware(next, endpoint, s.logger)
	return RequestIDMiddleware(next)
}

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string, fields map[string]string) {
	writeJSON(w, status, errorResponse{Error: msg, Fields: fields})
}
