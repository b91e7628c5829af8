// Package server provides the HTTP REST API for the recruiting dashboard.
// Every handler is a thin translator: read parameters, call into the catalog,
// synthesis, criteria, or scoring packages, shape the JSON.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/andrei/hirescope/internal/barem"
	"github.com/andrei/hirescope/internal/catalog"
	"github.com/andrei/hirescope/internal/config"
	"github.com/andrei/hirescope/internal/scoring"
	"github.com/andrei/hirescope/internal/server/ratelimit"
)

// Server represents the HTTP server and its collaborators.
type Server struct {
	httpServer  *http.Server
	scanner     *catalog.Scanner
	store       barem.Store
	scoring     *scoring.Client
	validate    *validator.Validate
	rateLimiter *ratelimit.Limiter

	pgStore    *barem.PostgresStore
	redisCache *scoring.RedisCache
}

// New wires a server from configuration. The criteria store is Postgres when
// DATABASE_URL is set, in-memory otherwise; the score cache is Redis when
// REDIS_URL is set; the scoring client is nil without SCORING_URL and the
// proxy endpoints answer 503.
func New(cfg *config.Config) (*Server, error) {
	s := &Server{
		scanner:  catalog.New(cfg.DataRoot),
		validate: validator.New(),
	}

	if cfg.DatabaseURL != "" {
		pg, err := barem.ConnectPostgres(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect criteria store: %w", err)
		}
		s.pgStore = pg
		s.store = pg
	} else {
		s.store = barem.NewMemoryStore()
	}

	var cache scoring.Cache
	if cfg.RedisURL != "" {
		rc, err := scoring.NewRedisCache(context.Background(), cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect score cache: %w", err)
		}
		s.redisCache = rc
		cache = rc
	}

	if cfg.ScoringURL != "" {
		s.scoring = scoring.NewClient(cfg.ScoringURL, cache)
	}

	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	// Job listing endpoints
	mux.HandleFunc("GET /jobs", s.handleListJobs)
	mux.HandleFunc("GET /jobs/{id}", s.handleGetJob)
	mux.HandleFunc("GET /jobs/{id}/candidates", s.handleListCandidates)
	mux.HandleFunc("GET /jobs/{id}/description", s.handleGetDescription)
	mux.HandleFunc("GET /jobs/{id}/requirements", s.handleGetRequirements)
	mux.HandleFunc("GET /jobs/{id}/scores", s.handleGetScores)
	mux.HandleFunc("POST /jobs/{id}/extract-skills", s.handleExtractSkills)
	mux.HandleFunc("POST /jobs/{id}/match", s.handleMatchCandidate)

	// Assessment criteria endpoints
	mux.HandleFunc("GET /criteria", s.handleListCriteria)
	mux.HandleFunc("GET /criteria/{title}", s.handleGetCriteria)
	mux.HandleFunc("PUT /criteria/{title}", s.handlePutCriteria)
	mux.HandleFunc("DELETE /criteria/{title}", s.handleDeleteCriteria)
	mux.HandleFunc("POST /criteria/{title}/distribute", s.handleDistributeCriteria)
	mux.HandleFunc("POST /criteria/{title}/analyze", s.handleAnalyze)

	return mux
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.rateLimiter.Stop()
	if s.pgStore != nil {
		s.pgStore.Close()
	}
	if s.redisCache != nil {
		_ = s.redisCache.Close()
	}
	log.Println("Server stopped")
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// withCORS adds CORS headers for the dashboard front-end
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging with a per-request id
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqID := uuid.NewString()[:8]
		log.Printf("[%s] %s %s %s", reqID, r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s %s completed in %v", reqID, r.Method, r.URL.Path, time.Since(start))
	})
}

// withRateLimit throttles per client IP
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			clientID = r.RemoteAddr
		}
		allowed, remaining := s.rateLimiter.Allow(clientID)
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))
		if !allowed {
			s.errorResponse(w, http.StatusTooManyRequests, "Rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}
