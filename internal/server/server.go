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

	"github.com/google/uuid"

	"github.com/careerkit/career-tools/internal/llm"
	"github.com/careerkit/career-tools/internal/quota"
	"github.com/careerkit/career-tools/internal/validation"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	quotas     quota.Store
	llmClient  llm.Client
	generator  *llm.Generator
	validator  *validation.Validator
}

// Config holds server configuration
type Config struct {
	Port            int
	APIKey          string
	LLM             *llm.Config
	UpstreamTimeout time.Duration
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	client, err := llm.NewClient(context.Background(), cfg.LLM, cfg.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create generation client: %w", err)
	}

	s := newServer(client, quota.NewLimiter(quota.LoadConfig()), cfg.UpstreamTimeout)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 90 * time.Second, // generation calls can run long
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// newServer wires the pipeline components. Split from New so tests can
// inject a mock generation client and quota store.
func newServer(client llm.Client, quotas quota.Store, upstreamTimeout time.Duration) *Server {
	return &Server{
		quotas:    quotas,
		llmClient: client,
		generator: llm.NewGenerator(client, upstreamTimeout),
		validator: validation.New(),
	}
}

// Handler returns the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/cover-letter", s.handleCoverLetter)
	mux.HandleFunc("POST /api/salary", s.handleSalary)
	mux.HandleFunc("POST /api/leadership", s.handleLeadership)
	mux.HandleFunc("GET /health", s.handleHealth)

	return s.withLogging(s.withCORS(mux))
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
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

	s.quotas.Stop()
	if err := s.llmClient.Close(); err != nil {
		log.Printf("Error closing generation client: %v", err)
	}

	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging. Only method, path, and timing are
// logged: request bodies contain submitted resumes and must never be
// written anywhere.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()
		start := time.Now()
		log.Printf("[%s] %s %s %s", requestID, r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s %s completed in %v", requestID, r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
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
func (s *Server) errorResponse(w http.ResponseWriter, status int, resp ErrorResponse) {
	s.jsonResponse(w, status, resp)
}

// extractClientID extracts the quota identity from the request. This is the
// remote IP: an opaque bucketing key, not authentication.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, d quota.Decision) {
	if d.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", d.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", d.Remaining))
		w.Header().Set("X-RateLimit-Reset", d.ResetTime.UTC().Format(time.RFC3339))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response for a denied
// quota decision.
func (s *Server) rateLimitResponse(w http.ResponseWriter, d quota.Decision) {
	retryAfter := int(d.RetryAfter.Seconds())
	if retryAfter < 1 {
		retryAfter = 1
	}
	w.Header().Set("Retry-After", fmt.Sprintf("%d", retryAfter))

	minutes := (retryAfter + 59) / 60
	log.Printf("[rate-limit] Quota exceeded: Limit=%d Reset=%s",
		d.Limit, d.ResetTime.UTC().Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, ErrorResponse{
		Error:      ErrorRateLimit,
		Message:    fmt.Sprintf("You've reached the limit of %d requests for this tool. Please try again in %d minutes.", d.Limit, minutes),
		RetryAfter: retryAfter,
	})
}
