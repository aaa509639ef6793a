// Package server provides the HTTP REST API for the résumé builder.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/server/middleware"
	"github.com/jonathan/resume-builder/internal/server/ratelimit"
	"github.com/jonathan/resume-builder/internal/session"
	"golang.org/x/sync/errgroup"
)

// maxBodyBytes bounds every JSON request body.
const maxBodyBytes = 1 << 20

// Server represents the HTTP server
type Server struct {
	httpServer    *http.Server
	store         *session.Store
	tokens        *TokenService
	rateLimiter   *ratelimit.Limiter
	sweepInterval time.Duration
	draftEnabled  bool
}

// Config holds server configuration
type Config struct {
	Port    int
	Session *config.SessionConfig
	Deps    session.Deps
	// RateLimit defaults to ratelimit.LoadConfig().
	RateLimit     *ratelimit.Config
	SweepInterval time.Duration
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	if cfg.Session == nil {
		return nil, fmt.Errorf("session config is required")
	}
	if cfg.RateLimit == nil {
		cfg.RateLimit = ratelimit.LoadConfig()
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = time.Minute
	}

	s := &Server{
		store:         session.NewStore(cfg.Deps, cfg.Session.TTL()),
		tokens:        NewTokenService(cfg.Session),
		rateLimiter:   ratelimit.NewLimiter(cfg.RateLimit),
		sweepInterval: cfg.SweepInterval,
		draftEnabled:  cfg.Deps.LLM != nil,
	}

	auth := middleware.AuthMiddleware(s.tokens.AsTokenValidator(), "id")
	authed := func(h http.HandlerFunc) http.Handler { return auth(h) }

	// Setup router
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /templates", s.handleTemplates)
	mux.HandleFunc("GET /options", s.handleOptions)
	mux.HandleFunc("POST /sessions", s.handleCreateSession)

	// Session endpoints (bearer token bound to {id})
	mux.Handle("GET /sessions/{id}", authed(s.handleGetSession))
	mux.Handle("PATCH /sessions/{id}", authed(s.handlePatchSession))
	mux.Handle("DELETE /sessions/{id}", authed(s.handleDeleteSession))
	mux.Handle("POST /sessions/{id}/actions", authed(s.handleAction))
	mux.Handle("GET /sessions/{id}/document", authed(s.handleDocument))
	mux.Handle("GET /sessions/{id}/validation", authed(s.handleValidation))

	// Preview and export
	mux.Handle("GET /sessions/{id}/preview", authed(s.handlePreview))
	mux.Handle("POST /sessions/{id}/zoom", authed(s.handleZoom))
	mux.Handle("POST /sessions/{id}/export", authed(s.handleExport))

	// AI draft assistant
	mux.Handle("POST /sessions/{id}/drafts", authed(s.handleStartDraft))
	mux.Handle("POST /sessions/{id}/drafts/stream", authed(s.handleStreamDraft))
	mux.Handle("GET /sessions/{id}/drafts", authed(s.handleDraftState))
	mux.Handle("PUT /sessions/{id}/drafts/text", authed(s.handleEditDraft))
	mux.Handle("POST /sessions/{id}/drafts/regenerate", authed(s.handleRegenerateDraft))
	mux.Handle("POST /sessions/{id}/drafts/apply", authed(s.handleApplyDraft))
	mux.Handle("DELETE /sessions/{id}/drafts", authed(s.handleCancelDraft))

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 180 * time.Second, // Long timeout for waited drafts and PDF export
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start runs the server until SIGINT or SIGTERM.
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Run(ctx)
}

// Run serves requests and sweeps idle sessions until ctx is done, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return s.store.RunJanitor(gctx, s.sweepInterval)
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Println("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := s.httpServer.Shutdown(shutdownCtx)

		// Stop rate limiter cleanup goroutine and background session work
		s.rateLimiter.Stop()
		s.store.Close()

		if err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		log.Println("Server stopped")
		return nil
	})

	return g.Wait()
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Accept-Language")
		w.Header().Set("Access-Control-Expose-Headers", "Content-Disposition, X-Page-Count")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":        "ok",
		"sessions":      s.store.Len(),
		"draft_enabled": s.draftEnabled,
	})
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
	s.jsonResponse(w, status, errorBody{Error: message})
}

// errorFrom writes err with the status HTTPStatus assigns it.
func (s *Server) errorFrom(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Printf("[ERROR] %v", err)
	}
	s.jsonResponse(w, status, publicError(err))
}

// decodeJSON decodes the request body into v. An empty body leaves v untouched.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return &ErrValidation{Field: "body", Message: err.Error()}
	}
	return nil
}

// extractClientID extracts the client identifier from the request.
// This uses the IP address from RemoteAddr; proxies are not trusted.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		seconds := int(info.RetryAfter.Seconds() + 0.999)
		response["retry_after"] = seconds
		w.Header().Set("Retry-After", fmt.Sprintf("%d", seconds))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
