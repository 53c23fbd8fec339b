// Package http serves the JSON API: login gate, registries, transaction entry,
// dashboard and exports.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"logisystem/internal/core"
	"logisystem/internal/services"
	"logisystem/internal/store"
)

type contextKey string

const requestIDKey contextKey = "request_id"

// overviewCache holds the single dashboard aggregate with a TTL. Any write to
// the transaction collection invalidates it.
type overviewCache struct {
	mu      sync.Mutex
	data    core.Overview
	expires time.Time
	ok      bool
}

func (c *overviewCache) Get() (core.Overview, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.ok || time.Now().After(c.expires) {
		return core.Overview{}, false
	}
	return c.data, true
}

func (c *overviewCache) Set(ov core.Overview, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data = ov
	c.expires = time.Now().Add(ttl)
	c.ok = true
}

func (c *overviewCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ok = false
}

type Server struct {
	http.Server

	store    *store.Store
	builder  *services.Builder
	registry *services.RegistryService

	adminEmail    string
	adminPassword string
	saveDelay     time.Duration

	rateLimiter  *rateLimiter
	overview     *overviewCache
	shutdownOnce sync.Once
}

// NewServer configures routes and middleware, returning a ready-to-run server.
func NewServer(addr string, st *store.Store, builder *services.Builder, registry *services.RegistryService, adminEmail, adminPassword string, saveDelay time.Duration) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: mux,
		},
		store:         st,
		builder:       builder,
		registry:      registry,
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
		saveDelay:     saveDelay,
		rateLimiter:   newRateLimiter(),
		overview:      &overviewCache{},
	}

	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/readyz", handleReady)

	mux.HandleFunc("/login", s.withSecurityHeaders(s.handleLogin))
	mux.HandleFunc("/logout", s.withSecurityHeaders(s.requireAuth(s.handleLogout)))

	mux.HandleFunc("/employees", s.withSecurityHeaders(s.requireAuth(s.handleEmployees)))
	mux.HandleFunc("/trucks", s.withSecurityHeaders(s.requireAuth(s.handleTrucks)))
	mux.HandleFunc("/trucks/delete", s.withSecurityHeaders(s.requireAuth(s.handleDeleteTruck)))
	mux.HandleFunc("/accounts", s.withSecurityHeaders(s.requireAuth(s.handleAccounts)))

	mux.HandleFunc("/transactions", s.withSecurityHeaders(s.requireAuth(s.handleTransactions)))
	mux.HandleFunc("/transactions/void", s.withSecurityHeaders(s.requireAuth(s.handleVoidTransaction)))

	mux.HandleFunc("/dashboard", s.withSecurityHeaders(s.requireAuth(s.handleDashboard)))
	mux.HandleFunc("/export/", s.withSecurityHeaders(s.requireAuth(s.handleExport)))
	mux.HandleFunc("/preferences/fold", s.withSecurityHeaders(s.requireAuth(s.handleFoldPreference)))

	return s
}

// withSecurityHeaders adds security headers, rate limiting, and request logging.
func (s *Server) withSecurityHeaders(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		clientIP := extractClientIP(r)

		requestID := uuid.NewString()
		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		r = r.WithContext(ctx)
		w.Header().Set("X-Request-ID", requestID)

		slog.InfoContext(ctx, "Request started",
			"request_id", requestID,
			"method", r.Method,
			"url", r.URL.Path,
			"client_ip", clientIP,
			"user_agent", r.Header.Get("User-Agent"))

		if r.Method == http.MethodPost && !s.rateLimiter.allow(clientIP) {
			slog.WarnContext(ctx, "Rate limit exceeded", "client_ip", clientIP, "method", r.Method, "url", r.URL.Path)
			w.Header().Set("Retry-After", "60")
			http.Error(w, "Rate limit exceeded. Please try again later.", http.StatusTooManyRequests)
			return
		}

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next(rw, r)

		duration := time.Since(start)
		slog.InfoContext(ctx, "Request completed",
			"request_id", requestID,
			"method", r.Method,
			"url", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"client_ip", clientIP)
	}
}

// requireAuth rejects requests made before a successful login.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.store.Authenticated() {
			writeError(w, http.StatusUnauthorized, "login required")
			return
		}
		next(w, r)
	}
}

// Shutdown gracefully shuts down the server and cleanup routines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		if s.rateLimiter != nil {
			s.rateLimiter.stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
