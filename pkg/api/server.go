package api

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yourusername/sokoengine/pkg/engine"
	"github.com/yourusername/sokoengine/pkg/level"
)

// ServerConfig holds the server configuration.
type ServerConfig struct {
	Addr         string        // Listen address (default ":8080")
	ReadTimeout  time.Duration // Read timeout (default 30s)
	WriteTimeout time.Duration // Write timeout; must exceed the solve time limit (default 120s)
	IdleTimeout  time.Duration // Idle timeout (default 60s)
	FastWorkers  int           // Max concurrent fast operations (default 16)
	SlowWorkers  int           // Max concurrent solves (default 4)
}

// DefaultServerConfig returns a ServerConfig with sensible defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:         ":8080",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
		FastWorkers:  16,
		SlowWorkers:  4,
	}
}

// Server is the HTTP API server.
type Server struct {
	config   ServerConfig
	handlers *Handlers
	server   *http.Server
	pool     *WorkerPool
	version  string
}

// NewServer creates an API server. The collection may be nil.
func NewServer(config ServerConfig, defaults engine.Options, collection *level.Collection, version string) *Server {
	pool := NewWorkerPool(PoolConfig{
		FastWorkers: config.FastWorkers,
		SlowWorkers: config.SlowWorkers,
	})
	return &Server{
		config:   config,
		handlers: NewHandlers(version, pool, defaults, collection),
		pool:     pool,
		version:  version,
	}
}

// Pool returns the worker pool for monitoring.
func (s *Server) Pool() *WorkerPool {
	return s.pool
}

// corsMiddleware adds CORS headers for browser access.
func corsMiddleware(next http.Handler) http.Handler {
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

// loggingMiddleware logs all requests.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// setupRoutes configures all API routes.
func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", s.handlers.Health)
	mux.HandleFunc("POST /api/solve", s.handlers.Solve)
	mux.HandleFunc("GET /api/solve/stream", s.handlers.SolveSSE)
	mux.HandleFunc("POST /api/replay", s.handlers.Replay)
	mux.HandleFunc("GET /api/generate", s.handlers.Generate)
	mux.HandleFunc("GET /api/levels", s.handlers.Levels)
	mux.HandleFunc("GET /api/levels/{number}", s.handlers.LevelByNumber)
	mux.HandleFunc("/api/ws", s.handlers.WebSocket)

	mux.Handle("GET /metrics", promhttp.Handler())

	return corsMiddleware(loggingMiddleware(mux))
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         s.config.Addr,
		Handler:      s.setupRoutes(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	log.Printf("Starting sokoengine API server v%s on %s", s.version, s.config.Addr)
	log.Printf("Endpoints:")
	log.Printf("  GET  /api/health        - Health check and pool stats")
	log.Printf("  POST /api/solve         - Solve a board")
	log.Printf("  GET  /api/solve/stream  - Solve with SSE progress")
	log.Printf("  POST /api/replay        - Verify a move sequence")
	log.Printf("  GET  /api/generate      - Generate a solvable board")
	log.Printf("  GET  /api/levels        - List the loaded collection")
	log.Printf("  WS   /api/ws            - WebSocket solve/replay")
	log.Printf("  GET  /metrics           - Prometheus metrics")

	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// ListenAndServeWithGracefulShutdown starts the server and handles shutdown
// signals.
func (s *Server) ListenAndServeWithGracefulShutdown() error {
	errChan := make(chan error, 1)

	go func() {
		if err := s.Start(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-quit:
		log.Printf("Received signal %v, shutting down...", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Println("Server stopped gracefully")
	return nil
}
