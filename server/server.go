// Package server is the RAIRE HTTP transport: a single POST /raire endpoint
// that decodes a Problem, runs raire.Solve, and encodes the Solution, plus a
// health check and static asset serving for an accompanying web UI.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
)

// Server is the RAIRE HTTP server.
type Server struct {
	httpServer *http.Server
	handler    http.Handler
	logger     *slog.Logger
}

// ServerConfig holds the dependencies and settings needed to build a Server.
type ServerConfig struct {
	Port      int
	StaticDir string // empty disables static asset serving
	Logger    *slog.Logger
}

// New builds a Server with all routes and middleware wired in.
func New(cfg ServerConfig) *Server {
	h := &Handlers{logger: cfg.Logger}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /raire", h.handleRaire)
	mux.HandleFunc("GET /health", h.handleHealth)
	if cfg.StaticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(cfg.StaticDir)))
	}

	var handler http.Handler = mux
	handler = recoveryMiddleware(cfg.Logger, handler)
	handler = loggingMiddleware(cfg.Logger, handler)
	handler = requestIDMiddleware(handler)

	return &Server{
		httpServer: &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Port),
			Handler: handler,
		},
		handler: handler,
		logger:  cfg.Logger,
	}
}

// Handler returns the root HTTP handler, for use in tests.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start begins serving HTTP requests; it blocks until the server stops.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("http server shutting down")
	return s.httpServer.Shutdown(ctx)
}
