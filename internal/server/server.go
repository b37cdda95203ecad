// Package server provides the HTTP REST API for letter generation.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prezlab/letter-generator/internal/config"
	"github.com/prezlab/letter-generator/internal/letters"
	"github.com/prezlab/letter-generator/internal/server/middleware"
)

// LetterService is the generation capability the handlers call. The
// concrete implementation is letters.Service; tests substitute fakes.
type LetterService interface {
	Generate(ctx context.Context, req letters.Request) (*letters.Result, error)
	Templates() []letters.Template
}

// Config holds server configuration.
type Config struct {
	Port    int
	Letters LetterService
	// JWT enables bearer-token authentication when non-nil.
	JWT *config.JWTConfig
}

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	letters    LetterService
}

// New creates a new server instance.
func New(cfg Config) (*Server, error) {
	if cfg.Letters == nil {
		return nil, fmt.Errorf("letter service is required")
	}
	s := &Server{letters: cfg.Letters}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /letters", s.handleGenerateLetter)
	mux.HandleFunc("GET /templates", s.handleListTemplates)
	mux.HandleFunc("GET /health", s.handleHealth)

	var handler http.Handler = mux
	if cfg.JWT != nil {
		jwtService := NewJWTService(cfg.JWT)
		handler = middleware.Auth(jwtService, []string{"/health"})(mux)
	}

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

// Start runs the server until SIGINT/SIGTERM, then shuts down gracefully.
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
	log.Println("Server stopped")
	return nil
}

// Handler exposes the configured handler for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}
