// Package server wires the report workflow behind an HTTP API.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/your-org/swot-reporter/api/handlers"
	"github.com/your-org/swot-reporter/llm/agents"
	"github.com/your-org/swot-reporter/llm/tools"
	"github.com/your-org/swot-reporter/llm/workflow"
)

// Config holds server configuration
type Config struct {
	Address         string
	UseCache        bool
	ShutdownTimeout time.Duration
}

// Server represents the report server
type Server struct {
	config Config
	router *mux.Router
	server *http.Server
	logger zerolog.Logger
}

// New creates a new server instance
func New(cfg Config, generator *workflow.ReportGenerator, agentRegistry *agents.Registry, toolRegistry *tools.Registry, logger zerolog.Logger) *Server {
	if cfg.Address == "" {
		cfg.Address = ":8080"
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}

	s := &Server{
		config: cfg,
		router: mux.NewRouter(),
		logger: logger,
	}

	reportHandler := handlers.NewReportHandler(generator, cfg.UseCache, logger)
	agentHandler := handlers.NewAgentHandler(agentRegistry, toolRegistry)

	s.router.Use(s.loggingMiddleware)

	s.router.HandleFunc("/reports", reportHandler.GenerateReport).Methods("POST")
	s.router.HandleFunc("/agents", agentHandler.ListAgents).Methods("GET")
	s.router.HandleFunc("/tools", agentHandler.ListTools).Methods("GET")
	s.router.HandleFunc("/health", s.handleHealth).Methods("GET")

	s.server = &http.Server{
		Addr:         cfg.Address,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 15 * time.Minute, // report generation chains several model calls
	}

	return s
}

// Handler returns the root HTTP handler (for tests)
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the server and blocks until a shutdown signal arrives
func (s *Server) Start() error {
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		s.logger.Info().Msg("shutting down server")
		ctx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			s.logger.Error().Err(err).Msg("server shutdown error")
		}
	}()

	s.logger.Info().Str("address", s.config.Address).Msg("starting report server")

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}

	s.logger.Info().Msg("server stopped")
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status": "healthy"}`))
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}
