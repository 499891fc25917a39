package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/copygate/internal/analytics"
	"github.com/jonathan/copygate/internal/repair"
	"github.com/jonathan/copygate/internal/rules"
	"github.com/jonathan/copygate/internal/server/admission"
)

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	reg        *rules.Registry
	fixer      *repair.Fixer
	emitter    analytics.Emitter
	admission  *admission.Guard
	logger     *zap.Logger
	testMode   bool
}

// Config holds server configuration.
type Config struct {
	Port     int
	TestMode bool
}

// New creates a new server instance over the given collaborators.
func New(cfg Config, reg *rules.Registry, fixer *repair.Fixer, emitter analytics.Emitter, logger *zap.Logger) *Server {
	if emitter == nil {
		emitter = analytics.Nop{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		reg:       reg,
		fixer:     fixer,
		emitter:   emitter,
		admission: admission.NewGuard(),
		logger:    logger,
		testMode:  cfg.TestMode,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /evaluate", s.handleEvaluate)
	mux.HandleFunc("POST /fix", s.handleFix)
	mux.HandleFunc("GET /content-types", s.handleContentTypes)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", analytics.Handler())

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(mux),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // fix operations may wait on the generator
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		s.logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// Handler exposes the root handler for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// withLogging logs each request with method, path, status, and duration.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
