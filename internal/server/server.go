// Package server implements the HTTP preview server behind "fundomain serve".
//
// Routes:
//
//	GET /healthz                    liveness and build version
//	GET /cosets/{group}             representatives as JSON
//	GET /domain/{group}.{format}    a rendered artifact, e.g. /domain/gamma0(11).svg
//
// The domain routes accept the query parameters choice, seed, labels and
// limit with the same meaning as the render command flags.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/fundomain/pkg/cache"
	"github.com/matzehuels/fundomain/pkg/pipeline"
)

const shutdownTimeout = 5 * time.Second

// Server renders fundamental domains on request.
type Server struct {
	runner   *pipeline.Runner
	logger   *log.Logger
	cache    cache.Cache
	cacheTTL time.Duration
}

// Option configures a Server.
type Option func(*Server)

// WithCache keeps rendered artifacts in c for ttl. Without it nothing is
// cached.
func WithCache(c cache.Cache, ttl time.Duration) Option {
	return func(s *Server) {
		s.cache = c
		s.cacheTTL = ttl
	}
}

// New creates a server that runs the pipeline with runner.
func New(runner *pipeline.Runner, logger *log.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if runner == nil {
		runner = pipeline.NewRunner(logger)
	}
	s := &Server{runner: runner, logger: logger, cache: cache.NewNullCache()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the router with all routes and middleware registered.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(s.recoverMiddleware)
	r.Use(s.loggingMiddleware)

	r.Get("/healthz", s.healthz)
	r.Get("/cosets/{group}", s.cosets)
	r.Get("/domain/{group}.{format}", s.domain)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "no route for "+r.URL.Path)
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	}
}
