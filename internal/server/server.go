// Package server implements the gridda browser preview.
//
// The server holds exactly one [notebook.State] snapshot. Every mutating
// request computes a new snapshot from the current one and swaps it in
// atomically; readers always see a complete snapshot and never block on a
// writer. Geometry is recomputed on every request.
package server

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/gridda/pkg/notebook"
	"github.com/matzehuels/gridda/pkg/pipeline"
)

const (
	shutdownTimeout = 5 * time.Second
	maxBodyBytes    = 1 << 20
)

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request and pipeline logger.
func WithLogger(l *log.Logger) Option { return func(s *Server) { s.logger = l } }

// WithSavePath enables POST /api/save, which writes the current state to path
// as TOML.
func WithSavePath(path string) Option { return func(s *Server) { s.savePath = path } }

// Server serves the preview UI and its JSON API.
type Server struct {
	logger   *log.Logger
	runner   *pipeline.Runner
	savePath string

	state atomic.Pointer[notebook.State]
	mu    sync.Mutex // serialises writers
}

// New creates a server holding initial.
func New(initial notebook.State, opts ...Option) *Server {
	s := &Server{}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	s.runner = pipeline.NewRunner(s.logger.WithPrefix("pipeline"))
	s.state.Store(&initial)
	return s
}

// State returns the current snapshot.
func (s *Server) State() notebook.State { return *s.state.Load() }

// update applies fn to the current snapshot and publishes the result. A
// failing fn leaves the current snapshot in place.
func (s *Server) update(fn func(notebook.State) (notebook.State, error)) (notebook.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := fn(*s.state.Load())
	if err != nil {
		return notebook.State{}, err
	}
	s.state.Store(&next)
	return next, nil
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestSize(maxBodyBytes))

	r.Get("/", s.handlePreview)
	r.Get("/healthz", s.handleHealth)
	r.Get("/notebook.pdf", s.handlePDF)
	r.Get("/pages/{id}.svg", s.handlePageSVG)

	r.Route("/api", func(r chi.Router) {
		r.Get("/papers", s.handlePapers)
		r.Get("/state", s.handleGetState)
		r.Put("/state", s.handlePutState)
		r.Get("/layout", s.handleLayout)
		r.Post("/save", s.handleSave)

		r.Post("/pages", s.handleAddPage)
		r.Route("/pages/{id}", func(r chi.Router) {
			r.Patch("/", s.handleSetTitle)
			r.Delete("/", s.handleRemovePage)
			r.Post("/move", s.handleMovePage)
			r.Post("/toggle", s.handleToggle)
		})

		r.Post("/selection/all", s.handleSelectAll)
		r.Delete("/selection", s.handleClearSelection)
	})
	return r
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.logger.Info("preview server listening", "addr", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return ctx.Err()
}
