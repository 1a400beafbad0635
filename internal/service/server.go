package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"

	"dsa/internal/graph"
	"dsa/internal/graph/compute"
	"dsa/internal/log"
)

const (
	DefaultAddr      = "127.0.0.1:8080"
	DefaultCacheSize = 256
	maxBodyBytes     = 4 << 20
	shutdownTimeout  = 10 * time.Second
)

// Config controls a Server.
type Config struct {
	Addr           string
	CacheSize      int
	RequestTimeout time.Duration // zero disables the per-request timeout
}

// Server serves the graph API.
type Server struct {
	cfg     Config
	graphs  *registry
	paths   *lru.Cache[string, *compute.Paths]
	metrics *metrics
	router  *chi.Mux
}

// New builds a Server. Zero config fields fall back to defaults.
func New(cfg Config) (*Server, error) {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultCacheSize
	}
	cache, err := lru.New[string, *compute.Paths](cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("route cache: %w", err)
	}
	s := &Server{
		cfg:     cfg,
		graphs:  newRegistry(),
		paths:   cache,
		metrics: newMetrics(),
	}
	s.router = s.routes()
	return s, nil
}

func (s *Server) routes() *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(chimw.RequestID)
	r.Use(s.metrics.instrument)
	if s.cfg.RequestTimeout > 0 {
		r.Use(chimw.Timeout(s.cfg.RequestTimeout))
	}

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", s.metrics.handler())

	r.Route("/graphs", func(r chi.Router) {
		r.Get("/", s.handleList)
		r.Post("/", s.handleUpload)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleFetch)
			r.Delete("/", s.handleDelete)
			r.Get("/route", s.handleRoute)
			r.Get("/mst", s.handleMST)
			r.Get("/components", s.handleComponents)
			r.Get("/cycles", s.handleCycles)
		})
	})
	return r
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.router }

// Import registers doc as if it had been uploaded.
func (s *Server) Import(doc graph.Document) (GraphInfo, error) {
	info, err := s.graphs.add(doc)
	if err != nil {
		return GraphInfo{}, err
	}
	s.metrics.graphs.Inc()
	return info, nil
}

// Run serves on cfg.Addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger := log.WithComponent("service")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info().Str("addr", ln.Addr().String()).Msg("listening")
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info().Msg("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
