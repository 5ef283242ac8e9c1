// SPDX-License-Identifier: MIT
//
// File: server.go
// Role: HTTP surface over the indoor model and the graph store.
// Routes:
//   POST   /v1/hypergraph                    derive from a posted export document
//   GET    /v1/graphs                        list stored graphs
//   PUT    /v1/graphs/{name}                 store a document (If-Match for conditional update)
//   GET    /v1/graphs/{name}                 stored document (ETag = revision)
//   DELETE /v1/graphs/{name}                 remove
//   GET    /v1/graphs/{name}/hypergraph      derived hypergraph of a stored graph
//   GET    /v1/graphs/{name}/stats           counts and extent
//   POST   /v1/graphs/{name}/rlines/seed     seed relational lines and save
//   POST   /v1/graphs/{name}/rlines/check    validate one relational line
//   GET    /healthz, GET /metrics

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/katalvlaran/indoorjson/indoor"
	"github.com/katalvlaran/indoorjson/jsonio"
	"github.com/katalvlaran/indoorjson/store"
)

// GraphStore is the persistence the server needs; *store.Store implements it.
type GraphStore interface {
	Save(ctx context.Context, name string, g *indoor.Graph) (store.Revision, error)
	SaveIfMatch(ctx context.Context, name string, g *indoor.Graph, expected store.Revision) (store.Revision, error)
	Load(ctx context.Context, name string) (*indoor.Graph, store.Revision, error)
	Document(ctx context.Context, name string) ([]byte, store.Revision, error)
	List(ctx context.Context) ([]store.Entry, error)
	Delete(ctx context.Context, name string) error
	Ping(ctx context.Context) error
}

// Options tune the HTTP surface.
type Options struct {
	// Indent is used for JSON responses; empty means compact.
	Indent string
	// MaxBodyBytes caps request bodies; ≤ 0 disables the cap.
	MaxBodyBytes int64
	// CORSOrigins lists allowed origins; empty disables CORS handling.
	CORSOrigins []string
	// Namespace prefixes Prometheus metric names.
	Namespace string
}

// Server serves the indoorjson API.
type Server struct {
	store    GraphStore
	logger   *zap.Logger
	metrics  *Metrics
	validate *validator.Validate
	opts     Options
}

// New returns a Server over st. A nil logger disables logging.
func New(st GraphStore, logger *zap.Logger, opts Options) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Namespace == "" {
		opts.Namespace = "indoorjson"
	}

	return &Server{
		store:    st,
		logger:   logger,
		metrics:  NewMetrics(opts.Namespace),
		validate: newValidator(),
		opts:     opts,
	}
}

// Metrics returns the server's collectors.
func (s *Server) Metrics() *Metrics { return s.metrics }

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(requestLogger(s.logger))
	router.Use(s.metrics.instrument)
	if len(s.opts.CORSOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: s.opts.CORSOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "If-Match", "If-None-Match", "X-Request-ID"},
			ExposedHeaders: []string{"ETag", "X-Request-ID"},
			MaxAge:         300,
		}))
	}

	router.Get("/healthz", s.healthz)
	router.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	router.Route("/v1", func(r chi.Router) {
		r.Post("/hypergraph", s.deriveHypergraph)
		r.Route("/graphs", func(r chi.Router) {
			r.Get("/", s.listGraphs)
			r.Route("/{name}", func(r chi.Router) {
				r.Put("/", s.putGraph)
				r.Get("/", s.getGraph)
				r.Delete("/", s.deleteGraph)
				r.Get("/hypergraph", s.getHypergraph)
				r.Get("/stats", s.getStats)
				r.Post("/rlines/seed", s.seedRLines)
				r.Post("/rlines/check", s.checkRLine)
			})
		})
	})

	return router
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down gracefully
// within shutdownTimeout.
func (s *Server) ListenAndServe(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("ListenAndServe: %w", err)
	}

	return s.Serve(ctx, ln, shutdownTimeout)
}

// Serve is ListenAndServe over an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", zap.String("addr", ln.Addr().String()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("Serve: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("server shutting down", zap.Duration("timeout", shutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("Serve: shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("Serve: %w", err)
	}

	return nil
}

// respond writes v as JSON with the given status.
func (s *Server) respond(w http.ResponseWriter, status int, v any) {
	b, err := jsonio.Marshal(v, s.opts.Indent)
	if err != nil {
		s.logger.Error("encode response", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}
