// Package server hosts the rendered site over HTTP.
//
// It wires the page routes, static assets, health and metrics endpoints
// behind a chi router with logging, metrics, and tracing middleware.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/marketfront/marketfront/internal/config"
	"github.com/marketfront/marketfront/internal/dev"
	"github.com/marketfront/marketfront/internal/site"
	"github.com/marketfront/marketfront/pkg/render"
)

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetrics sets the server metrics. Pass nil to disable.
func WithMetrics(metrics *Metrics) Option {
	return func(s *Server) {
		s.metrics = metrics
		s.metricsSet = true
	}
}

// WithTracing enables the OpenTelemetry request middleware.
func WithTracing(opts ...OTelOption) Option {
	return func(s *Server) {
		s.tracing = OpenTelemetry(opts...)
	}
}

// WithRoutes overrides the page routes. The default is site.Routes().
func WithRoutes(routes map[string]func() render.PageData) Option {
	return func(s *Server) {
		s.routes = routes
	}
}

// WithDevReload mounts the live-reload WebSocket endpoint and injects
// the reload client script into every rendered page.
func WithDevReload(reload *dev.ReloadServer) Option {
	return func(s *Server) {
		s.reload = reload
	}
}

// Server serves the rendered site.
type Server struct {
	cfg     *config.Config
	logger  *slog.Logger
	metrics *Metrics
	tracing func(http.Handler) http.Handler
	routes  map[string]func() render.PageData
	reload  *dev.ReloadServer

	metricsSet bool
	httpServer *http.Server
}

// New creates a Server from the project configuration.
func New(cfg *config.Config, opts ...Option) *Server {
	s := &Server{
		cfg:    cfg,
		routes: site.Routes(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	s.logger = s.logger.With("component", "server")
	if !s.metricsSet {
		s.metrics = NewMetrics()
	}
	return s
}

// Handler builds the HTTP handler with all routes and middleware.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(RequestLogger(s.logger))
	if s.metrics != nil {
		r.Use(InFlight(s.metrics))
	}
	if s.tracing != nil {
		r.Use(s.tracing)
	}

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	if s.reload != nil {
		r.Get(dev.ReloadPath, s.reload.HandleWebSocket)
	}

	if s.cfg.Static.Dir != "" {
		static := newStaticHandler(os.DirFS(s.cfg.Static.Dir), s.cfg.Static.Prefix, s.metrics)
		r.Handle(s.cfg.Static.Prefix+"*", static)
	}

	for route, build := range s.routes {
		r.Get(route, s.handlePage(route, build))
	}

	return r
}

// handlePage renders one page route with streaming output.
func (s *Server) handlePage(route string, build func() render.PageData) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		w.Header().Set("Content-Type", "text/html; charset=utf-8")

		page := build()
		if s.reload != nil {
			page.Scripts = append(page.Scripts, render.ScriptTag{Inline: dev.ClientScript})
		}

		sr := render.NewStreamingRenderer(w, render.RendererConfig{})
		err := sr.RenderPage(page)
		s.metrics.RecordRender(route, time.Since(start).Seconds(), err)

		if err != nil {
			// Headers are already written once streaming starts, so an
			// error status may not reach the client. Log it regardless.
			s.logger.Error("render failed", "route", route, "error", err)
		}
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

// Start runs the HTTP server until the context is canceled, then shuts
// down gracefully.
func (s *Server) Start(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.cfg.Address(),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.cfg.Address(), "url", s.cfg.URL())
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		return s.Shutdown()
	}
}

// Shutdown stops the server, allowing in-flight requests to finish.
func (s *Server) Shutdown() error {
	if s.httpServer == nil {
		return nil
	}
	s.logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
