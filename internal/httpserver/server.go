// Package httpserver serves the read-only browse API over the local
// catalog. All writes go through the CLI.
package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mesh-intelligence/scratchbook/internal/httpserver/deps"
	"github.com/mesh-intelligence/scratchbook/internal/httpserver/mw"
	"github.com/mesh-intelligence/scratchbook/internal/httpserver/routes"
	"github.com/mesh-intelligence/scratchbook/internal/logger"
)

// DefaultListenAddr keeps the API on loopback; it has no authentication.
const DefaultListenAddr = "127.0.0.1:8787"

// Server wraps the HTTP server and its dependencies.
type Server struct {
	http   *http.Server
	logger logger.Logger
}

// NewRouter builds the router with middlewares and every registered route.
func NewRouter(d deps.Deps) http.Handler {
	d = withDefaults(d)
	r := chi.NewRouter()

	r.Use(middleware.GetHead)
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(mw.Log(d.Logger))

	routes.RegisterAll(r, d)
	return r
}

// New builds the HTTP server listening on addr.
func New(addr string, d deps.Deps) *Server {
	if addr == "" {
		addr = DefaultListenAddr
	}
	d = withDefaults(d)
	return &Server{
		http: &http.Server{
			Addr:              addr,
			Handler:           NewRouter(d),
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
		logger: d.Logger,
	}
}

// Addr returns the configured listen address.
func (s *Server) Addr() string { return s.http.Addr }

// Start runs the HTTP server (blocks until error or shutdown).
func (s *Server) Start() error {
	s.logger.Infof("HTTP server listening on %s", s.http.Addr)
	err := s.http.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Stop gracefully shuts down the server with the provided context deadline.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("HTTP server shutting down")
	return s.http.Shutdown(ctx)
}

func withDefaults(d deps.Deps) deps.Deps {
	if d.Logger == nil {
		d.Logger = logger.NewNop()
	}
	if d.StartTime.IsZero() {
		d.StartTime = time.Now()
	}
	if d.TimeNow == nil {
		d.TimeNow = time.Now
	}
	return d
}
