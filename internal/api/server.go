package api

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/hijri/middlewares"
	"github.com/dmitrymomot/hijri/pkg/health"
	"github.com/dmitrymomot/hijri/pkg/logger"
)

// Default server timeouts.
const (
	defaultReadTimeout       = 15 * time.Second
	defaultWriteTimeout      = 30 * time.Second
	defaultIdleTimeout       = 120 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
	defaultMaxHeaderBytes    = 1 << 20
	defaultShutdownTimeout   = 30 * time.Second
)

// Routes registers handlers on a router.
type Routes interface {
	Routes(r chi.Router)
}

// Server owns the HTTP listener and its graceful shutdown. It is
// immutable after New.
type Server struct {
	logger *slog.Logger

	server      *http.Server
	router      chi.Router
	middlewares []middlewares.Middleware
	routes      []Routes
	health      *healthConfig

	shutdownTimeout time.Duration
	shutdownHooks   []func(ctx context.Context) error

	setup    sync.Once
	mu       sync.Mutex
	listener net.Listener
	done     chan struct{}
	stopOnce sync.Once
}

// New creates a server listening on ":8080" unless WithAddress says otherwise.
func New(opts ...Option) *Server {
	router := chi.NewRouter()

	s := &Server{
		logger:          logger.NewNope(),
		router:          router,
		shutdownTimeout: defaultShutdownTimeout,
		done:            make(chan struct{}),
		server: &http.Server{
			Addr:              ":8080",
			Handler:           router,
			ReadTimeout:       defaultReadTimeout,
			WriteTimeout:      defaultWriteTimeout,
			IdleTimeout:       defaultIdleTimeout,
			ReadHeaderTimeout: defaultReadHeaderTimeout,
			MaxHeaderBytes:    defaultMaxHeaderBytes,
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Handler returns the fully routed handler, e.g. for httptest.
func (s *Server) Handler() http.Handler {
	s.setup.Do(s.setupRoutes)
	return s.server.Handler
}

// Run serves until ctx is cancelled, SIGINT or SIGTERM arrives, or Stop is
// called, then shuts the server down and runs the shutdown hooks in order.
// It returns nil on a clean shutdown.
func (s *Server) Run(ctx context.Context) error {
	s.setup.Do(s.setupRoutes)

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.listener = ln
	s.mu.Unlock()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", slog.String("address", ln.Addr().String()))
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	case <-s.done:
	}

	s.logger.Info("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer shutdownCancel()

	var errs []error
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, err)
	}

	for _, hook := range s.shutdownHooks {
		if err := hook(shutdownCtx); err != nil {
			errs = append(errs, err)
			s.logger.Error("shutdown hook failed", slog.Any("error", err))
		}
	}

	if len(errs) > 0 {
		s.logger.Error("shutdown completed with errors")
		return errors.Join(errs...)
	}

	s.logger.Info("shutdown completed")
	return nil
}

// Stop triggers a graceful shutdown of Run. It is safe to call repeatedly.
func (s *Server) Stop() {
	s.stopOnce.Do(func() { close(s.done) })
}

// Addr returns the listening address, or "" before Run.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

func (s *Server) setupRoutes() {
	s.router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, &HTTPError{Status: http.StatusNotFound, Code: "not_found", Message: "route not found"})
	})
	s.router.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, &HTTPError{Status: http.StatusMethodNotAllowed, Code: "method_not_allowed", Message: "method not allowed"})
	})

	for _, mw := range s.middlewares {
		s.router.Use(mw)
	}

	if s.health != nil {
		s.router.Get(s.health.livenessPath, health.LivenessHandler())
		s.router.Get(s.health.readinessPath, health.ReadinessHandler(s.health.checks, health.WithLogger(s.logger)))
	}

	for _, r := range s.routes {
		r.Routes(s.router)
	}
}
