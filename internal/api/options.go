package api

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/hijri/middlewares"
	"github.com/dmitrymomot/hijri/pkg/health"
)

// Option configures a Server.
type Option func(*Server)

func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithAddress sets the listen address. Default: ":8080".
func WithAddress(addr string) Option {
	return func(s *Server) {
		if addr != "" {
			s.server.Addr = addr
		}
	}
}

// WithReadTimeout sets http.Server.ReadTimeout. Default: 15s.
func WithReadTimeout(d time.Duration) Option {
	return func(s *Server) {
		s.server.ReadTimeout = d
	}
}

// WithWriteTimeout sets http.Server.WriteTimeout. Default: 30s.
func WithWriteTimeout(d time.Duration) Option {
	return func(s *Server) {
		s.server.WriteTimeout = d
	}
}

// WithIdleTimeout sets http.Server.IdleTimeout. Default: 120s.
func WithIdleTimeout(d time.Duration) Option {
	return func(s *Server) {
		s.server.IdleTimeout = d
	}
}

// WithMiddleware appends global middleware, applied in order.
func WithMiddleware(mw ...middlewares.Middleware) Option {
	return func(s *Server) {
		s.middlewares = append(s.middlewares, mw...)
	}
}

// WithRoutes registers route groups.
func WithRoutes(r ...Routes) Option {
	return func(s *Server) {
		s.routes = append(s.routes, r...)
	}
}

// WithShutdownTimeout bounds the graceful shutdown. Default: 30s.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.shutdownTimeout = d
		}
	}
}

// WithShutdownHook registers a function run after the server stopped.
// Hooks run in registration order.
func WithShutdownHook(fn func(context.Context) error) Option {
	return func(s *Server) {
		s.shutdownHooks = append(s.shutdownHooks, fn)
	}
}

type healthConfig struct {
	livenessPath  string
	readinessPath string
	checks        health.Checks
}

// HealthOption configures the health endpoints.
type HealthOption func(*healthConfig)

// WithLivenessPath overrides "/health/live".
func WithLivenessPath(path string) HealthOption {
	return func(c *healthConfig) {
		c.livenessPath = path
	}
}

// WithReadinessPath overrides "/health/ready".
func WithReadinessPath(path string) HealthOption {
	return func(c *healthConfig) {
		c.readinessPath = path
	}
}

// WithReadinessCheck adds a named readiness check.
func WithReadinessCheck(name string, fn health.CheckFunc) HealthOption {
	return func(c *healthConfig) {
		c.checks[name] = fn
	}
}

// WithHealthChecks mounts the liveness and readiness endpoints.
func WithHealthChecks(opts ...HealthOption) Option {
	return func(s *Server) {
		cfg := &healthConfig{
			livenessPath:  "/health/live",
			readinessPath: "/health/ready",
			checks:        health.Checks{},
		}
		for _, opt := range opts {
			opt(cfg)
		}
		s.health = cfg
	}
}
