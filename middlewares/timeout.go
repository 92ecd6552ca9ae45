package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

// DefaultTimeout is the default request timeout.
const DefaultTimeout = 30 * time.Second

type timeoutConfig struct {
	timeout time.Duration
	logger  *slog.Logger
	respond func(w http.ResponseWriter, r *http.Request, terr *TimeoutError)
}

// TimeoutOption configures Timeout.
type TimeoutOption func(*timeoutConfig)

// WithTimeoutLogger logs exceeded deadlines at Warn.
func WithTimeoutLogger(log *slog.Logger) TimeoutOption {
	return func(cfg *timeoutConfig) {
		cfg.logger = log
	}
}

// WithTimeoutResponder replaces the default 503 JSON response.
func WithTimeoutResponder(fn func(w http.ResponseWriter, r *http.Request, terr *TimeoutError)) TimeoutOption {
	return func(cfg *timeoutConfig) {
		if fn != nil {
			cfg.respond = fn
		}
	}
}

// Timeout puts a deadline on the request context. Handlers are expected to
// observe ctx.Done(). When the deadline passed and the handler wrote
// nothing, a 503 response is sent. A non-positive timeout uses DefaultTimeout.
func Timeout(timeout time.Duration, opts ...TimeoutOption) Middleware {
	cfg := &timeoutConfig{
		timeout: timeout,
		respond: writeTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.timeout <= 0 {
		cfg.timeout = DefaultTimeout
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), cfg.timeout)
			defer cancel()

			sw := &statusWriter{ResponseWriter: w}
			next.ServeHTTP(sw, r.WithContext(ctx))

			if !errors.Is(ctx.Err(), context.DeadlineExceeded) || sw.written() {
				return
			}
			if cfg.logger != nil {
				cfg.logger.WarnContext(ctx, "request timeout", slog.String("timeout", cfg.timeout.String()))
			}
			cfg.respond(w, r, &TimeoutError{Duration: cfg.timeout})
		})
	}
}

func writeTimeout(w http.ResponseWriter, _ *http.Request, terr *TimeoutError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusServiceUnavailable)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": terr.Error(),
		"code":  "timeout",
	})
}
