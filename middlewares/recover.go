package middlewares

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"runtime"
)

// DefaultStackSize is the stack trace capture limit in bytes.
const DefaultStackSize = 4096

type recoverConfig struct {
	stackSize int
	respond   func(w http.ResponseWriter, r *http.Request, perr *PanicError)
}

// RecoverOption configures Recover.
type RecoverOption func(*recoverConfig)

// WithRecoverStackSize sets the stack capture limit. Zero disables capture.
func WithRecoverStackSize(size int) RecoverOption {
	return func(cfg *recoverConfig) {
		cfg.stackSize = size
	}
}

// WithRecoverResponder replaces the default 500 JSON response.
func WithRecoverResponder(fn func(w http.ResponseWriter, r *http.Request, perr *PanicError)) RecoverOption {
	return func(cfg *recoverConfig) {
		if fn != nil {
			cfg.respond = fn
		}
	}
}

// Recover turns a handler panic into a logged error and a 500 response.
// http.ErrAbortHandler is re-panicked so the server can abort the response.
func Recover(log *slog.Logger, opts ...RecoverOption) Middleware {
	cfg := &recoverConfig{
		stackSize: DefaultStackSize,
		respond:   writePanic,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}

				perr := &PanicError{Value: v}
				attrs := []any{slog.Any("panic", v)}
				if cfg.stackSize > 0 {
					buf := make([]byte, cfg.stackSize)
					perr.Stack = buf[:runtime.Stack(buf, false)]
					attrs = append(attrs, slog.String("stack", string(perr.Stack)))
				}

				log.ErrorContext(r.Context(), "panic recovered", attrs...)
				cfg.respond(w, r, perr)
			}()

			next.ServeHTTP(w, r)
		})
	}
}

func writePanic(w http.ResponseWriter, r *http.Request, _ *PanicError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":      http.StatusText(http.StatusInternalServerError),
		"code":       "internal_error",
		"request_id": RequestIDFromContext(r.Context()),
	})
}
