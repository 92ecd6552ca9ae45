// Package middlewares provides net/http middleware for the conversion API.
//
// Every middleware has the shape func(http.Handler) http.Handler and plugs
// into chi's Use:
//
//	r := chi.NewRouter()
//	r.Use(
//	    middlewares.RequestID(),
//	    middlewares.Logger(log),
//	    middlewares.Recover(log),
//	    middlewares.CORS(),
//	    middlewares.Timeout(10*time.Second),
//	    middlewares.Locale(conv.Languages(), conv.DefaultLocale()),
//	)
//
// Request-scoped values are read back with [RequestIDFromContext] and
// [LocaleFromContext]. [RequestIDExtractor] feeds the request ID into
// pkg/logger.
package middlewares

import "net/http"

// Middleware wraps an http.Handler.
type Middleware = func(http.Handler) http.Handler
