package middlewares

import (
	"context"
	"net/http"
	"slices"

	"github.com/dmitrymomot/hijri/pkg/i18n"
)

type localeKey struct{}

// LocaleSource extracts a locale candidate from a request.
type LocaleSource func(r *http.Request) (string, bool)

// FromQuery reads a query parameter.
func FromQuery(name string) LocaleSource {
	return func(r *http.Request) (string, bool) {
		v := r.URL.Query().Get(name)
		return v, v != ""
	}
}

// FromCookie reads a plain cookie.
func FromCookie(name string) LocaleSource {
	return func(r *http.Request) (string, bool) {
		c, err := r.Cookie(name)
		if err != nil || c.Value == "" {
			return "", false
		}
		return c.Value, true
	}
}

// FromHeader reads a request header verbatim.
func FromHeader(name string) LocaleSource {
	return func(r *http.Request) (string, bool) {
		v := r.Header.Get(name)
		return v, v != ""
	}
}

// FromAcceptLanguage matches the Accept-Language header against available.
func FromAcceptLanguage(available []string) LocaleSource {
	return func(r *http.Request) (string, bool) {
		return i18n.MatchAcceptLanguage(r.Header.Get("Accept-Language"), available)
	}
}

type localeConfig struct {
	sources []LocaleSource
}

// LocaleOption configures Locale.
type LocaleOption func(*localeConfig)

// WithLocaleSources replaces the default source chain.
func WithLocaleSources(sources ...LocaleSource) LocaleOption {
	return func(cfg *localeConfig) {
		cfg.sources = sources
	}
}

// Locale resolves the request locale and stores it in the context. The
// default chain is the "locale" query parameter, the "locale" cookie and
// the Accept-Language header; the first non-empty candidate wins and
// fallback is used when every source misses.
func Locale(available []string, fallback string, opts ...LocaleOption) Middleware {
	cfg := &localeConfig{
		sources: []LocaleSource{
			FromQuery("locale"),
			FromCookie("locale"),
			FromAcceptLanguage(slices.Clone(available)),
		},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale := fallback
			for _, src := range cfg.sources {
				if v, ok := src(r); ok && v != "" {
					locale = v
					break
				}
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), localeKey{}, locale)))
		})
	}
}

// LocaleFromContext returns the locale resolved by Locale, or "".
func LocaleFromContext(ctx context.Context) string {
	v, _ := ctx.Value(localeKey{}).(string)
	return v
}
