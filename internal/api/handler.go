package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/hijri/internal"
	"github.com/dmitrymomot/hijri/middlewares"
	"github.com/dmitrymomot/hijri/pkg/cache"
	"github.com/dmitrymomot/hijri/pkg/i18n"
	"github.com/dmitrymomot/hijri/pkg/logger"
)

// DefaultCacheTTL is how long a rendered conversion stays cached.
const DefaultCacheTTL = 24 * time.Hour

// Handler serves the conversion endpoints under /v1.
type Handler struct {
	conv   *internal.Converter
	cache  cache.Cache[Result]
	ttl    time.Duration
	logger *slog.Logger
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithCache replaces the in-memory result cache, e.g. with cache.NewRedis.
func WithCache(c cache.Cache[Result]) HandlerOption {
	return func(h *Handler) {
		if c != nil {
			h.cache = c
		}
	}
}

// WithCacheTTL sets the result TTL. Default: DefaultCacheTTL.
func WithCacheTTL(d time.Duration) HandlerOption {
	return func(h *Handler) {
		if d != 0 {
			h.ttl = d
		}
	}
}

// WithHandlerLogger sets the request logger. Default: discard.
func WithHandlerLogger(l *slog.Logger) HandlerOption {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// NewHandler creates the conversion handler for conv.
func NewHandler(conv *internal.Converter, opts ...HandlerOption) *Handler {
	h := &Handler{
		conv:   conv,
		ttl:    DefaultCacheTTL,
		logger: logger.NewNope(),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.cache == nil {
		h.cache = cache.NewMemory[Result](cache.WithMaxEntries(10_000))
	}
	return h
}

// Routes mounts the /v1 endpoints. The request locale is resolved from the
// "locale" query parameter, the "locale" cookie and Accept-Language.
func (h *Handler) Routes(r chi.Router) {
	r.Route("/v1", func(r chi.Router) {
		r.Use(middlewares.Locale(h.conv.Languages(), h.conv.DefaultLocale()))
		r.Get("/convert", h.convert)
		r.Get("/today", h.today)
		r.Get("/months", h.months)
	})
}

// Close releases the result cache.
func (h *Handler) Close() error {
	return h.cache.Close()
}

func (h *Handler) convert(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	t, err := parseDate(q.Get("date"))
	if err != nil {
		writeError(w, err)
		return
	}
	h.respond(w, r, t, true)
}

func (h *Handler) today(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.conv.Now(), false)
}

func (h *Handler) months(w http.ResponseWriter, r *http.Request) {
	locale, err := h.locale(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"locale": locale,
		"months": internal.MonthNames(locale),
	})
}

// respond converts t and writes the Result. Only cacheable requests go
// through the result cache.
func (h *Handler) respond(w http.ResponseWriter, r *http.Request, t time.Time, cacheable bool) {
	q := r.URL.Query()

	offset, err := h.adjustment(q.Get("adjustment"), q.Get("profile"))
	if err != nil {
		writeError(w, err)
		return
	}
	locale, err := h.locale(r)
	if err != nil {
		writeError(w, err)
		return
	}
	rd, err := parseRender(q.Get("layout"), q.Get("preset"))
	if err != nil {
		writeError(w, err)
		return
	}

	build := func(context.Context) (Result, time.Duration, error) {
		res, err := newResult(h.conv.ConvertWithAdjustment(t, offset, locale), rd)
		return res, h.ttl, err
	}

	var res Result
	key := cache.Key(t.Format(time.RFC3339Nano), strconv.Itoa(offset), locale, rd.key())
	if cacheable {
		res, err = cache.GetOrSet(r.Context(), h.cache, key, build)
	} else {
		res, _, err = build(r.Context())
	}
	if err != nil {
		h.logger.WarnContext(r.Context(), "conversion failed",
			slog.String("key", key),
			slog.Any("error", err),
		)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) adjustment(raw, profile string) (int, error) {
	switch {
	case raw != "" && profile != "":
		return 0, fmt.Errorf("%w: adjustment and profile", ErrConflictingParams)
	case raw != "":
		n, err := strconv.Atoi(raw)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAdjustment, raw)
		}
		return n, nil
	case profile != "":
		n, ok := h.conv.Profile(profile)
		if !ok {
			return 0, fmt.Errorf("%w: %q", internal.ErrUnknownProfile, profile)
		}
		return n, nil
	default:
		return h.conv.Adjustment(), nil
	}
}

func (h *Handler) locale(r *http.Request) (string, error) {
	locale := middlewares.LocaleFromContext(r.Context())
	if locale == "" {
		locale = h.conv.DefaultLocale()
	}
	if err := internal.ValidateLocale(locale); err != nil {
		return "", err
	}
	return locale, nil
}

// parseDate accepts RFC 3339 timestamps and plain dates, the latter at
// midnight UTC.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: missing date parameter", ErrInvalidDate)
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

func parseRender(layout, preset string) (render, error) {
	switch {
	case layout != "" && preset != "":
		return render{}, fmt.Errorf("%w: layout and preset", ErrConflictingParams)
	case layout != "":
		return render{layout: layout}, nil
	case preset != "":
		return render{preset: i18n.Preset(preset)}, nil
	default:
		return render{preset: i18n.PresetFullDateTime}, nil
	}
}
