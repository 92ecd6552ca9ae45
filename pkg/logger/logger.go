package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Option configures New.
type Option func(*config)

type config struct {
	out        io.Writer
	level      slog.Level
	text       bool
	attrs      []slog.Attr
	extractors []ContextExtractor
	sentry     *SentryConfig
}

// WithLevel sets the minimum level written. Default: Info.
func WithLevel(level slog.Level) Option {
	return func(c *config) {
		c.level = level
	}
}

// WithOutput redirects output. Default: stdout.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		c.out = w
	}
}

// WithText switches from JSON to the human-readable text format.
func WithText() Option {
	return func(c *config) {
		c.text = true
	}
}

// WithAttrs adds static attributes to every record, such as the service name.
func WithAttrs(attrs ...slog.Attr) Option {
	return func(c *config) {
		c.attrs = append(c.attrs, attrs...)
	}
}

// WithExtractors adds context extractors evaluated on every log call.
func WithExtractors(extractors ...ContextExtractor) Option {
	return func(c *config) {
		c.extractors = append(c.extractors, extractors...)
	}
}

// WithSentry fans warnings and errors out to Sentry. An empty DSN is ignored.
func WithSentry(cfg SentryConfig) Option {
	return func(c *config) {
		if cfg.DSN != "" {
			c.sentry = &cfg
		}
	}
}

// New creates a structured logger. Output is JSON on stdout at Info level
// unless configured otherwise.
func New(opts ...Option) *slog.Logger {
	cfg := &config{out: os.Stdout, level: slog.LevelInfo}
	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := &slog.HandlerOptions{Level: cfg.level}
	var handler slog.Handler
	if cfg.text {
		handler = slog.NewTextHandler(cfg.out, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(cfg.out, handlerOpts)
	}

	if cfg.sentry != nil {
		handler = withSentry(handler, *cfg.sentry)
	}
	if len(cfg.attrs) > 0 {
		handler = handler.WithAttrs(cfg.attrs)
	}

	return slog.New(NewLogHandlerDecorator(handler, cfg.extractors...))
}

// NewNope returns a logger that discards everything.
func NewNope() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// ParseLevel accepts debug, info, warn and error in any case, with optional
// offsets such as "warn+2". An empty string yields Info.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, err
	}
	return level, nil
}
