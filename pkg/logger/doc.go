// Package logger builds log/slog loggers for the conversion service and CLI.
//
// [New] writes JSON to stdout at Info level by default. Context extractors
// attach request-scoped values such as the request ID on every call, and
// [WithSentry] forwards warnings and errors to Sentry when a DSN is set:
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithAttrs(slog.String("service", "hijrid")),
//	    logger.WithExtractors(middlewares.RequestIDExtractor()),
//	    logger.WithSentry(logger.SentryConfig{DSN: os.Getenv("SENTRY_DSN")}),
//	)
//
// [NewNope] is the default for library code that was not given a logger.
package logger
