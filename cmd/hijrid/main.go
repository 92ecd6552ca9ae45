// Command hijrid serves Gregorian to Hijri conversion over HTTP.
//
// Configuration comes from the environment (and an optional .env file):
//
//	ADDRESS               listen address (":8080")
//	LOG_LEVEL             debug, info, warn or error ("info")
//	HIJRI_ADJUSTMENT      default day offset (-1)
//	HIJRI_DEFAULT_LOCALE  locale when the request names none ("en")
//	HIJRI_PROFILES_FILE   YAML file of named offsets
//	HIJRI_PROFILES        inline offsets, e.g. "sa=-1,eg=0"
//	CACHE_TTL             result cache TTL ("24h")
//	REDIS_URL             cache results in Redis instead of memory
//	SENTRY_DSN            forward warnings and errors to Sentry
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dmitrymomot/hijri"
	"github.com/dmitrymomot/hijri/internal/api"
	"github.com/dmitrymomot/hijri/middlewares"
	"github.com/dmitrymomot/hijri/pkg/cache"
	"github.com/dmitrymomot/hijri/pkg/logger"
	"github.com/dmitrymomot/hijri/pkg/redis"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "hijrid:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	log := logger.New(
		logger.WithLevel(level),
		logger.WithAttrs(slog.String("service", "hijrid")),
		logger.WithExtractors(middlewares.RequestIDExtractor()),
		logger.WithSentry(cfg.Sentry),
	)
	defer logger.Flush(2 * time.Second)

	profiles, err := cfg.profiles()
	if err != nil {
		return err
	}

	conv := hijri.New(
		hijri.WithAdjustment(cfg.Adjustment),
		hijri.WithLocale(cfg.DefaultLocale),
		hijri.WithProfiles(profiles),
		hijri.WithLogger(log),
	)

	handlerOpts := []api.HandlerOption{
		api.WithCacheTTL(cfg.CacheTTL),
		api.WithHandlerLogger(log),
	}
	healthOpts := []api.HealthOption{
		api.WithReadinessCheck("converter", api.ConverterCheck(conv)),
	}
	var hooks []api.Option

	if cfg.Redis.URL != "" {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		handlerOpts = append(handlerOpts, api.WithCache(
			cache.NewRedis[api.Result](client, cache.JSON[api.Result]{}, cache.WithPrefix("hijri:")),
		))
		healthOpts = append(healthOpts, api.WithReadinessCheck("redis", redis.Healthcheck(client)))
		hooks = append(hooks, api.WithShutdownHook(redis.Shutdown(client)))
		log.Info("caching conversions in redis")
	}

	handler := api.NewHandler(conv, handlerOpts...)

	srv := api.New(append([]api.Option{
		api.WithLogger(log),
		api.WithAddress(cfg.Address),
		api.WithShutdownTimeout(cfg.ShutdownTimeout),
		api.WithMiddleware(
			middlewares.RequestID(),
			middlewares.Logger(log),
			middlewares.Recover(log),
			middlewares.CORS(middlewares.WithAllowOrigins(cfg.CORSOrigins...)),
			middlewares.Timeout(cfg.RequestTimeout, middlewares.WithTimeoutLogger(log)),
		),
		api.WithHealthChecks(healthOpts...),
		api.WithRoutes(handler),
		api.WithShutdownHook(func(context.Context) error {
			return errors.Join(handler.Close(), conv.Close())
		}),
	}, hooks...)...)

	log.Info("hijri converter ready",
		slog.Int("adjustment", conv.Adjustment()),
		slog.String("default_locale", conv.DefaultLocale()),
		slog.Any("profiles", profiles.Names()),
		slog.Any("languages", conv.Languages()),
	)

	return srv.Run(ctx)
}
