package main

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/hijri"
	"github.com/dmitrymomot/hijri/pkg/logger"
	"github.com/dmitrymomot/hijri/pkg/redis"
)

type config struct {
	Address         string        `env:"ADDRESS" envDefault:":8080"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	Adjustment      int           `env:"HIJRI_ADJUSTMENT" envDefault:"-1"`
	DefaultLocale   string        `env:"HIJRI_DEFAULT_LOCALE" envDefault:"en"`
	ProfilesFile    string        `env:"HIJRI_PROFILES_FILE"`
	Profiles        string        `env:"HIJRI_PROFILES"`
	CacheTTL        time.Duration `env:"CACHE_TTL" envDefault:"24h"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
	CORSOrigins     []string      `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`

	Sentry logger.SentryConfig
	Redis  redis.Config
}

// loadConfig reads an optional .env file and then the environment.
// Variables already set in the environment win over .env.
func loadConfig() (config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return config{}, fmt.Errorf("load .env: %w", err)
	}
	cfg, err := env.ParseAs[config]()
	if err != nil {
		return config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := hijri.ValidateLocale(cfg.DefaultLocale); err != nil {
		return config{}, err
	}
	return cfg, nil
}

// profiles merges the profiles file with inline HIJRI_PROFILES entries;
// inline entries override the file.
func (c config) profiles() (hijri.Profiles, error) {
	out := hijri.Profiles{}

	if c.ProfilesFile != "" {
		f, err := os.Open(c.ProfilesFile)
		if err != nil {
			return nil, fmt.Errorf("open profiles: %w", err)
		}
		defer f.Close()

		fromFile, err := hijri.LoadProfiles(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.ProfilesFile, err)
		}
		maps.Copy(out, fromFile)
	}

	if c.Profiles != "" {
		inline, err := hijri.ParseProfiles(c.Profiles)
		if err != nil {
			return nil, err
		}
		maps.Copy(out, inline)
	}

	return out, nil
}
