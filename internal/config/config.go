// Package config loads process configuration from the environment.
package config

import (
	"time"

	"github.com/caarlos0/env/v6"
)

// Config is parsed once at startup. MONGO_URI deliberately has no default
// and is not required: a missing or unreachable endpoint degrades storage
// to a reported connectivity error, it never stops the process.
type Config struct {
	MongoURI string `env:"MONGO_URI"`
	MongoDB  string `env:"MONGO_DB" envDefault:"employee_survey"`

	// RedisAddr is optional; empty disables the dataset cache entirely.
	RedisAddr string        `env:"REDIS_ADDR"`
	CacheTTL  time.Duration `env:"CACHE_TTL" envDefault:"60s"`
	// CacheWarmCron is a cron spec (e.g. "@every 5m") for the background
	// cache warmer; empty disables it.
	CacheWarmCron string `env:"CACHE_WARM_CRON"`

	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	CORSAllowedOrigins string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*"`
	CORSAllowedMethods string `env:"CORS_ALLOWED_METHODS" envDefault:"GET, POST, OPTIONS"`
	CORSAllowedHeaders string `env:"CORS_ALLOWED_HEADERS" envDefault:"Content-Type"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
