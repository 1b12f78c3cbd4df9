package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the full service configuration, read from the environment.
type Config struct {
	Port         string        `env:"PORT" envDefault:"8080"`
	RedisURL     string        `env:"REDIS_URL"` // empty disables Redis events
	JWTSecret    string        `env:"JWT_SECRET" envDefault:"dev-secret-change-me"`
	AccessTTL    time.Duration `env:"ACCESS_TTL" envDefault:"24h"`
	ShareBaseURL string        `env:"SHARE_BASE_URL" envDefault:"http://localhost:8080"`
	LoadDelay    time.Duration `env:"DEMO_LOAD_DELAY" envDefault:"0s"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
