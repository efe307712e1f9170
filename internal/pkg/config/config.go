package config

import (
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	ServerAddr      string        `env:"SERVER_ADDR" envDefault:":8080"`
	AdminAddr       string        `env:"ADMIN_ADDR" envDefault:":9091"`
	PostgresURL     string        `env:"POSTGRES_URL,required"`
	RedisAddr       string        `env:"REDIS_ADDR,required"`
	SessionSecret   string        `env:"SESSION_SECRET,required"`
	SessionTTL      time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	PageCacheTTL    time.Duration `env:"PAGE_CACHE_TTL" envDefault:"5m"`
	LoginRatePerMin int           `env:"LOGIN_RATE_PER_MIN" envDefault:"10"`
	LoginRateBurst  int           `env:"LOGIN_RATE_BURST" envDefault:"5"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	// Attempt to load .env file for local development.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
