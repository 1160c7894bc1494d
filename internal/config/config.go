package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config is the process-wide configuration, loaded once at startup.
// DATABASE_URL and JWT_SECRET have no defaults on purpose: a missing secret
// must abort startup, never fall back to a guessable value.
type Config struct {
	DatabaseURL string        `env:"DATABASE_URL,required"`
	JWTSecret   string        `env:"JWT_SECRET,required"`
	HTTPPort    string        `env:"HTTP_PORT" envDefault:"8080"`
	TokenTTL    time.Duration `env:"TOKEN_TTL" envDefault:"168h"`
	LogLevel    string        `env:"LOG_LEVEL" envDefault:"info"`

	// Optional bootstrap superadmin, seeded only when both are set.
	SuperadminEmail    string `env:"SUPERADMIN_EMAIL"`
	SuperadminPassword string `env:"SUPERADMIN_PASSWORD"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
