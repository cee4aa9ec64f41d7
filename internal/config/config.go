// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config keeps runtime settings for the server.
type Config struct {
	Addr       string `env:"ADDR"        envDefault:":8080"`
	DBPath     string `env:"DB_PATH"     envDefault:"./data/contacts.db"`
	StaticPath string `env:"STATIC_PATH"`

	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`

	JWT  JWT  `envPrefix:"JWT_"`
	HTTP HTTP `envPrefix:"HTTP_"`
	Seed Seed `envPrefix:"SEED_"`
}

// JWT configures bearer token issuance and validation.
type JWT struct {
	Key      string        `env:"KEY"`
	Issuer   string        `env:"ISSUER"   envDefault:"contactbook"`
	Audience string        `env:"AUDIENCE" envDefault:"contactbook-ui"`
	TTL      time.Duration `env:"TTL"      envDefault:"24h"`
}

// HTTP configures server timeouts.
type HTTP struct {
	ReadTimeout     time.Duration `env:"READ_TIMEOUT"     envDefault:"10s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT"    envDefault:"10s"`
	IdleTimeout     time.Duration `env:"IDLE_TIMEOUT"     envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Seed configures startup seeding.
type Seed struct {
	Enabled  bool   `env:"ENABLED"  envDefault:"true"`
	Samples  bool   `env:"SAMPLES"  envDefault:"true"`
	Username string `env:"USERNAME" envDefault:"testuser"`
	Password string `env:"PASSWORD" envDefault:"testpass1"`
}

// Prefix is prepended to every environment variable name.
const Prefix = "CONTACTS_"

// Load reads configuration from CONTACTS_* environment variables.
func Load() (Config, error) {
	return parse(env.Options{Prefix: Prefix})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks settings that have no usable default.
func (c Config) Validate() error {
	if c.JWT.Key == "" {
		return errors.New(Prefix + "JWT_KEY is required")
	}
	if len(c.JWT.Key) < 16 {
		return errors.New(Prefix + "JWT_KEY must be at least 16 bytes")
	}
	if c.JWT.TTL <= 0 {
		return errors.New(Prefix + "JWT_TTL must be positive")
	}
	return nil
}
