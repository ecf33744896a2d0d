package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"travelsuite.app/api/core/db"
)

type Config struct {
	Auth      AuthConfig
	OTel      OTelConfig
	Events    EventsConfig
	DB        db.Config
	Env       string `env:"APP_ENV" envDefault:"development"`
	Port      string `env:"PORT" envDefault:"3000"`
	NodeID    int64  `env:"SNOWFLAKE_NODE_ID" envDefault:"1"`
	LogoURL   string `env:"DEFAULT_LOGO_URL" envDefault:"https://placehold.co/600x400.png"`
	Metrics   bool   `env:"METRICS_ENABLED" envDefault:"true"`
	CORSAllow string `env:"CORS_ALLOWED_ORIGIN" envDefault:"*"`
}

type AuthConfig struct {
	JWTSecret  string        `env:"JWT_SECRET"`
	Issuer     string        `env:"JWT_ISSUER" envDefault:"travelsuite"`
	TokenTTL   time.Duration `env:"JWT_EXPIRES_IN" envDefault:"1h"`
	BcryptCost int           `env:"BCRYPT_COST" envDefault:"10"`
}

type OTelConfig struct {
	Endpoint       string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	Headers        string `env:"OTEL_EXPORTER_OTLP_HEADERS"`
	ServiceName    string `env:"OTEL_SERVICE_NAME" envDefault:"travelsuite-api"`
	ServiceVersion string `env:"OTEL_SERVICE_VERSION" envDefault:"dev"`
}

// EventsConfig controls publishing of tour and organization events.
// Publishing is disabled when RedisURL is empty.
type EventsConfig struct {
	RedisURL string `env:"REDIS_URL"`
	Stream   string `env:"EVENTS_STREAM" envDefault:"travelsuite_events"`
}

// Load loads configuration from environment variables.
// In development, values from a local .env file are loaded first; real
// environment variables always win.
func Load() (Config, error) {
	if lookupEnv("APP_ENV", "development") == "development" {
		_ = godotenv.Load(".env")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}

	if cfg.Auth.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}

	if cfg.Auth.TokenTTL <= 0 {
		return Config{}, fmt.Errorf("JWT_EXPIRES_IN must be positive, got %s", cfg.Auth.TokenTTL)
	}

	if cfg.IsProduction() && len(cfg.Auth.JWTSecret) < 32 {
		return Config{}, fmt.Errorf("JWT_SECRET must be at least 32 bytes in production")
	}

	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c OTelConfig) Enabled() bool {
	return c.Endpoint != ""
}

func (c EventsConfig) Enabled() bool {
	return c.RedisURL != ""
}

func lookupEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
