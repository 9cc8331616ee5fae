package config

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port          string `env:"PORT,           default=8080"        validate:"required"`
	Env           string `env:"ENV,            default=development" validate:"oneof=development staging production"`
	LogLevel      string `env:"LOG_LEVEL,      default=info"`
	JWTSecret     string `env:"JWT_SECRET"                          validate:"required,min=16"`
	SessionCookie string `env:"SESSION_COOKIE, default=session"     validate:"required"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI                string `env:"MONGO_URI,           default=mongodb://localhost:27017" validate:"required"`
	Database           string `env:"MONGO_DB,            default=logistics_portal"          validate:"required"`
	AccountsCollection string `env:"ACCOUNTS_COLLECTION, default=users"                     validate:"required"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379" validate:"required"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"              validate:"gte=0"`
}

// Production reports whether the service runs with production settings.
func (c *Config) Production() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables using go-envconfig and
// validates it.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("config: process env: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
