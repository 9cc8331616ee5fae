package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	dialTimeout    = 5 * time.Second
	commandTimeout = 500 * time.Millisecond
)

// Config holds the revocation store connection settings.
type Config struct {
	Addr     string
	Password string
	DB       int
	// CommandTimeout bounds every read and write. Revocation lookups sit on
	// the request path, so the default is short.
	CommandTimeout time.Duration
}

// Connect opens a client for the revocation store and pings it once.
// Commands are never retried: a failed lookup surfaces as a validation error
// on the current request.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	cmdTimeout := cfg.CommandTimeout
	if cmdTimeout <= 0 {
		cmdTimeout = commandTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		ClientName:   "logistics-portal",
		MaxRetries:   -1,
		DialTimeout:  dialTimeout,
		ReadTimeout:  cmdTimeout,
		WriteTimeout: cmdTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// Ping returns a readiness check for client.
func Ping(client redis.UniversalClient) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}
}
