package redis

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultCommandTimeout = 500 * time.Millisecond

// Config describes the Redis instance backing the geocode cache.
type Config struct {
	Addr     string
	Password string
	DB       int
	TLS      bool
	// Timeout bounds dialing and each read/write. Defaults to 500ms.
	Timeout time.Duration
}

func (cfg Config) options() *redis.Options {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultCommandTimeout
	}

	opts := &redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  timeout,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
		// A failed command falls through to the geocoder, never retried here.
		MaxRetries: -1,
	}
	if cfg.TLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	return opts
}

// Connect opens the cache connection and pings it once. A failed ping closes
// the client and returns the error; callers decide whether to run uncached.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("redis: empty address")
	}

	client := redis.NewClient(cfg.options())

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}

	return client, nil
}
