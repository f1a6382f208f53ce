// Package redis wraps the go-redis client so repositories depend on an
// interface that tests can swap for miniredis.
package redis

import (
	"context"
	"crypto/tls"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Options configures the client connection pool
type Options struct {
	Password        string
	DB              int
	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	DialTimeout     time.Duration
	MaxRetries      int
	UseTLS          bool
}

// NewClient creates a client for a single redis instance. The connection is
// lazy; use Ping to verify it.
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.New("redis: endpoint is required")
	}
	if opts == nil {
		opts = &Options{}
	}

	redisOpts := &redis.Options{
		Addr:            endpoint,
		Password:        opts.Password,
		DB:              opts.DB,
		PoolSize:        opts.PoolSize,
		MinIdleConns:    opts.MinIdleConns,
		ConnMaxIdleTime: opts.ConnMaxIdleTime,
		DialTimeout:     opts.DialTimeout,
		MaxRetries:      opts.MaxRetries,
	}
	if opts.UseTLS {
		redisOpts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	return redis.NewClient(redisOpts), nil
}

// Ping checks connectivity within the given timeout
func Ping(ctx context.Context, client Client, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return client.Ping(ctx).Err()
}
