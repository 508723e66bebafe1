// Package cache provides the expiring key-value stores behind every cached lookup,
// a msgpack codec on top of them and the caching decorator for the market data provider.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss is returned by Store.Get when the key is absent or expired.
var ErrMiss = errors.New("cache miss")

// Store is an expiring key-value store. Implementations must be safe for concurrent use.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	// DeleteByPrefix removes every key starting with prefix and reports how many were removed.
	// An empty prefix clears the store.
	DeleteByPrefix(ctx context.Context, prefix string) (int64, error)
}
