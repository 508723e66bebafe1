package di

import (
	"context"
	"log/slog"

	"stock_dashboard/internal/platform/cache"
	infraredis "stock_dashboard/internal/platform/redis"
)

// NewCacheStore returns a Redis-backed store when Redis is configured and reachable,
// otherwise a bounded in-memory store. The returned func releases the Redis client.
func NewCacheStore(ctx context.Context, maxItems int) (cache.Store, func()) {
	rdb, err := infraredis.NewRedisClient(ctx, infraredis.LoadConfig())
	if err != nil {
		slog.Warn("Redis unavailable, using in-memory cache", "error", err, "max_items", maxItems)
		return cache.NewMemoryStore(maxItems), func() {}
	}
	return cache.NewRedisStore(rdb, cache.DefaultNamespace), func() {
		if err := rdb.Close(); err != nil {
			slog.Error("failed to close Redis client", "error", err)
		}
	}
}
