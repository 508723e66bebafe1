package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/sync/singleflight"
)

// LoadTimeout bounds a load shared by Fetch callers.
const LoadTimeout = 30 * time.Second

// Codec stores Go values in a Store as msgpack.
// A nil *Codec, or one without a store, caches nothing.
type Codec struct {
	store       Store
	group       singleflight.Group
	loadTimeout time.Duration
}

// NewCodec wraps store. store may be nil.
func NewCodec(store Store) *Codec {
	return &Codec{store: store, loadTimeout: LoadTimeout}
}

// Store returns the underlying store.
func (c *Codec) Store() Store {
	if c == nil {
		return nil
	}
	return c.store
}

// Load decodes the value under key into dst and reports whether it was found.
// Corrupted entries are deleted.
func (c *Codec) Load(ctx context.Context, key string, dst any) bool {
	if c == nil || c.store == nil {
		return false
	}
	b, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrMiss) {
			slog.Warn("cache get failed", "key", key, "error", err)
		}
		return false
	}
	if err := msgpack.Unmarshal(b, dst); err != nil {
		slog.Warn("dropping corrupted cache entry", "key", key, "error", err)
		_ = c.store.Delete(ctx, key)
		return false
	}
	return true
}

// Save encodes v under key for ttl. Failures are logged and otherwise ignored.
func (c *Codec) Save(ctx context.Context, key string, v any, ttl time.Duration) {
	if c == nil || c.store == nil {
		return
	}
	b, err := msgpack.Marshal(v)
	if err != nil {
		slog.Warn("cache encode failed", "key", key, "error", err)
		return
	}
	if err := c.store.Set(ctx, key, b, ttl); err != nil {
		slog.Warn("cache set failed", "key", key, "error", err)
	}
}

// Fetch returns the cached value under key, or calls load and caches its result for ttl.
// Concurrent misses on the same key share one load. Errors are never cached.
func Fetch[T any](ctx context.Context, c *Codec, key string, ttl time.Duration, load func(context.Context) (T, error)) (T, error) {
	if c == nil || c.store == nil {
		return load(ctx)
	}

	var out T
	if c.Load(ctx, key, &out) {
		return out, nil
	}

	// 共有ロードは最初の呼び出し元のキャンセルに影響されない
	ch := c.group.DoChan(key, func() (any, error) {
		lctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.loadTimeout)
		defer cancel()

		v, err := load(lctx)
		if err != nil {
			return nil, err
		}
		c.Save(lctx, key, v, ttl)
		return v, nil
	})

	select {
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			var zero T
			return zero, r.Err
		}
		return r.Val.(T), nil
	}
}
