package cache

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultNamespace prefixes every key written by a RedisStore.
const DefaultNamespace = "stockdash"

const scanCount = 200

// globEscaper escapes the characters SCAN MATCH treats as pattern syntax.
var globEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `]`, `\]`)

// RedisStore is a Store shared between processes through Redis.
type RedisStore struct {
	rdb       *redis.Client
	namespace string
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore creates a RedisStore. If namespace is empty, it uses DefaultNamespace.
func NewRedisStore(rdb *redis.Client, namespace string) *RedisStore {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &RedisStore{rdb: rdb, namespace: namespace}
}

func (s *RedisStore) key(k string) string {
	return s.namespace + ":" + k
}

// Get returns the value stored under key or ErrMiss.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.rdb.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Set stores value under key for ttl.
func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return s.rdb.Set(ctx, s.key(key), value, ttl).Err()
}

// Delete removes key.
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, s.key(key)).Err()
}

// DeleteByPrefix deletes all keys starting with prefix using SCAN.
// prefix is matched literally.
func (s *RedisStore) DeleteByPrefix(ctx context.Context, prefix string) (int64, error) {
	pattern := globEscaper.Replace(s.key(prefix)) + "*"

	var (
		cursor  uint64
		deleted int64
	)
	for {
		keys, cur, err := s.rdb.Scan(ctx, cursor, pattern, scanCount).Result()
		if err != nil {
			return deleted, err
		}
		if len(keys) > 0 {
			n, err := s.rdb.Del(ctx, keys...).Result()
			if err != nil {
				return deleted, err
			}
			deleted += n
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return deleted, nil
}
