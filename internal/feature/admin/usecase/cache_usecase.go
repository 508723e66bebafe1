// Package usecase implements cache maintenance for operators.
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// PrefixDeleter is the part of the cache store the admin endpoints need.
type PrefixDeleter interface {
	DeleteByPrefix(ctx context.Context, prefix string) (int64, error)
}

// CacheAdminUsecase purges cached upstream responses.
type CacheAdminUsecase struct {
	store PrefixDeleter
}

// NewCacheAdminUsecase はCacheAdminUsecaseの新しいインスタンスを生成します。
func NewCacheAdminUsecase(store PrefixDeleter) *CacheAdminUsecase {
	return &CacheAdminUsecase{store: store}
}

// Purge deletes every cache entry whose key starts with prefix.
// An empty prefix clears the whole cache namespace.
func (u *CacheAdminUsecase) Purge(ctx context.Context, prefix string) (int64, error) {
	prefix = strings.TrimSpace(prefix)
	n, err := u.store.DeleteByPrefix(ctx, prefix)
	if err != nil {
		return n, fmt.Errorf("purge cache %q: %w", prefix, err)
	}
	slog.Warn("cache purged", "prefix", prefix, "deleted", n)
	return n, nil
}
