package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"stock_dashboard/internal/feature/quotes/domain/entity"
	"stock_dashboard/internal/feature/quotes/usecase"
)

// TTLs per kind of upstream data.
const (
	QuoteTTL   = 30 * time.Second
	SearchTTL  = time.Minute
	SummaryTTL = time.Hour
	ChartTTL   = time.Hour
)

// CachingMarket decorates a MarketRepository with caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying provider client.
type CachingMarket struct {
	inner usecase.MarketRepository
	codec *Codec
}

var _ usecase.MarketRepository = (*CachingMarket)(nil)

// NewCachingMarket decorates inner. A nil codec bypasses caching.
func NewCachingMarket(inner usecase.MarketRepository, codec *Codec) *CachingMarket {
	return &CachingMarket{inner: inner, codec: codec}
}

// CheckConfig is never cached.
func (c *CachingMarket) CheckConfig() error {
	return c.inner.CheckConfig()
}

// GetQuotes returns quotes, checking cache first then falling back to the provider.
func (c *CachingMarket) GetQuotes(ctx context.Context, symbols []string, region string) ([]entity.Quote, error) {
	key := fmt.Sprintf("quote:%s:%s", safe(region), safe(strings.Join(symbols, ",")))
	return Fetch(ctx, c.codec, key, QuoteTTL, func(ctx context.Context) ([]entity.Quote, error) {
		return c.inner.GetQuotes(ctx, symbols, region)
	})
}

// Search caches search hits per query and region.
func (c *CachingMarket) Search(ctx context.Context, query, region string) ([]entity.SearchHit, error) {
	key := fmt.Sprintf("search:%s:%s", safe(region), safe(strings.ToLower(query)))
	return Fetch(ctx, c.codec, key, SearchTTL, func(ctx context.Context) ([]entity.SearchHit, error) {
		return c.inner.Search(ctx, query, region)
	})
}

// GetSummary caches the company summary.
func (c *CachingMarket) GetSummary(ctx context.Context, symbol, region string) (entity.Summary, error) {
	key := fmt.Sprintf("summary:%s:%s", safe(region), safe(symbol))
	return Fetch(ctx, c.codec, key, SummaryTTL, func(ctx context.Context) (entity.Summary, error) {
		return c.inner.GetSummary(ctx, symbol, region)
	})
}

// GetChart caches a historical series per interval and range.
func (c *CachingMarket) GetChart(ctx context.Context, symbol, interval, rng, region string) ([]entity.HistoricalPoint, error) {
	key := fmt.Sprintf("chart:%s:%s:%s:%s", safe(region), safe(symbol), safe(interval), safe(rng))
	return Fetch(ctx, c.codec, key, ChartTTL, func(ctx context.Context) ([]entity.HistoricalPoint, error) {
		return c.inner.GetChart(ctx, symbol, interval, rng, region)
	})
}

// safe escapes characters that are problematic for cache keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
