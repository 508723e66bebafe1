package usecase_test

import (
	"context"
	"time"

	"stock_dashboard/internal/feature/quotes/domain/entity"
)

// mockMarket は MarketRepository インターフェースのモック実装です。
type mockMarket struct {
	CheckConfigFunc func() error
	GetQuotesFunc   func(ctx context.Context, symbols []string, region string) ([]entity.Quote, error)
	SearchFunc      func(ctx context.Context, query, region string) ([]entity.SearchHit, error)
	GetSummaryFunc  func(ctx context.Context, symbol, region string) (entity.Summary, error)
	GetChartFunc    func(ctx context.Context, symbol, interval, rng, region string) ([]entity.HistoricalPoint, error)

	summaryCalls int
}

func (m *mockMarket) CheckConfig() error {
	if m.CheckConfigFunc == nil {
		return nil
	}
	return m.CheckConfigFunc()
}

func (m *mockMarket) GetQuotes(ctx context.Context, symbols []string, region string) ([]entity.Quote, error) {
	return m.GetQuotesFunc(ctx, symbols, region)
}

func (m *mockMarket) Search(ctx context.Context, query, region string) ([]entity.SearchHit, error) {
	return m.SearchFunc(ctx, query, region)
}

func (m *mockMarket) GetSummary(ctx context.Context, symbol, region string) (entity.Summary, error) {
	m.summaryCalls++
	return m.GetSummaryFunc(ctx, symbol, region)
}

func (m *mockMarket) GetChart(ctx context.Context, symbol, interval, rng, region string) ([]entity.HistoricalPoint, error) {
	return m.GetChartFunc(ctx, symbol, interval, rng, region)
}

// memCache は値をそのまま保持する ResultCache のテスト用実装です。
type memCache struct {
	items map[string]any
	ttls  map[string]time.Duration
}

func newMemCache() *memCache {
	return &memCache{items: map[string]any{}, ttls: map[string]time.Duration{}}
}

func (c *memCache) Load(_ context.Context, key string, dst any) bool {
	v, ok := c.items[key]
	if !ok {
		return false
	}
	switch d := dst.(type) {
	case *entity.CompanyInfo:
		*d = v.(entity.CompanyInfo)
	case *entity.Fundamentals:
		*d = v.(entity.Fundamentals)
	default:
		return false
	}
	return true
}

func (c *memCache) Save(_ context.Context, key string, v any, ttl time.Duration) {
	c.items[key] = v
	c.ttls[key] = ttl
}
