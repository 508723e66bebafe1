// Package usecase implements the business logic for quote, search, company and fundamentals lookups.
package usecase

import (
	"context"
	"time"

	"stock_dashboard/internal/feature/quotes/domain/entity"
)

// Region codes understood by the provider.
const (
	RegionUS = "US"
	RegionDE = "DE"
)

// MarketRepository abstracts the upstream market data provider.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type MarketRepository interface {
	// CheckConfig reports a configuration error without issuing any network call.
	CheckConfig() error
	// GetQuotes returns quotes for symbols from the market selected by region.
	GetQuotes(ctx context.Context, symbols []string, region string) ([]entity.Quote, error)
	// Search runs a free-text search scoped to region, preserving provider order.
	Search(ctx context.Context, query, region string) ([]entity.SearchHit, error)
	// GetSummary returns profile and valuation modules of a symbol.
	GetSummary(ctx context.Context, symbol, region string) (entity.Summary, error)
	// GetChart returns a close/volume series for the given interval and range.
	GetChart(ctx context.Context, symbol, interval, rng, region string) ([]entity.HistoricalPoint, error)
}

// ResultCache stores computed results with a time-to-live.
// A nil ResultCache disables caching.
type ResultCache interface {
	Load(ctx context.Context, key string, dst any) bool
	Save(ctx context.Context, key string, v any, ttl time.Duration)
}
