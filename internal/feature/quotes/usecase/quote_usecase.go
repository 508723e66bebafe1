package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"stock_dashboard/internal/feature/quotes/domain"
	"stock_dashboard/internal/feature/quotes/domain/entity"
)

const (
	// CompanyTTL is how long company profiles are cached.
	CompanyTTL = time.Hour
	// FundamentalsTTL is how long fundamentals are cached.
	FundamentalsTTL = 5 * time.Minute
	// MaxSearchResults caps the number of search results returned to the dashboard.
	MaxSearchResults = 10

	notAvailable = "N/A"
)

var (
	usExchanges = map[string]struct{}{"NYSE": {}, "NASDAQ": {}, "NMS": {}, "NYQ": {}, "NGM": {}, "NCM": {}}
	euExchanges = map[string]struct{}{"GER": {}, "FRA": {}, "XETRA": {}, "STU": {}, "MUN": {}}
)

// QuoteUsecase はUS市場の株価・検索・企業情報・ファンダメンタルズ取得のユースケースです。
type QuoteUsecase struct {
	market MarketRepository
	cache  ResultCache
}

// NewQuoteUsecase は新しい QuoteUsecase を作成します。cache は nil でも構いません。
func NewQuoteUsecase(market MarketRepository, cache ResultCache) *QuoteUsecase {
	return &QuoteUsecase{market: market, cache: cache}
}

// NormalizeSymbol trims and uppercases a ticker symbol.
func NormalizeSymbol(symbol string) (string, error) {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	if s == "" {
		return "", domain.ErrInvalidSymbol
	}
	return s, nil
}

// GetQuote returns the current US quote of symbol.
func (u *QuoteUsecase) GetQuote(ctx context.Context, symbol string) (entity.Quote, error) {
	s, err := NormalizeSymbol(symbol)
	if err != nil {
		return entity.Quote{}, err
	}
	quotes, err := u.market.GetQuotes(ctx, []string{s}, RegionUS)
	if err != nil {
		return entity.Quote{}, err
	}
	if len(quotes) == 0 {
		return entity.Quote{}, fmt.Errorf("%w for symbol: %s", domain.ErrQuoteNotFound, s)
	}
	return quotes[0], nil
}

// Search returns at most MaxSearchResults equities and ETFs matching query, US listings first.
// An empty query yields an empty result without calling the provider.
func (u *QuoteUsecase) Search(ctx context.Context, query string) ([]entity.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []entity.SearchResult{}, nil
	}

	hits, err := u.market.Search(ctx, query, RegionUS)
	if err != nil {
		return nil, err
	}

	out := make([]entity.SearchResult, 0, len(hits))
	for _, h := range hits {
		if h.QuoteType != "EQUITY" && h.QuoteType != "ETF" {
			continue
		}
		out = append(out, toSearchResult(h))
	}

	// US上場を優先し、それ以外はプロバイダーの順序を維持する
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Region == entity.RegionUS && out[j].Region != entity.RegionUS
	})
	if len(out) > MaxSearchResults {
		out = out[:MaxSearchResults]
	}
	return out, nil
}

func toSearchResult(h entity.SearchHit) entity.SearchResult {
	region, currency := entity.RegionOther, "USD"
	if _, ok := usExchanges[h.Exchange]; ok {
		region = entity.RegionUS
	} else if _, ok := euExchanges[h.Exchange]; ok {
		region, currency = entity.RegionEU, "EUR"
	}

	name := h.LongName
	if name == "" {
		name = h.ShortName
	}
	if name == "" {
		name = h.Symbol
	}
	display := h.ExchangeDisplay
	if display == "" {
		display = h.Exchange
	}
	return entity.SearchResult{
		Symbol:          h.Symbol,
		Name:            name,
		Exchange:        h.Exchange,
		ExchangeDisplay: display,
		Type:            strings.ToLower(h.QuoteType),
		Currency:        currency,
		Region:          region,
	}
}

// GetCompany returns the company profile of symbol, cached for CompanyTTL.
func (u *QuoteUsecase) GetCompany(ctx context.Context, symbol string) (entity.CompanyInfo, error) {
	s, err := NormalizeSymbol(symbol)
	if err != nil {
		return entity.CompanyInfo{}, err
	}

	key := "company:" + s
	var info entity.CompanyInfo
	if u.cache != nil && u.cache.Load(ctx, key, &info) {
		return info, nil
	}

	summary, err := u.market.GetSummary(ctx, s, RegionUS)
	if err != nil {
		return entity.CompanyInfo{}, err
	}

	info = entity.CompanyInfo{
		Name:     firstNonEmpty(summary.ShortName, summary.LongName, s),
		Symbol:   s,
		Sector:   firstNonEmpty(summary.Sector, notAvailable),
		Industry: firstNonEmpty(summary.Industry, notAvailable),
		Exchange: firstNonEmpty(summary.ExchangeName, notAvailable),
		Currency: firstNonEmpty(summary.Currency, "USD"),
		Country:  firstNonEmpty(summary.Country, notAvailable),
	}
	if u.cache != nil {
		u.cache.Save(ctx, key, info, CompanyTTL)
	}
	return info, nil
}

// GetFundamentals returns valuation figures of symbol, cached for FundamentalsTTL.
// Provider failures degrade to an all-nil result; only an invalid symbol is an error.
func (u *QuoteUsecase) GetFundamentals(ctx context.Context, symbol string) (entity.Fundamentals, error) {
	s, err := NormalizeSymbol(symbol)
	if err != nil {
		return entity.Fundamentals{}, err
	}

	key := "fundamentals:" + s
	var f entity.Fundamentals
	if u.cache != nil && u.cache.Load(ctx, key, &f) {
		return f, nil
	}

	summary, err := u.market.GetSummary(ctx, s, RegionUS)
	if err != nil {
		if !errors.Is(err, domain.ErrProviderNotConfigured) {
			slog.Warn("fundamentals unavailable", "symbol", s, "error", err)
		}
		return entity.Fundamentals{}, nil
	}

	f = entity.Fundamentals{
		MarketCap:        positive(summary.MarketCap),
		PERatioTTM:       positive(summary.TrailingPE),
		DividendYield:    percent(summary.DividendYield),
		RevenueGrowthYoY: percent(summary.RevenueGrowth),
		Beta:             nonZero(summary.Beta),
	}
	if u.cache != nil {
		u.cache.Save(ctx, key, f, FundamentalsTTL)
	}
	return f, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func positive(v *float64) *float64 {
	if v == nil || *v <= 0 {
		return nil
	}
	return v
}

func nonZero(v *float64) *float64 {
	if v == nil || *v == 0 {
		return nil
	}
	return v
}

func percent(v *float64) *float64 {
	if v == nil || *v == 0 {
		return nil
	}
	p := *v * 100
	return &p
}
