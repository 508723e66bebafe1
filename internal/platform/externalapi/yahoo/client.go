package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"stock_dashboard/internal/feature/quotes/domain"
	"stock_dashboard/internal/feature/quotes/domain/entity"
	"stock_dashboard/internal/feature/quotes/usecase"
	"stock_dashboard/internal/platform/externalapi/yahoo/dto"
)

// Client はRapidAPI経由でYahoo Finance APIから株価データを取得するMarketRepository実装です。
type Client struct {
	cfg    Config
	client *http.Client
}

// ClientがMarketRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.MarketRepository = (*Client)(nil)

// NewClient は指定された設定とHTTPクライアントでClientの新しいインスタンスを生成します。
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg.withDefaults(), client: client}
}

// CheckConfig reports ErrProviderNotConfigured when no API key is set.
// It never touches the network.
func (c *Client) CheckConfig() error {
	if strings.TrimSpace(c.cfg.APIKey) == "" {
		return fmt.Errorf("%w: YAHOO_API_KEY is not set", domain.ErrProviderNotConfigured)
	}
	return nil
}

// GetQuotes fetches quotes for the given symbols from the market of the given region.
// An empty slice (not an error) is returned when the provider knows none of the symbols.
func (c *Client) GetQuotes(ctx context.Context, symbols []string, region string) ([]entity.Quote, error) {
	q := url.Values{}
	q.Set("symbols", strings.Join(symbols, ","))
	q.Set("region", region)

	var body dto.QuoteResponse
	if err := c.get(ctx, "/market/v2/get-quotes", q, &body); err != nil {
		return nil, err
	}
	if e := body.QuoteResponse.Error; e != nil && e.Description != "" {
		return nil, fmt.Errorf("yahoo: %s", e.Description)
	}

	quotes := make([]entity.Quote, 0, len(body.QuoteResponse.Result))
	for _, r := range body.QuoteResponse.Result {
		quotes = append(quotes, toQuote(r))
	}
	return quotes, nil
}

// Search runs a free-text auto-complete search scoped to the given region.
// Result order is the provider's.
func (c *Client) Search(ctx context.Context, query, region string) ([]entity.SearchHit, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("region", region)

	var body dto.SearchResponse
	if err := c.get(ctx, "/auto-complete", q, &body); err != nil {
		return nil, err
	}

	hits := make([]entity.SearchHit, 0, len(body.Quotes))
	for _, h := range body.Quotes {
		hits = append(hits, entity.SearchHit{
			Symbol:          h.Symbol,
			ShortName:       h.ShortName,
			LongName:        h.LongName,
			Exchange:        h.Exchange,
			ExchangeDisplay: h.ExchDisp,
			QuoteType:       h.QuoteType,
		})
	}
	return hits, nil
}

// GetSummary fetches the quote summary (profile, valuation and price modules) of a symbol.
func (c *Client) GetSummary(ctx context.Context, symbol, region string) (entity.Summary, error) {
	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("region", region)

	var body dto.SummaryResponse
	if err := c.get(ctx, "/stock/v2/get-summary", q, &body); err != nil {
		return entity.Summary{}, err
	}

	modules := body.SummaryModules
	if len(body.QuoteSummary.Result) > 0 {
		modules = mergeModules(body.QuoteSummary.Result[0], body.SummaryModules)
	}
	return toSummary(modules), nil
}

// GetChart fetches a daily close/volume series. Points without close or volume are dropped.
func (c *Client) GetChart(ctx context.Context, symbol, interval, rng, region string) ([]entity.HistoricalPoint, error) {
	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("interval", interval)
	q.Set("range", rng)
	q.Set("region", region)

	var body dto.ChartResponse
	if err := c.get(ctx, "/stock/v3/get-chart", q, &body); err != nil {
		return nil, err
	}
	if e := body.Chart.Error; e != nil && e.Description != "" {
		return nil, fmt.Errorf("yahoo: %s", e.Description)
	}
	if len(body.Chart.Result) == 0 {
		return nil, fmt.Errorf("%w for symbol %s", domain.ErrNoHistoricalData, symbol)
	}

	res := body.Chart.Result[0]
	if len(res.Indicators.Quote) == 0 {
		return []entity.HistoricalPoint{}, nil
	}
	closes := res.Indicators.Quote[0].Close
	volumes := res.Indicators.Quote[0].Volume

	points := make([]entity.HistoricalPoint, 0, len(res.Timestamp))
	for i, ts := range res.Timestamp {
		if i >= len(closes) || i >= len(volumes) || closes[i] == nil || volumes[i] == nil {
			continue
		}
		points = append(points, entity.HistoricalPoint{
			Date:   time.Unix(ts, 0).UTC(),
			Close:  *closes[i],
			Volume: *volumes[i],
		})
	}
	return points, nil
}

// get issues an authenticated GET request and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	if err := c.CheckConfig(); err != nil {
		return err
	}

	u := fmt.Sprintf("%s%s?%s", strings.TrimRight(c.cfg.BaseURL, "/"), path, q.Encode())

	// リクエストオブジェクトを作成
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-RapidAPI-Key", c.cfg.APIKey)
	req.Header.Set("X-RapidAPI-Host", c.cfg.APIHost)
	req.Header.Set("Accept", "application/json")

	// リクエストを実行
	res, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	switch {
	case res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden:
		// 認証情報が拒否された場合は設定エラーとして扱う
		return fmt.Errorf("%w: yahoo http %d", domain.ErrProviderNotConfigured, res.StatusCode)
	case res.StatusCode >= 400:
		return fmt.Errorf("yahoo http %d", res.StatusCode)
	}

	// JSONレスポンスをDTOにデコード
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func toQuote(r dto.QuoteResult) entity.Quote {
	exchange := r.FullExchangeName
	if exchange == "" {
		exchange = r.Exchange
	}
	var ts time.Time
	if r.RegularMarketTime > 0 {
		ts = time.Unix(r.RegularMarketTime, 0).UTC()
	}
	return entity.Quote{
		Symbol:                      r.Symbol,
		ShortName:                   r.ShortName,
		LongName:                    r.LongName,
		Price:                       r.RegularMarketPrice,
		Currency:                    r.Currency,
		Change:                      r.RegularMarketChange,
		ChangePercent:               r.RegularMarketChangePercent,
		PreviousClose:               r.RegularMarketPreviousClose,
		Open:                        r.RegularMarketOpen,
		DayHigh:                     r.RegularMarketDayHigh,
		DayLow:                      r.RegularMarketDayLow,
		Volume:                      r.RegularMarketVolume,
		AvgVolume30d:                r.AverageDailyVolume3Month,
		Timestamp:                   ts,
		Exchange:                    exchange,
		MarketState:                 entity.ParseMarketState(r.MarketState),
		MarketCap:                   r.MarketCap,
		TrailingPE:                  r.TrailingPE,
		TrailingAnnualDividendYield: r.TrailingAnnualDividendYield,
		Beta:                        r.Beta,
	}
}

// mergeModules fills the modules missing from primary with those of fallback.
func mergeModules(primary, fallback dto.SummaryModules) dto.SummaryModules {
	if primary.Price == nil {
		primary.Price = fallback.Price
	}
	if primary.AssetProfile == nil {
		primary.AssetProfile = fallback.AssetProfile
	}
	if primary.SummaryProfile == nil {
		primary.SummaryProfile = fallback.SummaryProfile
	}
	if primary.SummaryDetail == nil {
		primary.SummaryDetail = fallback.SummaryDetail
	}
	if primary.DefaultKeyStatistics == nil {
		primary.DefaultKeyStatistics = fallback.DefaultKeyStatistics
	}
	if primary.FinancialData == nil {
		primary.FinancialData = fallback.FinancialData
	}
	return primary
}

func toSummary(m dto.SummaryModules) entity.Summary {
	var s entity.Summary
	if m.Price != nil {
		s.ShortName = m.Price.ShortName
		s.LongName = m.Price.LongName
		s.ExchangeName = m.Price.ExchangeName
		s.Currency = m.Price.Currency
	}
	switch {
	case m.AssetProfile != nil:
		s.Sector, s.Industry, s.Country = m.AssetProfile.Sector, m.AssetProfile.Industry, m.AssetProfile.Country
	case m.SummaryProfile != nil:
		s.Sector, s.Industry, s.Country = m.SummaryProfile.Sector, m.SummaryProfile.Industry, m.SummaryProfile.Country
	}
	if d := m.SummaryDetail; d != nil {
		s.MarketCap = d.MarketCap.Raw
		s.TrailingPE = d.TrailingPE.Raw
		s.DividendYield = d.DividendYield.Raw
		s.Beta = d.Beta.Raw
	}
	if k := m.DefaultKeyStatistics; k != nil && k.Beta.Raw != nil {
		s.Beta = k.Beta.Raw
	}
	if f := m.FinancialData; f != nil {
		s.RevenueGrowth = f.RevenueGrowth.Raw
	}
	return s
}

