package usecase

import (
	"context"
	"log/slog"
	"time"

	euentity "stock_dashboard/internal/feature/eulisting/domain/entity"
	qentity "stock_dashboard/internal/feature/quotes/domain/entity"
	"stock_dashboard/internal/shared/ratelimiter"
)

// SymbolSource は先読み対象の銘柄を返します。
type SymbolSource interface {
	ActiveSymbols(ctx context.Context) ([]string, error)
}

// QuoteWarmer loads a US quote through the caching layer.
type QuoteWarmer interface {
	GetQuote(ctx context.Context, symbol string) (qentity.Quote, error)
}

// EUWarmer resolves and caches the EU listing of a US symbol.
// Its upstream calls are expected to be paced by the same limiter (see Resolver.WithRateLimiter).
type EUWarmer interface {
	GetEUQuote(ctx context.Context, usSymbol string) (euentity.Resolution, error)
}

// PrefetchResult summarizes one warming run.
type PrefetchResult struct {
	Symbols    int
	QuotesOK   int
	EUFound    int
	Failures   int
	Duration   time.Duration
	Incomplete bool // a rate limiter wait was aborted before every symbol was visited
}

// PrefetchUsecase は人気銘柄のUS株価とEU上場解決を事前にキャッシュへ読み込みます。
type PrefetchUsecase struct {
	symbols     SymbolSource
	quotes      QuoteWarmer
	eu          EUWarmer
	rateLimiter ratelimiter.RateLimiterInterface
}

// NewPrefetchUsecase は新しい PrefetchUsecase を作成します。
func NewPrefetchUsecase(symbols SymbolSource, quotes QuoteWarmer, eu EUWarmer, rateLimiter ratelimiter.RateLimiterInterface) *PrefetchUsecase {
	return &PrefetchUsecase{symbols: symbols, quotes: quotes, eu: eu, rateLimiter: rateLimiter}
}

// WarmAll visits every active popular stock. A failing symbol is logged and skipped;
// only a failure to list the symbols, or cancellation, ends the run early.
func (u *PrefetchUsecase) WarmAll(ctx context.Context) (PrefetchResult, error) {
	start := time.Now()
	symbols, err := u.symbols.ActiveSymbols(ctx)
	if err != nil {
		return PrefetchResult{}, err
	}

	res := PrefetchResult{Symbols: len(symbols)}
	var waitErr error
	for _, s := range symbols {
		if waitErr = u.rateLimiter.Wait(ctx); waitErr != nil {
			break
		}
		if _, err := u.quotes.GetQuote(ctx, s); err != nil {
			// 1つの銘柄でエラーが発生しても処理を止めずにログに出力し、次の銘柄へ
			slog.Warn("prefetch quote failed", "symbol", s, "error", err)
			res.Failures++
			continue
		}
		res.QuotesOK++

		// EU解決の上流呼び出しは Resolver 側で同じリミッターにより1回ずつ制御される
		r, err := u.eu.GetEUQuote(ctx, s)
		if err != nil {
			slog.Warn("prefetch EU resolution failed", "symbol", s, "error", err)
			res.Failures++
			continue
		}
		if r.Found() {
			res.EUFound++
		}
	}
	res.Duration = time.Since(start)
	res.Incomplete = waitErr != nil

	slog.Info("prefetch finished",
		"symbols", res.Symbols,
		"quotes_ok", res.QuotesOK,
		"eu_found", res.EUFound,
		"failures", res.Failures,
		"incomplete", res.Incomplete,
		"duration", res.Duration,
	)
	return res, waitErr
}
