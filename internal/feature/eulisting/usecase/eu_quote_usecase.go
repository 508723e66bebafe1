package usecase

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"

	"stock_dashboard/internal/feature/eulisting/domain"
	"stock_dashboard/internal/feature/eulisting/domain/entity"
	qusecase "stock_dashboard/internal/feature/quotes/usecase"
)

// QuoteTTL is how long a resolved EU quote stays cached.
const QuoteTTL = 30 * time.Second

// CacheKeyPrefix prefixes cached EU resolutions.
const CacheKeyPrefix = "eu-quote:"

// ResolveTimeout bounds one shared resolution. It does not depend on the caller that started it.
const ResolveTimeout = time.Minute

// EUQuoteUsecase はEU上場銘柄の解決結果をキャッシュし、同一銘柄への同時リクエストを1回にまとめます。
type EUQuoteUsecase struct {
	resolver *Resolver
	cache    qusecase.ResultCache
	group    singleflight.Group
	timeout  time.Duration
}

// NewEUQuoteUsecase は新しい EUQuoteUsecase を作成します。cache は nil でも構いません。
func NewEUQuoteUsecase(resolver *Resolver, cache qusecase.ResultCache) *EUQuoteUsecase {
	return &EUQuoteUsecase{resolver: resolver, cache: cache, timeout: ResolveTimeout}
}

// GetEUQuote resolves the German listing of usSymbol.
// Only found resolutions are cached so a listing that appears later is picked up.
func (u *EUQuoteUsecase) GetEUQuote(ctx context.Context, usSymbol string) (entity.Resolution, error) {
	sym, err := qusecase.NormalizeSymbol(usSymbol)
	if err != nil {
		return entity.Resolution{}, err
	}

	key := CacheKeyPrefix + sym
	var cached entity.Resolution
	if u.cache != nil && u.cache.Load(ctx, key, &cached) && cached.Found() {
		return cached, nil
	}

	// 解決処理は呼び出し元のキャンセルから切り離し、待機中の他のリクエストを巻き込まない
	ch := u.group.DoChan(sym, func() (any, error) {
		rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.timeout)
		defer cancel()

		res, err := u.resolver.Resolve(rctx, sym)
		if err != nil {
			return entity.Resolution{}, err
		}
		if res.Found() && u.cache != nil {
			u.cache.Save(rctx, key, res, QuoteTTL)
		}
		return res, nil
	})

	select {
	case <-ctx.Done():
		return entity.Resolution{}, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return entity.Resolution{}, r.Err
		}
		return r.Val.(entity.Resolution), nil
	}
}

// Mappings returns the known mapping table the resolver consults.
func (u *EUQuoteUsecase) Mappings() []domain.Mapping {
	return u.resolver.mappings.Entries()
}
