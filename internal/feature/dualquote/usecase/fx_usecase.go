// Package usecase combines the US quote, the EU listing resolution and the FX rate.
package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"stock_dashboard/internal/feature/dualquote/domain"
	"stock_dashboard/internal/feature/dualquote/domain/entity"
	qusecase "stock_dashboard/internal/feature/quotes/usecase"
)

// FxTTL is how long a rate is cached. Reference rates change once a day.
const FxTTL = 5 * time.Minute

// RateProvider fetches exchange rates.
type RateProvider interface {
	GetRate(ctx context.Context, from, to string) (entity.FxRate, error)
}

// FxUsecase は為替レートの取得とキャッシュを行います。
type FxUsecase struct {
	rates RateProvider
	cache qusecase.ResultCache
}

// NewFxUsecase は新しい FxUsecase を作成します。cache は nil でも構いません。
func NewFxUsecase(rates RateProvider, cache qusecase.ResultCache) *FxUsecase {
	return &FxUsecase{rates: rates, cache: cache}
}

// GetRate returns the rate converting from into to, cached for FxTTL.
func (u *FxUsecase) GetRate(ctx context.Context, from, to string) (entity.FxRate, error) {
	from, err := normalizeCurrency(from)
	if err != nil {
		return entity.FxRate{}, err
	}
	to, err = normalizeCurrency(to)
	if err != nil {
		return entity.FxRate{}, err
	}

	key := fmt.Sprintf("fx:%s:%s", from, to)
	var rate entity.FxRate
	if u.cache != nil && u.cache.Load(ctx, key, &rate) {
		return rate, nil
	}

	rate, err = u.rates.GetRate(ctx, from, to)
	if err != nil {
		return entity.FxRate{}, fmt.Errorf("fx rate %s/%s: %w", from, to, err)
	}
	if u.cache != nil {
		u.cache.Save(ctx, key, rate, FxTTL)
	}
	return rate, nil
}

func normalizeCurrency(code string) (string, error) {
	c := strings.ToUpper(strings.TrimSpace(code))
	if len(c) != 3 {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidCurrency, code)
	}
	for _, r := range c {
		if r < 'A' || r > 'Z' {
			return "", fmt.Errorf("%w: %q", domain.ErrInvalidCurrency, code)
		}
	}
	return c, nil
}
