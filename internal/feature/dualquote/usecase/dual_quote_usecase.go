package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"stock_dashboard/internal/feature/dualquote/domain/entity"
	euentity "stock_dashboard/internal/feature/eulisting/domain/entity"
	qentity "stock_dashboard/internal/feature/quotes/domain/entity"
	qusecase "stock_dashboard/internal/feature/quotes/usecase"
)

// QuoteGetter returns the US quote of a symbol.
type QuoteGetter interface {
	GetQuote(ctx context.Context, symbol string) (qentity.Quote, error)
}

// EUResolver resolves the German listing of a US symbol.
type EUResolver interface {
	GetEUQuote(ctx context.Context, usSymbol string) (euentity.Resolution, error)
}

// RateGetter returns a cached exchange rate.
type RateGetter interface {
	GetRate(ctx context.Context, from, to string) (entity.FxRate, error)
}

// DualQuoteUsecase はUS株価・EU株価・USD/EUR為替を並行して取得します。
type DualQuoteUsecase struct {
	us QuoteGetter
	eu EUResolver
	fx RateGetter
}

// NewDualQuoteUsecase は新しい DualQuoteUsecase を作成します。
func NewDualQuoteUsecase(us QuoteGetter, eu EUResolver, fx RateGetter) *DualQuoteUsecase {
	return &DualQuoteUsecase{us: us, eu: eu, fx: fx}
}

// GetDualQuote fetches the three parts concurrently.
// A missing EU listing is not an error; any failure of the US quote, the EU resolver or the rate is.
func (u *DualQuoteUsecase) GetDualQuote(ctx context.Context, symbol string) (entity.DualQuote, error) {
	sym, err := qusecase.NormalizeSymbol(symbol)
	if err != nil {
		return entity.DualQuote{}, err
	}

	var (
		out entity.DualQuote
		res euentity.Resolution
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		q, err := u.us.GetQuote(gctx, sym)
		out.US = q
		return err
	})
	g.Go(func() error {
		r, err := u.eu.GetEUQuote(gctx, sym)
		res = r
		return err
	})
	g.Go(func() error {
		rate, err := u.fx.GetRate(gctx, "USD", "EUR")
		out.FxRate = rate
		return err
	})
	if err := g.Wait(); err != nil {
		return entity.DualQuote{}, err
	}

	if res.Found() {
		out.EU = res.Quote
	} else {
		out.EUTried = res.Tried()
	}
	return out, nil
}
