package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	euentity "stock_dashboard/internal/feature/eulisting/domain/entity"
	qentity "stock_dashboard/internal/feature/quotes/domain/entity"
	"stock_dashboard/internal/feature/symbollist/usecase"
)

type stubSymbols struct {
	symbols []string
	err     error
}

func (s stubSymbols) ActiveSymbols(context.Context) ([]string, error) { return s.symbols, s.err }

type stubQuotes struct {
	fail  map[string]bool
	calls []string
}

func (s *stubQuotes) GetQuote(_ context.Context, symbol string) (qentity.Quote, error) {
	s.calls = append(s.calls, symbol)
	if s.fail[symbol] {
		return qentity.Quote{}, errors.New("yahoo http 500")
	}
	return qentity.Quote{Symbol: symbol, Price: 1, Currency: "USD"}, nil
}

type stubEU struct {
	found map[string]bool
	calls []string
}

func (s *stubEU) GetEUQuote(_ context.Context, symbol string) (euentity.Resolution, error) {
	s.calls = append(s.calls, symbol)
	if s.found[symbol] {
		return euentity.Resolution{USSymbol: symbol, Quote: &qentity.Quote{Symbol: symbol + ".DE"}}, nil
	}
	return euentity.Resolution{USSymbol: symbol}, nil
}

// mockRateLimiter は待機せずに呼び出し回数だけを数えます。
type mockRateLimiter struct {
	calls     int
	failAfter int // この回数を超えたらcontext.Canceledを返す。0は無制限
}

func (m *mockRateLimiter) Wait(ctx context.Context) error {
	m.calls++
	if m.failAfter > 0 && m.calls > m.failAfter {
		return context.Canceled
	}
	return nil
}

func TestPrefetchUsecase_WarmAll(t *testing.T) {
	quotes := &stubQuotes{fail: map[string]bool{"SOFI": true}}
	eu := &stubEU{found: map[string]bool{"NVDA": true, "BABA": true}}
	rl := &mockRateLimiter{}
	uc := usecase.NewPrefetchUsecase(stubSymbols{symbols: []string{"NVDA", "SOFI", "BABA", "ASTS"}}, quotes, eu, rl)

	res, err := uc.WarmAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, res.Symbols)
	assert.Equal(t, 3, res.QuotesOK)
	assert.Equal(t, 2, res.EUFound)
	assert.Equal(t, 1, res.Failures)
	assert.False(t, res.Incomplete)

	assert.Equal(t, []string{"NVDA", "SOFI", "BABA", "ASTS"}, quotes.calls)
	assert.Equal(t, []string{"NVDA", "BABA", "ASTS"}, eu.calls, "EU resolution is skipped when the US quote fails")
	assert.Equal(t, 4, rl.calls, "one wait per US quote; EU lookups are paced by the resolver")
}

func TestPrefetchUsecase_ListError(t *testing.T) {
	uc := usecase.NewPrefetchUsecase(stubSymbols{err: errors.New("db down")}, &stubQuotes{}, &stubEU{}, &mockRateLimiter{})

	_, err := uc.WarmAll(context.Background())
	assert.EqualError(t, err, "db down")
}

func TestPrefetchUsecase_StopsWhenLimiterCancelled(t *testing.T) {
	quotes := &stubQuotes{}
	eu := &stubEU{}
	rl := &mockRateLimiter{failAfter: 2}
	uc := usecase.NewPrefetchUsecase(stubSymbols{symbols: []string{"NVDA", "AAPL", "MSFT"}}, quotes, eu, rl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := uc.WarmAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, res.Incomplete)
	assert.Equal(t, []string{"NVDA", "AAPL"}, quotes.calls)
	assert.Equal(t, []string{"NVDA", "AAPL"}, eu.calls)
}
