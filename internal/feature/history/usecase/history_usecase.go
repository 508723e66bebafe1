// Package usecase は日足ヒストリカルデータ取得のビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"strings"

	"stock_dashboard/internal/feature/quotes/domain"
	"stock_dashboard/internal/feature/quotes/domain/entity"
	qusecase "stock_dashboard/internal/feature/quotes/usecase"
)

const (
	// DefaultRange はヒストリカルデータのデフォルト期間です。
	DefaultRange = "1y"
	// Interval は取得する足の間隔です。ダッシュボードは日足のみを扱います。
	Interval = "1d"
)

// ValidRanges are the chart ranges the provider accepts.
var ValidRanges = []string{"1d", "5d", "1mo", "3mo", "6mo", "1y", "2y", "5y", "10y", "ytd", "max"}

// ChartRepository はヒストリカルデータの読み取りレイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type ChartRepository interface {
	GetChart(ctx context.Context, symbol, interval, rng, region string) ([]entity.HistoricalPoint, error)
}

// HistoryUsecase はヒストリカルデータ取得のユースケースです。
type HistoryUsecase struct {
	charts ChartRepository
}

// NewHistoryUsecase はHistoryUsecaseの新しいインスタンスを生成します。
func NewHistoryUsecase(charts ChartRepository) *HistoryUsecase {
	return &HistoryUsecase{charts: charts}
}

// GetHistorical は指定された銘柄・期間の日足データを取得します。
// rng が空の場合は DefaultRange を使用します。
func (u *HistoryUsecase) GetHistorical(ctx context.Context, symbol, rng string) ([]entity.HistoricalPoint, error) {
	s, err := qusecase.NormalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}

	rng = strings.ToLower(strings.TrimSpace(rng))
	if rng == "" {
		rng = DefaultRange
	}
	if !IsValidRange(rng) {
		return nil, fmt.Errorf("%w: %q (valid: %s)", domain.ErrInvalidRange, rng, strings.Join(ValidRanges, ","))
	}

	points, err := u.charts.GetChart(ctx, s, Interval, rng, qusecase.RegionUS)
	if err != nil {
		return nil, err
	}
	return points, nil
}

// IsValidRange reports whether rng is one of ValidRanges.
func IsValidRange(rng string) bool {
	for _, r := range ValidRanges {
		if r == rng {
			return true
		}
	}
	return false
}
