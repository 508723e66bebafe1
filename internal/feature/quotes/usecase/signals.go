package usecase

import (
	"context"
	"fmt"
	"math"

	"github.com/markcheno/go-talib"
	"gonum.org/v1/gonum/stat"

	"stock_dashboard/internal/feature/quotes/domain"
	"stock_dashboard/internal/feature/quotes/domain/entity"
)

const (
	shortSMAPeriod  = 50
	longSMAPeriod   = 200
	volumeLookback  = 30
	signalsRange    = "1y"
	signalsInterval = "1d"
)

// CalculateSMA returns the simple moving average of the last period closes.
// ok is false when there are fewer than period closes.
func CalculateSMA(closes []float64, period int) (sma float64, ok bool) {
	if period <= 0 || len(closes) < period {
		return 0, false
	}
	// talib.Sma returns a series aligned with closes; the last element covers the latest window
	series := talib.Sma(closes, period)
	if len(series) == 0 {
		return 0, false
	}
	last := series[len(series)-1]
	if math.IsNaN(last) {
		return 0, false
	}
	return last, true
}

// VolumeComparison returns how far current volume is above (positive) or below the average, in percent.
// A zero average yields 0.
func VolumeComparison(current, avg float64) float64 {
	if avg == 0 {
		return 0
	}
	return (current - avg) / avg * 100
}

// DistancePercent returns how far price is above (positive) or below ref, in percent.
// A zero ref yields 0.
func DistancePercent(price, ref float64) float64 {
	if ref == 0 {
		return 0
	}
	return (price - ref) / ref * 100
}

// CalculateTechnicalSignals derives SMA distances from a daily series and the current price.
func CalculateTechnicalSignals(points []entity.HistoricalPoint, currentPrice float64) (entity.TechnicalSignals, bool) {
	closes := make([]float64, len(points))
	for i, p := range points {
		closes[i] = p.Close
	}

	sma50, ok50 := CalculateSMA(closes, shortSMAPeriod)
	sma200, ok200 := CalculateSMA(closes, longSMAPeriod)
	if !ok50 || !ok200 {
		return entity.TechnicalSignals{}, false
	}

	return entity.TechnicalSignals{
		SMA50:                   sma50,
		SMA200:                  sma200,
		CurrentPrice:            currentPrice,
		DistanceToSMA50Percent:  DistancePercent(currentPrice, sma50),
		DistanceToSMA200Percent: DistancePercent(currentPrice, sma200),
	}, true
}

// AverageVolume returns the mean volume of the last n points, or 0 when points is empty.
func AverageVolume(points []entity.HistoricalPoint, n int) float64 {
	if len(points) == 0 || n <= 0 {
		return 0
	}
	if len(points) > n {
		points = points[len(points)-n:]
	}
	vols := make([]float64, len(points))
	for i, p := range points {
		vols[i] = float64(p.Volume)
	}
	return stat.Mean(vols, nil)
}

// GetSignals combines the current US quote with one year of daily closes.
func (u *QuoteUsecase) GetSignals(ctx context.Context, symbol string) (entity.TechnicalSignals, error) {
	quote, err := u.GetQuote(ctx, symbol)
	if err != nil {
		return entity.TechnicalSignals{}, err
	}

	points, err := u.market.GetChart(ctx, quote.Symbol, signalsInterval, signalsRange, RegionUS)
	if err != nil {
		return entity.TechnicalSignals{}, err
	}

	signals, ok := CalculateTechnicalSignals(points, quote.Price)
	if !ok {
		return entity.TechnicalSignals{}, fmt.Errorf("%w: %d points, need %d", domain.ErrInsufficientHistory, len(points), longSMAPeriod)
	}

	signals.AvgVolume30dHistorical = AverageVolume(points, volumeLookback)
	avg := float64(quote.AvgVolume30d)
	if avg == 0 {
		avg = signals.AvgVolume30dHistorical
	}
	signals.VolumeChangePercent = VolumeComparison(float64(quote.Volume), avg)
	return signals, nil
}
