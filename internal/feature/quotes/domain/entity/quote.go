// Package entity defines the domain models for the quotes feature.
package entity

import (
	"strings"
	"time"
)

// MarketState is the trading session an exchange is currently in.
type MarketState string

const (
	MarketStatePre     MarketState = "PRE"
	MarketStateRegular MarketState = "REGULAR"
	MarketStatePost    MarketState = "POST"
	MarketStateClosed  MarketState = "CLOSED"
)

// ParseMarketState maps the provider's free-form market state onto the four known states.
// Anything unrecognised (PREPRE, POSTPOST, empty) is reported as CLOSED.
func ParseMarketState(s string) MarketState {
	switch MarketState(strings.ToUpper(strings.TrimSpace(s))) {
	case MarketStatePre:
		return MarketStatePre
	case MarketStateRegular:
		return MarketStateRegular
	case MarketStatePost:
		return MarketStatePost
	default:
		return MarketStateClosed
	}
}

// Quote is a snapshot of one listing's current trading data as returned by the provider.
// It is produced fresh on every lookup and never persisted.
type Quote struct {
	Symbol        string      // Ticker on the quoted exchange (e.g. "AAPL", "AHLA.DE")
	ShortName     string      // Display name used by the EU name-search fallback
	LongName      string      // Legal name, used when ShortName is empty
	Price         float64     // regularMarketPrice
	Currency      string      // ISO currency code ("USD", "EUR")
	Change        float64     // Absolute change vs previous close
	ChangePercent float64     // Percentage change vs previous close
	PreviousClose float64     // Previous session close
	Open          float64     // Session open
	DayHigh       float64     // Session high
	DayLow        float64     // Session low
	Volume        int64       // Session volume
	AvgVolume30d  int64       // Average daily volume reported by the provider
	Timestamp     time.Time   // Time of the last trade
	Exchange      string      // Full exchange name, falls back to exchange code
	MarketState   MarketState // PRE, REGULAR, POST or CLOSED

	// Fundamentals carried by the quote endpoint. Zero means "not reported".
	MarketCap                   float64
	TrailingPE                  float64
	TrailingAnnualDividendYield float64
	Beta                        float64
}

// DisplayName returns the short name, the long name, or "" when the provider sent neither.
func (q Quote) DisplayName() string {
	if q.ShortName != "" {
		return q.ShortName
	}
	return q.LongName
}

// HasEURPrice reports whether the quote carries observable EUR market data:
// a strictly positive price denominated in EUR.
func (q Quote) HasEURPrice() bool {
	return q.Price > 0 && q.Currency == "EUR"
}
