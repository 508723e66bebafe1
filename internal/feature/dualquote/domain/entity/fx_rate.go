// Package entity defines the domain models for the dualquote feature.
package entity

import (
	"time"

	qentity "stock_dashboard/internal/feature/quotes/domain/entity"
)

// FxRate is the reference exchange rate between two currencies.
type FxRate struct {
	Rate      float64
	From      string
	To        string
	Timestamp time.Time // publication date of the rate
}

// DualQuote combines the US listing, its German listing and the USD/EUR rate.
// EU is nil when no German listing could be verified; EUTried then lists the candidates.
type DualQuote struct {
	US      qentity.Quote
	EU      *qentity.Quote
	EUTried []string
	FxRate  FxRate
}
