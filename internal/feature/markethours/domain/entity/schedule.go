// Package entity defines exchange trading schedules and the status derived from them.
package entity

import (
	"time"

	qentity "stock_dashboard/internal/feature/quotes/domain/entity"
)

// Event is the next session boundary of an exchange.
type Event string

const (
	EventOpen  Event = "open"
	EventClose Event = "close"
)

// Schedule is the regular trading day of one exchange in its local time zone.
// Times are minutes since local midnight.
type Schedule struct {
	Exchange  string
	Location  *time.Location
	Open      int
	Close     int
	PreOpen   int // 0 when the exchange has no pre-market session
	PostClose int // 0 when the exchange has no after-hours session
}

// HasExtendedHours reports whether the exchange trades before the open and after the close.
func (s Schedule) HasExtendedHours() bool {
	return s.PreOpen > 0 && s.PostClose > 0
}

// MarketStatus is the state of an exchange at one instant.
type MarketStatus struct {
	Exchange     string
	State        qentity.MarketState
	IsOpen       bool
	NextEvent    Event // empty on weekends and after the close
	MinutesUntil int
	Countdown    string
}
