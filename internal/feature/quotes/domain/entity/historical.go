package entity

import "time"

// HistoricalPoint is one daily close of a symbol.
type HistoricalPoint struct {
	Date   time.Time
	Close  float64
	Volume int64
}
