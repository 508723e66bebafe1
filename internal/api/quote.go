package api

import "stock_dashboard/internal/feature/quotes/domain/entity"

// NewQuoteResponse converts a provider quote to its JSON shape.
func NewQuoteResponse(q entity.Quote) QuoteResponse {
	return QuoteResponse{
		Symbol:        q.Symbol,
		Price:         q.Price,
		Currency:      q.Currency,
		Change:        q.Change,
		ChangePercent: q.ChangePercent,
		PreviousClose: q.PreviousClose,
		Open:          q.Open,
		DayHigh:       q.DayHigh,
		DayLow:        q.DayLow,
		Volume:        q.Volume,
		AvgVolume30d:  q.AvgVolume30d,
		Timestamp:     q.Timestamp,
		Exchange:      q.Exchange,
		MarketState:   string(q.MarketState),
	}
}
