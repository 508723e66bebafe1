// Package domain defines domain-level errors for the quotes feature.
package domain

import "errors"

// Domain errors for upstream market data operations.
var (
	// ErrProviderNotConfigured indicates that the market data provider cannot be used at all,
	// either because the API key is missing or because the provider rejected it.
	// It is the only failure the EU listing resolver propagates to its caller.
	ErrProviderNotConfigured = errors.New("market data provider not configured")

	// ErrQuoteNotFound indicates that the provider returned no quote for the symbol.
	ErrQuoteNotFound = errors.New("quote not found")

	// ErrInvalidSymbol indicates an empty or malformed ticker symbol.
	ErrInvalidSymbol = errors.New("invalid symbol")

	// ErrInvalidRange indicates a historical range the provider does not support.
	ErrInvalidRange = errors.New("invalid range")

	// ErrNoHistoricalData indicates that the chart endpoint returned no series.
	ErrNoHistoricalData = errors.New("no historical data")

	// ErrInsufficientHistory indicates that the series is too short for the requested indicator.
	ErrInsufficientHistory = errors.New("insufficient history")
)
