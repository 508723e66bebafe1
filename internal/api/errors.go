package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	fxdomain "stock_dashboard/internal/feature/dualquote/domain"
	"stock_dashboard/internal/feature/quotes/domain"
)

// MsgNotConfigured is the body returned when the market data provider has no usable credentials.
const MsgNotConfigured = "API key not configured"

// StatusFor maps a usecase error to an HTTP status:
// invalid input 400, missing data 404, provider configuration 500 and any other upstream failure 502.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidSymbol),
		errors.Is(err, domain.ErrInvalidRange),
		errors.Is(err, fxdomain.ErrInvalidCurrency):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrQuoteNotFound),
		errors.Is(err, domain.ErrNoHistoricalData),
		errors.Is(err, domain.ErrInsufficientHistory):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrProviderNotConfigured):
		return http.StatusInternalServerError
	default:
		return http.StatusBadGateway
	}
}

// WriteError writes err as an ErrorResponse with the status chosen by StatusFor.
// Configuration errors never leak upstream details.
func WriteError(c *gin.Context, err error) {
	status := StatusFor(err)
	msg := err.Error()
	if errors.Is(err, domain.ErrProviderNotConfigured) {
		msg = MsgNotConfigured
	}
	c.JSON(status, ErrorResponse{Error: msg})
}
