// Package handler はdualquoteフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_dashboard/internal/api"
	"stock_dashboard/internal/feature/dualquote/domain/entity"
)

// DualQuoteUsecase はUS/EU株価と為替をまとめて取得するユースケースです。
type DualQuoteUsecase interface {
	GetDualQuote(ctx context.Context, symbol string) (entity.DualQuote, error)
}

// FxUsecase は為替レート取得のユースケースです。
type FxUsecase interface {
	GetRate(ctx context.Context, from, to string) (entity.FxRate, error)
}

// DualQuoteHandler は /api/dual-quote と /api/fx を処理します。
type DualQuoteHandler struct {
	dual DualQuoteUsecase
	fx   FxUsecase
}

// NewDualQuoteHandler は新しい DualQuoteHandler を作成します。
func NewDualQuoteHandler(dual DualQuoteUsecase, fx FxUsecase) *DualQuoteHandler {
	return &DualQuoteHandler{dual: dual, fx: fx}
}

// GetDualQuote returns the US quote, its German listing (or null) and the USD/EUR rate.
//
// GET /api/dual-quote?symbol=BABA
func (h *DualQuoteHandler) GetDualQuote(c *gin.Context) {
	d, err := h.dual.GetDualQuote(c.Request.Context(), c.Query("symbol"))
	if err != nil {
		api.WriteError(c, err)
		return
	}

	out := api.DualQuoteResponse{
		US:      api.NewQuoteResponse(d.US),
		EUTried: d.EUTried,
		FxRate:  toFxRateResponse(d.FxRate),
	}
	if d.EU != nil {
		eu := api.NewQuoteResponse(*d.EU)
		out.EU = &eu
	}
	c.JSON(http.StatusOK, out)
}

// GetFxRate returns an exchange rate. from and to default to USD and EUR.
//
// GET /api/fx?from=USD&to=EUR
func (h *DualQuoteHandler) GetFxRate(c *gin.Context) {
	rate, err := h.fx.GetRate(c.Request.Context(), c.DefaultQuery("from", "USD"), c.DefaultQuery("to", "EUR"))
	if err != nil {
		api.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFxRateResponse(rate))
}

func toFxRateResponse(r entity.FxRate) api.FxRateResponse {
	return api.FxRateResponse{Rate: r.Rate, From: r.From, To: r.To, Timestamp: r.Timestamp}
}
