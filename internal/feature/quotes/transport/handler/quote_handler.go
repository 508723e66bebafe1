// Package handler はquotesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_dashboard/internal/api"
	"stock_dashboard/internal/feature/quotes/domain/entity"
)

// QuoteUsecase は株価・検索・企業情報のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type QuoteUsecase interface {
	GetQuote(ctx context.Context, symbol string) (entity.Quote, error)
	Search(ctx context.Context, query string) ([]entity.SearchResult, error)
	GetCompany(ctx context.Context, symbol string) (entity.CompanyInfo, error)
	GetFundamentals(ctx context.Context, symbol string) (entity.Fundamentals, error)
	GetSignals(ctx context.Context, symbol string) (entity.TechnicalSignals, error)
}

// QuoteHandler はUS株価関連のHTTPリクエストを処理します。
type QuoteHandler struct {
	uc QuoteUsecase
}

// NewQuoteHandler は新しい QuoteHandler を作成します。
func NewQuoteHandler(uc QuoteUsecase) *QuoteHandler {
	return &QuoteHandler{uc: uc}
}

// GetQuote は現在のUS株価を返します。
//
// GET /api/quote?symbol=AAPL
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	q, err := h.uc.GetQuote(c.Request.Context(), c.Query("symbol"))
	if err != nil {
		api.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.NewQuoteResponse(q))
}

// Search はティッカー・企業名で銘柄を検索します。
//
// GET /api/search?q=apple
func (h *QuoteHandler) Search(c *gin.Context) {
	results, err := h.uc.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		api.WriteError(c, err)
		return
	}

	out := make([]api.SearchResultResponse, 0, len(results))
	for _, r := range results {
		out = append(out, api.SearchResultResponse{
			Symbol:          r.Symbol,
			Name:            r.Name,
			Exchange:        r.Exchange,
			ExchangeDisplay: r.ExchangeDisplay,
			Type:            r.Type,
			Currency:        r.Currency,
			Region:          string(r.Region),
		})
	}
	c.JSON(http.StatusOK, out)
}

// GetCompany は企業プロフィールを返します。
//
// GET /api/company?symbol=AAPL
func (h *QuoteHandler) GetCompany(c *gin.Context) {
	info, err := h.uc.GetCompany(c.Request.Context(), c.Query("symbol"))
	if err != nil {
		api.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.CompanyInfoResponse{
		Name:     info.Name,
		Symbol:   info.Symbol,
		ISIN:     info.ISIN,
		Sector:   info.Sector,
		Industry: info.Industry,
		Exchange: info.Exchange,
		Currency: info.Currency,
		Country:  info.Country,
	})
}

// GetFundamentals はファンダメンタルズ指標を返します。取得失敗時も null 値で200を返します。
//
// GET /api/fundamentals?symbol=AAPL
func (h *QuoteHandler) GetFundamentals(c *gin.Context) {
	f, err := h.uc.GetFundamentals(c.Request.Context(), c.Query("symbol"))
	if err != nil {
		api.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.FundamentalsResponse{
		MarketCap:        f.MarketCap,
		PERatioTTM:       f.PERatioTTM,
		DividendYield:    f.DividendYield,
		RevenueGrowthYoY: f.RevenueGrowthYoY,
		Beta:             f.Beta,
	})
}

// GetSignals は50日・200日移動平均と出来高のシグナルを返します。
//
// GET /api/signals?symbol=AAPL
func (h *QuoteHandler) GetSignals(c *gin.Context) {
	s, err := h.uc.GetSignals(c.Request.Context(), c.Query("symbol"))
	if err != nil {
		api.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.TechnicalSignalsResponse{
		SMA50:                   s.SMA50,
		SMA200:                  s.SMA200,
		CurrentPrice:            s.CurrentPrice,
		DistanceToSMA50Percent:  s.DistanceToSMA50Percent,
		DistanceToSMA200Percent: s.DistanceToSMA200Percent,
		VolumeChangePercent:     s.VolumeChangePercent,
		AvgVolume30dHistorical:  s.AvgVolume30dHistorical,
	})
}
