// Package handler はeulistingフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_dashboard/internal/api"
	"stock_dashboard/internal/feature/eulisting/domain"
	"stock_dashboard/internal/feature/eulisting/domain/entity"
)

// MsgNoEUListing is the error text of a not-found body.
const MsgNoEUListing = "No EU listing found"

// EUQuoteUsecase はEU上場の解決ユースケースです。
type EUQuoteUsecase interface {
	GetEUQuote(ctx context.Context, usSymbol string) (entity.Resolution, error)
	Mappings() []domain.Mapping
}

// EUQuoteHandler はEU上場株価のHTTPリクエストを処理します。
type EUQuoteHandler struct {
	uc EUQuoteUsecase
}

// NewEUQuoteHandler は新しい EUQuoteHandler を作成します。
func NewEUQuoteHandler(uc EUQuoteUsecase) *EUQuoteHandler {
	return &EUQuoteHandler{uc: uc}
}

// GetEUQuote はUSティッカーに対応するドイツ市場の株価を返します。
//
// エンドポイント例:
// GET /api/eu-quote?symbol=BABA
func (h *EUQuoteHandler) GetEUQuote(c *gin.Context) {
	res, err := h.uc.GetEUQuote(c.Request.Context(), c.Query("symbol"))
	if err != nil {
		api.WriteError(c, err)
		return
	}

	if !res.Found() {
		c.JSON(http.StatusNotFound, api.EUNotFoundResponse{
			NotFound: true,
			Tried:    res.Tried(),
			Error:    MsgNoEUListing,
		})
		return
	}
	c.JSON(http.StatusOK, api.NewQuoteResponse(*res.Quote))
}

// ListMappings returns the curated US -> EU ticker table.
//
// GET /admin/eu-mappings
func (h *EUQuoteHandler) ListMappings(c *gin.Context) {
	mappings := h.uc.Mappings()
	out := make([]api.MappingResponse, 0, len(mappings))
	for _, m := range mappings {
		out = append(out, api.MappingResponse{USSymbol: m.USSymbol, Candidates: m.Candidates})
	}
	c.JSON(http.StatusOK, out)
}
