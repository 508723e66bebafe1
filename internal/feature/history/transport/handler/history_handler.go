// Package handler はhistoryフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"

	"stock_dashboard/internal/api"
	"stock_dashboard/internal/feature/quotes/domain/entity"
)

// HistoryUsecase はヒストリカルデータ取得のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type HistoryUsecase interface {
	GetHistorical(ctx context.Context, symbol, rng string) ([]entity.HistoricalPoint, error)
}

// HistoryHandler はヒストリカルデータのHTTPリクエストを処理します。
type HistoryHandler struct {
	uc HistoryUsecase
}

// NewHistoryHandler は指定されたusecaseでHistoryHandlerの新しいインスタンスを生成します。
func NewHistoryHandler(uc HistoryUsecase) *HistoryHandler {
	return &HistoryHandler{uc: uc}
}

// GetHistoricalParams は /api/historical のクエリパラメータです。
type GetHistoricalParams struct {
	Symbol string  `form:"symbol"`
	Range  *string `form:"range,omitempty"`
}

// GetHistorical は銘柄と期間を受け取り、日足データをJSONで返します。
//
// エンドポイント例:
// GET /api/historical?symbol=AAPL&range=1y
func (h *HistoryHandler) GetHistorical(c *gin.Context) {
	var params GetHistoricalParams
	query := c.Request.URL.Query()

	if err := runtime.BindQueryParameter("form", true, true, "symbol", query, &params.Symbol); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid symbol: " + err.Error()})
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "range", query, &params.Range); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid range: " + err.Error()})
		return
	}

	rng := ""
	if params.Range != nil {
		rng = *params.Range
	}

	points, err := h.uc.GetHistorical(c.Request.Context(), params.Symbol, rng)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	// データをフォーマット
	out := make([]api.HistoricalPointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, api.HistoricalPointResponse{
			Date:   p.Date.UTC().Format("2006-01-02"),
			Close:  p.Close,
			Volume: p.Volume,
		})
	}
	c.JSON(http.StatusOK, out)
}
