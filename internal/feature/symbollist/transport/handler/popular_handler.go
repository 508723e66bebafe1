package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_dashboard/internal/api"
	"stock_dashboard/internal/feature/symbollist/domain"
	"stock_dashboard/internal/feature/symbollist/domain/entity"
)

// PopularUsecase は人気銘柄に関するユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type PopularUsecase interface {
	ListPopular(ctx context.Context, category string) ([]entity.PopularStock, error)
}

// PopularHandler は人気銘柄に関するHTTPリクエストを処理します。
type PopularHandler struct {
	uc PopularUsecase
}

// NewPopularHandler は新しい PopularHandler を作成します。
func NewPopularHandler(uc PopularUsecase) *PopularHandler {
	return &PopularHandler{uc: uc}
}

// List は有効な人気銘柄の一覧を返すAPIです。
// 不明なカテゴリは400、それ以外のエラーは500を返します。
//
// GET /api/popular?category=tech
func (h *PopularHandler) List(c *gin.Context) {
	stocks, err := h.uc.ListPopular(c.Request.Context(), c.Query("category"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCategory) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	out := make([]api.PopularStockResponse, 0, len(stocks))
	for _, s := range stocks {
		out = append(out, api.PopularStockResponse{
			Symbol:   s.Symbol,
			Name:     s.Name,
			Exchange: s.Exchange,
			Category: string(s.Category),
		})
	}
	c.JSON(http.StatusOK, out)
}
