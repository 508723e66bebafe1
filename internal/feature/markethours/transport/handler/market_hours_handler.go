// Package handler はmarkethoursフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"

	"stock_dashboard/internal/api"
	"stock_dashboard/internal/feature/markethours/domain"
	"stock_dashboard/internal/feature/markethours/domain/entity"
)

// MarketHoursUsecase は市場状態取得のユースケースです。
type MarketHoursUsecase interface {
	GetStatus(exchange string) (entity.MarketStatus, error)
	GetAll() []entity.MarketStatus
}

// MarketHoursHandler は取引所の開閉状態を返します。
type MarketHoursHandler struct {
	uc MarketHoursUsecase
}

// NewMarketHoursHandler は新しい MarketHoursHandler を作成します。
func NewMarketHoursHandler(uc MarketHoursUsecase) *MarketHoursHandler {
	return &MarketHoursHandler{uc: uc}
}

// GetMarketHours returns one exchange when ?exchange= is given, otherwise all of them.
//
// GET /api/market-hours?exchange=XETRA
func (h *MarketHoursHandler) GetMarketHours(c *gin.Context) {
	var exchange *string
	if err := runtime.BindQueryParameter("form", true, false, "exchange", c.Request.URL.Query(), &exchange); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	if exchange == nil || *exchange == "" {
		all := h.uc.GetAll()
		out := make([]api.MarketStatusResponse, 0, len(all))
		for _, s := range all {
			out = append(out, toResponse(s))
		}
		c.JSON(http.StatusOK, out)
		return
	}

	st, err := h.uc.GetStatus(*exchange)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownExchange) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, toResponse(st))
}

func toResponse(s entity.MarketStatus) api.MarketStatusResponse {
	return api.MarketStatusResponse{
		Exchange:     s.Exchange,
		State:        string(s.State),
		IsOpen:       s.IsOpen,
		NextEvent:    string(s.NextEvent),
		MinutesUntil: s.MinutesUntil,
		Countdown:    s.Countdown,
	}
}
