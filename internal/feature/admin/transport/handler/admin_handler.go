// Package handler exposes the admin cache endpoints.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"stock_dashboard/internal/api"
)

// CacheAdminUsecase は管理用キャッシュ操作のユースケースです。
type CacheAdminUsecase interface {
	Purge(ctx context.Context, prefix string) (int64, error)
}

// AdminHandler はJWTで保護された管理APIを処理します。
type AdminHandler struct {
	cache CacheAdminUsecase
}

// NewAdminHandler は新しい AdminHandler を作成します。
func NewAdminHandler(cache CacheAdminUsecase) *AdminHandler {
	return &AdminHandler{cache: cache}
}

// PurgeCache deletes cached entries by key prefix.
//
// DELETE /admin/cache?prefix=eu-quote:
func (h *AdminHandler) PurgeCache(c *gin.Context) {
	prefix := strings.TrimSpace(c.Query("prefix"))
	n, err := h.cache.Purge(c.Request.Context(), prefix)
	if err != nil {
		slog.Error("cache purge failed", "prefix", prefix, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "cache purge failed"})
		return
	}
	c.JSON(http.StatusOK, api.PurgeResponse{Prefix: prefix, Deleted: n})
}
