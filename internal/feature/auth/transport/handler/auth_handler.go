// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"stock_dashboard/internal/api"
	"stock_dashboard/internal/feature/auth/domain"
)

// AuthUsecase は管理者ログインのユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	Login(ctx context.Context, password string) (string, time.Time, error)
}

// AuthHandler は管理者ログインのHTTPリクエストを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login は管理者ログインAPIエンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - パスワード不一致時は401を返却
// - ハッシュ未設定時は503を返却
// - 成功時はJWTトークン付きで200を返却
//
// POST /admin/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req api.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("admin login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	token, exp, err := h.auth.Login(c.Request.Context(), req.Password)
	switch {
	case errors.Is(err, domain.ErrLoginDisabled):
		slog.Error("admin login attempted without ADMIN_PASSWORD_HASH", "remote_addr", c.ClientIP())
		c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Error: err.Error()})
		return
	case errors.Is(err, domain.ErrInvalidCredentials):
		slog.Warn("admin login failed", "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid password"})
		return
	case err != nil:
		slog.Error("admin login error", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "login failed"})
		return
	}
	slog.Info("admin login successful", "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.TokenResponse{Token: token, ExpiresAt: exp})
}
