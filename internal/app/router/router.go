// Package router builds the gin engine and its route table.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"stock_dashboard/internal/app/config"
	"stock_dashboard/internal/app/di"
	"stock_dashboard/internal/platform/http/handler"
	jwtmw "stock_dashboard/internal/platform/jwt"
)

// NewRouter mounts every handler. jwtSecret guards the /admin group except /admin/login.
func NewRouter(cfg config.Config, h di.Handlers, jwtSecret string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), RequestLogger(), cors.New(corsConfig(cfg)))

	// 導通確認用
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	r.GET("/health", handler.Status(time.Now))

	api := r.Group("/api")
	{
		api.GET("/quote", h.Quotes.GetQuote)
		api.GET("/search", h.Quotes.Search)
		api.GET("/company", h.Quotes.GetCompany)
		api.GET("/fundamentals", h.Quotes.GetFundamentals)
		api.GET("/signals", h.Quotes.GetSignals)
		api.GET("/historical", h.History.GetHistorical)
		api.GET("/eu-quote", h.EUQuote.GetEUQuote)
		api.GET("/dual-quote", h.DualQuote.GetDualQuote)
		api.GET("/fx", h.DualQuote.GetFxRate)
		api.GET("/market-hours", h.MarketHours.GetMarketHours)
		api.GET("/popular", h.Popular.List)
	}

	// ログイン（JWT 発行）
	r.POST("/admin/login", h.Auth.Login)

	// 認証必須のルート
	admin := r.Group("/admin")
	admin.Use(jwtmw.AuthRequired(jwtSecret))
	{
		admin.DELETE("/cache", h.Admin.PurgeCache)
		admin.GET("/eu-mappings", h.EUQuote.ListMappings)
	}

	return r
}

func corsConfig(cfg config.Config) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", HeaderRequestID},
		ExposeHeaders: []string{HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	if cfg.AllowAllOrigins() {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.CORSAllowedOrigins
	}
	return c
}
