package di

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"stock_dashboard/internal/app/config"
	adminhandler "stock_dashboard/internal/feature/admin/transport/handler"
	adminusecase "stock_dashboard/internal/feature/admin/usecase"
	authhandler "stock_dashboard/internal/feature/auth/transport/handler"
	authusecase "stock_dashboard/internal/feature/auth/usecase"
	dualhandler "stock_dashboard/internal/feature/dualquote/transport/handler"
	dualusecase "stock_dashboard/internal/feature/dualquote/usecase"
	eudomain "stock_dashboard/internal/feature/eulisting/domain"
	euhandler "stock_dashboard/internal/feature/eulisting/transport/handler"
	euusecase "stock_dashboard/internal/feature/eulisting/usecase"
	historyhandler "stock_dashboard/internal/feature/history/transport/handler"
	historyusecase "stock_dashboard/internal/feature/history/usecase"
	mhhandler "stock_dashboard/internal/feature/markethours/transport/handler"
	mhusecase "stock_dashboard/internal/feature/markethours/usecase"
	quotehandler "stock_dashboard/internal/feature/quotes/transport/handler"
	quoteusecase "stock_dashboard/internal/feature/quotes/usecase"
	symboladapters "stock_dashboard/internal/feature/symbollist/adapters"
	symbolentity "stock_dashboard/internal/feature/symbollist/domain/entity"
	symbolhandler "stock_dashboard/internal/feature/symbollist/transport/handler"
	symbolusecase "stock_dashboard/internal/feature/symbollist/usecase"
	"stock_dashboard/internal/platform/cache"
	"stock_dashboard/internal/platform/db"
	jwtmw "stock_dashboard/internal/platform/jwt"
	"stock_dashboard/internal/shared/ratelimiter"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Quotes      *quotehandler.QuoteHandler
	History     *historyhandler.HistoryHandler
	EUQuote     *euhandler.EUQuoteHandler
	DualQuote   *dualhandler.DualQuoteHandler
	MarketHours *mhhandler.MarketHoursHandler
	Popular     *symbolhandler.PopularHandler
	Auth        *authhandler.AuthHandler
	Admin       *adminhandler.AdminHandler
}

// App is the assembled application.
type App struct {
	Handlers  Handlers
	JWTSecret string
	Prefetch  *symbolusecase.PrefetchUsecase
	DB        *gorm.DB

	closers []func()
}

// Close releases the cache client and the database pool.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// Build wires clients, caches, repositories, usecases and handlers.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	app := &App{}

	// Cache (Redis or in-memory)
	store, closeStore := NewCacheStore(ctx, cfg.CacheMaxItems)
	app.closers = append(app.closers, closeStore)
	codec := cache.NewCodec(store)

	// Upstream clients
	yahooClient, yahooCfg := NewYahooClient()
	market := cache.NewCachingMarket(yahooClient, codec)
	fxClient := NewFxClient()

	// DB
	database, err := db.OpenDB(db.LoadConfig(), &symbolentity.PopularStock{})
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("open database: %w", err)
	}
	app.DB = database
	if sqlDB, err := database.DB(); err == nil {
		app.closers = append(app.closers, func() { _ = sqlDB.Close() })
	}

	// Usecase
	quoteUC := quoteusecase.NewQuoteUsecase(market, codec)
	historyUC := historyusecase.NewHistoryUsecase(market)
	// 候補検証はキャッシュを通さない。NotFoundの結果をキャッシュしないため
	resolver := euusecase.NewResolver(yahooClient, eudomain.DefaultMappings, yahooCfg.CandidateTimeout)
	euUC := euusecase.NewEUQuoteUsecase(resolver, codec)
	fxUC := dualusecase.NewFxUsecase(fxClient, codec)
	dualUC := dualusecase.NewDualQuoteUsecase(quoteUC, euUC, fxUC)
	marketHoursUC := mhusecase.NewMarketHoursUsecase(mhusecase.DefaultSchedules(), time.Now)

	popularRepo := symboladapters.NewPopularStockRepository(database)
	popularUC := symbolusecase.NewPopularUsecase(popularRepo)
	if _, err := popularUC.EnsureSeeded(ctx, symbolusecase.DefaultPopularStocks()); err != nil {
		app.Close()
		return nil, err
	}
	// UPSTREAM_MAX_RPM は先読みが行う上流呼び出し全体（US株価と各候補の照会）の上限
	prefetchLimiter := ratelimiter.PerMinute(cfg.UpstreamMaxRPM)
	prefetchEU := euusecase.NewEUQuoteUsecase(resolver.WithRateLimiter(prefetchLimiter), codec)
	app.Prefetch = symbolusecase.NewPrefetchUsecase(popularUC, quoteUC, prefetchEU, prefetchLimiter)

	jwtCfg := jwtmw.LoadConfig()
	app.JWTSecret = jwtCfg.Secret
	authUC := authusecase.NewAdminAuthUsecase(authusecase.LoadConfig(), jwtmw.NewGenerator(jwtCfg.Secret, jwtCfg.Expiration))
	adminUC := adminusecase.NewCacheAdminUsecase(store)

	// Handler
	app.Handlers = Handlers{
		Quotes:      quotehandler.NewQuoteHandler(quoteUC),
		History:     historyhandler.NewHistoryHandler(historyUC),
		EUQuote:     euhandler.NewEUQuoteHandler(euUC),
		DualQuote:   dualhandler.NewDualQuoteHandler(dualUC, fxUC),
		MarketHours: mhhandler.NewMarketHoursHandler(marketHoursUC),
		Popular:     symbolhandler.NewPopularHandler(popularUC),
		Auth:        authhandler.NewAuthHandler(authUC),
		Admin:       adminhandler.NewAdminHandler(adminUC),
	}
	return app, nil
}
