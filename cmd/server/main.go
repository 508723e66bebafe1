package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"stock_dashboard/internal/app/config"
	"stock_dashboard/internal/app/di"
	"stock_dashboard/internal/app/router"
	"stock_dashboard/internal/platform/scheduler"
)

const (
	shutdownTimeout = 10 * time.Second
	prefetchTimeout = 4 * time.Minute
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		slog.Info(".env not found; using system environment variables")
	}

	cfg := config.Load()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := di.Build(ctx, cfg)
	if err != nil {
		return fmt.Errorf("build application: %w", err)
	}
	defer app.Close()

	// JWT_SECRETチェック（開発中の注意喚起）
	if app.JWTSecret == "" {
		slog.Warn("JWT_SECRET is not set; admin endpoints will reject every request")
	}

	// 人気銘柄の先読み
	if cfg.PrefetchSchedule != "" {
		sched := scheduler.New(prefetchTimeout)
		job := scheduler.JobFunc{JobName: "prefetch-popular", Fn: func(ctx context.Context) error {
			_, err := app.Prefetch.WarmAll(ctx)
			return err
		}}
		if err := sched.AddJob(cfg.PrefetchSchedule, job); err != nil {
			return fmt.Errorf("invalid PREFETCH_SCHEDULE %q: %w", cfg.PrefetchSchedule, err)
		}
		sched.Start()
		defer sched.Stop()
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.NewRouter(cfg, app.Handlers, app.JWTSecret),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}
