// Command prefetch warms the quote and EU listing caches for the popular stocks once.
// It is meant to run from an external scheduler when the server's own cron job is disabled.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"stock_dashboard/internal/app/config"
	"stock_dashboard/internal/app/di"
)

func main() {
	if err := run(); err != nil {
		slog.Error("prefetch failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load(".env")

	cfg := config.Load()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	app, err := di.Build(ctx, cfg)
	if err != nil {
		return fmt.Errorf("build application: %w", err)
	}
	defer app.Close()

	res, err := app.Prefetch.WarmAll(ctx)
	if err != nil {
		return err
	}
	slog.Info("prefetch ok", "symbols", res.Symbols, "eu_found", res.EUFound, "failures", res.Failures)
	return nil
}
