// Package di provides dependency injection factories for creating application components.
package di

import (
	"stock_dashboard/internal/platform/externalapi/frankfurter"
	"stock_dashboard/internal/platform/externalapi/yahoo"
	infrahttp "stock_dashboard/internal/platform/http"
)

// NewYahooClient creates a fully configured Yahoo Finance client with HTTP client.
func NewYahooClient() (*yahoo.Client, yahoo.Config) {
	cfg := yahoo.LoadConfig()
	return yahoo.NewClient(cfg, infrahttp.NewHTTPClient(cfg.Timeout)), cfg
}

// NewFxClient creates the Frankfurter FX client.
func NewFxClient() *frankfurter.Client {
	cfg := frankfurter.LoadConfig()
	return frankfurter.NewClient(cfg, infrahttp.NewHTTPClient(cfg.Timeout))
}
