// Package yahoo provides a client for the Yahoo Finance API published on RapidAPI (yh-finance).
package yahoo

import (
	"os"
	"strconv"
	"time"
)

const (
	// DefaultAPIHost is the RapidAPI host of the yh-finance API.
	DefaultAPIHost = "yh-finance.p.rapidapi.com"

	defaultTimeout          = 10 * time.Second
	defaultCandidateTimeout = 5 * time.Second
)

// Config holds configuration for the Yahoo Finance API client.
type Config struct {
	APIKey           string        // RapidAPI key (X-RapidAPI-Key)
	APIHost          string        // RapidAPI host (X-RapidAPI-Host)
	BaseURL          string        // Base URL; defaults to https://<APIHost>
	Timeout          time.Duration // HTTP request timeout
	CandidateTimeout time.Duration // Timeout of a single EU candidate lookup
}

// LoadConfig loads Yahoo Finance configuration from environment variables.
func LoadConfig() Config {
	cfg := Config{
		APIKey:           os.Getenv("YAHOO_API_KEY"),
		APIHost:          os.Getenv("YAHOO_API_HOST"),
		BaseURL:          os.Getenv("YAHOO_BASE_URL"),
		Timeout:          secondsFromEnv("YAHOO_TIMEOUT_SEC", defaultTimeout),
		CandidateTimeout: secondsFromEnv("YAHOO_CANDIDATE_TIMEOUT_SEC", defaultCandidateTimeout),
	}
	return cfg.withDefaults()
}

func (c Config) withDefaults() Config {
	if c.APIHost == "" {
		c.APIHost = DefaultAPIHost
	}
	if c.BaseURL == "" {
		c.BaseURL = "https://" + c.APIHost
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.CandidateTimeout <= 0 {
		c.CandidateTimeout = defaultCandidateTimeout
	}
	return c
}

func secondsFromEnv(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return time.Duration(n) * time.Second
}
