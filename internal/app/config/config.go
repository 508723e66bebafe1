// Package config loads server-level settings from the environment.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

const (
	defaultPort             = "8080"
	defaultCacheMaxItems    = 10000
	defaultPrefetchSchedule = "@every 5m"
	defaultUpstreamMaxRPM   = 60
)

// Config はHTTPサーバー全体の設定です。外部APIやDBの設定は各パッケージのLoadConfigが読み込みます。
type Config struct {
	Port               string
	CORSAllowedOrigins []string
	CacheMaxItems      int
	PrefetchSchedule   string // empty disables the prefetch job
	UpstreamMaxRPM     int
	LogLevel           slog.Level
}

// Load reads the server configuration. Malformed numbers fall back to defaults.
func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	schedule, ok := os.LookupEnv("PREFETCH_SCHEDULE")
	if !ok {
		schedule = defaultPrefetchSchedule
	}

	return Config{
		Port:               port,
		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS"), []string{"*"}),
		CacheMaxItems:      intFromEnv("CACHE_MAX_ITEMS", defaultCacheMaxItems),
		PrefetchSchedule:   strings.TrimSpace(schedule),
		UpstreamMaxRPM:     intFromEnv("UPSTREAM_MAX_RPM", defaultUpstreamMaxRPM),
		LogLevel:           ParseLevel(os.Getenv("LOG_LEVEL")),
	}
}

// ParseLevel maps debug|info|warn|error onto slog levels; anything else is info.
func ParseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return l
}

// AllowAllOrigins reports whether CORS should accept any origin.
func (c Config) AllowAllOrigins() bool {
	for _, o := range c.CORSAllowedOrigins {
		if o == "*" {
			return true
		}
	}
	return false
}

func splitList(v string, def []string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

func intFromEnv(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		slog.Warn("invalid integer in environment, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}
