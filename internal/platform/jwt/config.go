package jwtmw

import (
	"os"
	"time"
)

const (
	EnvKeyJWTSecret = "JWT_SECRET"

	// DefaultExpiration is the lifetime of an admin token.
	DefaultExpiration = 12 * time.Hour
)

// Config holds the signing secret and token lifetime.
type Config struct {
	Secret     string
	Expiration time.Duration
}

// LoadConfig は環境変数からJWT設定を読み込みます。
// JWT_SECRETが空の場合、管理APIは500を返します。
func LoadConfig() Config {
	return Config{
		Secret:     os.Getenv(EnvKeyJWTSecret),
		Expiration: DefaultExpiration,
	}
}
