package jwtmw

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TestNewGenerator は各種設定でGeneratorが正しく生成されることを検証します。
func TestNewGenerator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		secret     string
		expiration time.Duration
	}{
		{"standard config", "my-secret-key", DefaultExpiration},
		{"short expiration", "s", time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gen := NewGenerator(tt.secret, tt.expiration)

			if string(gen.secret) != tt.secret {
				t.Errorf("expected secret %q, got %q", tt.secret, string(gen.secret))
			}
			if gen.expiration != tt.expiration {
				t.Errorf("expected expiration %v, got %v", tt.expiration, gen.expiration)
			}
		})
	}
}

// TestGenerator_GenerateToken は生成されたトークンが正しいクレームを含むことを検証します。
func TestGenerator_GenerateToken(t *testing.T) {
	t.Parallel()

	const secret = "test-secret"
	fixed := time.Now().Truncate(time.Second)
	gen := NewGenerator(secret, DefaultExpiration)
	gen.now = func() time.Time { return fixed }

	tokenStr, exp, err := gen.GenerateToken("admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exp.Equal(fixed.Add(12 * time.Hour)) {
		t.Errorf("expected expiry %v, got %v", fixed.Add(12*time.Hour), exp)
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("token should be valid: %v", err)
	}
	if token.Method.Alg() != "HS256" {
		t.Errorf("expected HS256, got %s", token.Method.Alg())
	}

	claims := token.Claims.(jwt.MapClaims)
	if claims["sub"] != "admin" {
		t.Errorf("expected sub admin, got %v", claims["sub"])
	}
	if claims["role"] != RoleAdmin {
		t.Errorf("expected role %q, got %v", RoleAdmin, claims["role"])
	}
	if int64(claims["exp"].(float64)) != exp.Unix() {
		t.Errorf("exp claim mismatch: %v", claims["exp"])
	}
	if int64(claims["iat"].(float64)) != fixed.Unix() {
		t.Errorf("iat claim mismatch: %v", claims["iat"])
	}
}

// TestGenerator_EmptySecret は空のシークレットでトークンを発行しないことを検証します。
func TestGenerator_EmptySecret(t *testing.T) {
	t.Parallel()

	_, _, err := NewGenerator("", time.Hour).GenerateToken("admin")
	if err == nil {
		t.Fatal("expected error for empty secret")
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv(EnvKeyJWTSecret, "from-env")

	cfg := LoadConfig()
	if cfg.Secret != "from-env" {
		t.Errorf("expected secret from env, got %q", cfg.Secret)
	}
	if cfg.Expiration != 12*time.Hour {
		t.Errorf("expected 12h expiration, got %v", cfg.Expiration)
	}
}
