// Package jwtmw issues and verifies the HS256 tokens that guard the admin endpoints.
package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// RoleAdmin is the only role the dashboard issues.
const RoleAdmin = "admin"

var errEmptySecret = errors.New("jwt secret is empty")

// Generator defines the interface for JWT token generation.
type Generator interface {
	// GenerateToken creates a signed admin token for subject and returns its expiry.
	GenerateToken(subject string) (string, time.Time, error)
}

// generator implements the Generator interface.
type generator struct {
	secret     []byte
	expiration time.Duration
	now        func() time.Time
}

// NewGenerator creates a new JWT generator with the provided secret and expiration duration.
func NewGenerator(secret string, expiration time.Duration) *generator {
	return &generator{
		secret:     []byte(secret),
		expiration: expiration,
		now:        time.Now,
	}
}

// GenerateToken creates a signed JWT token with standard claims plus the admin role.
func (g *generator) GenerateToken(subject string) (string, time.Time, error) {
	if len(g.secret) == 0 {
		return "", time.Time{}, errEmptySecret
	}
	now := g.now()
	exp := now.Add(g.expiration)
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": RoleAdmin,
		"exp":  exp.Unix(),
		"iat":  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, exp, nil
}
