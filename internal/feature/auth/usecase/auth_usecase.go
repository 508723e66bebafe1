// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"stock_dashboard/internal/feature/auth/domain"
)

const (
	EnvKeyAdminPasswordHash = "ADMIN_PASSWORD_HASH"

	// AdminSubject はトークンのsubクレームに入る値です。
	AdminSubject = "admin"

	// ハッシュ未設定時のタイミング攻撃緩和用ダミーハッシュ
	dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
)

// Config はログイン検証に使うbcryptハッシュを保持します。
type Config struct {
	PasswordHash string
}

// LoadConfig は環境変数から管理者パスワードのハッシュを読み込みます。
func LoadConfig() Config {
	return Config{PasswordHash: os.Getenv(EnvKeyAdminPasswordHash)}
}

// TokenGenerator はJWTトークン生成のインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/jwt）ではなくコンシューマー（usecase）が定義します。
type TokenGenerator interface {
	GenerateToken(subject string) (string, time.Time, error)
}

// AdminAuthUsecase は管理者ログインを実装します。
type AdminAuthUsecase struct {
	passwordHash []byte
	tokens       TokenGenerator
}

// NewAdminAuthUsecase はAdminAuthUsecaseの新しいインスタンスを生成します。
func NewAdminAuthUsecase(cfg Config, tokens TokenGenerator) *AdminAuthUsecase {
	return &AdminAuthUsecase{
		passwordHash: []byte(cfg.PasswordHash),
		tokens:       tokens,
	}
}

// Login はパスワードを検証し、成功時に署名済みトークンとその有効期限を返します。
// ハッシュ未設定の場合もbcrypt比較を実行してから ErrLoginDisabled を返します。
func (u *AdminAuthUsecase) Login(ctx context.Context, password string) (string, time.Time, error) {
	hash := u.passwordHash
	if len(hash) == 0 {
		hash = []byte(dummyHash)
	}
	compareErr := bcrypt.CompareHashAndPassword(hash, []byte(password))

	if len(u.passwordHash) == 0 {
		return "", time.Time{}, domain.ErrLoginDisabled
	}
	if compareErr != nil {
		return "", time.Time{}, domain.ErrInvalidCredentials
	}

	token, exp, err := u.tokens.GenerateToken(AdminSubject)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate token: %w", err)
	}
	return token, exp, nil
}
