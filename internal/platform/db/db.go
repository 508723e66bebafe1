// Package db opens the gorm connection used by the popular stocks catalogue.
package db

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	defaultSQLitePath     = "stock_dashboard.db"
	defaultConnectTimeout = 60 * time.Second
)

// retryInterval は接続リトライの間隔です。テストで短縮します。
var retryInterval = 3 * time.Second

// Config はデータベース接続設定です。
type Config struct {
	Driver string

	// sqlite
	Path string

	// postgres: DSNが設定されていれば個別項目より優先
	DSN      string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	RunMigrations  bool
	ConnectTimeout time.Duration
}

// LoadConfig は環境変数からデータベース設定を読み込みます。
func LoadConfig() Config {
	driver := strings.ToLower(strings.TrimSpace(os.Getenv("DB_DRIVER")))
	if driver == "" {
		driver = DriverSQLite
	}
	path := os.Getenv("DB_PATH")
	if path == "" {
		path = defaultSQLitePath
	}
	port := os.Getenv("DB_PORT")
	if port == "" {
		port = "5432"
	}
	sslmode := os.Getenv("DB_SSLMODE")
	if sslmode == "" {
		sslmode = "disable"
	}
	migrate, _ := strconv.ParseBool(os.Getenv("RUN_MIGRATIONS"))

	return Config{
		Driver:         driver,
		Path:           path,
		DSN:            os.Getenv("DB_DSN"),
		Host:           os.Getenv("DB_HOST"),
		Port:           port,
		User:           os.Getenv("DB_USER"),
		Password:       os.Getenv("DB_PASSWORD"),
		Name:           os.Getenv("DB_NAME"),
		SSLMode:        sslmode,
		RunMigrations:  migrate,
		ConnectTimeout: defaultConnectTimeout,
	}
}

// BuildDSN returns the postgres connection string for cfg and checks that pgx can parse it.
func BuildDSN(cfg Config) (string, error) {
	dsn := cfg.DSN
	if dsn == "" {
		if cfg.Host == "" || cfg.User == "" {
			return "", fmt.Errorf("postgres requires DB_DSN or DB_HOST and DB_USER")
		}
		name := cfg.Name
		if name == "" {
			name = "postgres"
		}
		dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, name, cfg.SSLMode)
	}
	if _, err := pgx.ParseConfig(dsn); err != nil {
		return "", fmt.Errorf("invalid postgres dsn: %w", err)
	}
	return dsn, nil
}

// Dialector returns the gorm dialector for cfg.Driver.
func Dialector(cfg Config) (gorm.Dialector, error) {
	switch cfg.Driver {
	case DriverSQLite, "":
		return sqlite.Open(cfg.Path), nil
	case DriverPostgres:
		dsn, err := BuildDSN(cfg)
		if err != nil {
			return nil, err
		}
		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Driver)
	}
}

// ConnectWithRetry はタイムアウトまで接続をリトライします。
// Postgresがコンテナで後から起動する場合に備えています。
func ConnectWithRetry(dialector gorm.Dialector, timeout time.Duration, opener func(gorm.Dialector) (*gorm.DB, error)) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := opener(dialector)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect failed after %v: %w", timeout, err)
		}
		slog.Warn("db connect failed, retrying", "error", err, "interval", retryInterval)
		time.Sleep(retryInterval)
	}
}

func gormOpen(d gorm.Dialector) (*gorm.DB, error) {
	return gorm.Open(d, &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
}

// OpenDB connects to the configured database and, when RunMigrations is set
// or the driver is sqlite, migrates models.
func OpenDB(cfg Config, models ...any) (*gorm.DB, error) {
	d, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}
	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}
	db, err := ConnectWithRetry(d, timeout, gormOpen)
	if err != nil {
		return nil, err
	}

	if cfg.RunMigrations || cfg.Driver == DriverSQLite {
		if err := db.AutoMigrate(models...); err != nil {
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
	}
	slog.Info("database connected", "driver", cfg.Driver)
	return db, nil
}
