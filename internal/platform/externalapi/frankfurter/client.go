// Package frankfurter provides a client for the Frankfurter exchange-rate API (ECB reference rates).
package frankfurter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"stock_dashboard/internal/feature/dualquote/domain/entity"
)

// DefaultBaseURL is the public Frankfurter endpoint.
const DefaultBaseURL = "https://api.frankfurter.app"

// Config holds configuration for the Frankfurter client.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// LoadConfig loads Frankfurter configuration from environment variables.
func LoadConfig() Config {
	cfg := Config{BaseURL: os.Getenv("FX_BASE_URL"), Timeout: 10 * time.Second}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return cfg
}

// latestResponse represents the JSON response from the /latest endpoint.
type latestResponse struct {
	Amount float64            `json:"amount"`
	Base   string             `json:"base"`
	Date   string             `json:"date"`
	Rates  map[string]float64 `json:"rates"`
}

// Client は Frankfurter API から為替レートを取得します。
type Client struct {
	cfg    Config
	client *http.Client
}

// NewClient は新しい Client を作成します。
func NewClient(cfg Config, client *http.Client) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return &Client{cfg: cfg, client: client}
}

// GetRate returns the latest rate converting one unit of from into to.
func (c *Client) GetRate(ctx context.Context, from, to string) (entity.FxRate, error) {
	from, to = strings.ToUpper(from), strings.ToUpper(to)

	q := url.Values{}
	q.Set("from", from)
	q.Set("to", to)
	u := fmt.Sprintf("%s/latest?%s", strings.TrimRight(c.cfg.BaseURL, "/"), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return entity.FxRate{}, err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return entity.FxRate{}, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return entity.FxRate{}, fmt.Errorf("frankfurter http %d", res.StatusCode)
	}

	var body latestResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return entity.FxRate{}, fmt.Errorf("decode fx rate: %w", err)
	}

	rate, ok := body.Rates[to]
	if !ok || rate <= 0 {
		return entity.FxRate{}, fmt.Errorf("frankfurter: no %s rate for %s", to, from)
	}
	// 日付が解析できない場合はゼロ値のまま返す
	date, _ := time.Parse("2006-01-02", body.Date)

	base := body.Base
	if base == "" {
		base = from
	}
	return entity.FxRate{Rate: rate, From: base, To: to, Timestamp: date}, nil
}
