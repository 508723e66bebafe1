// Package api はHTTPハンドラーが共有するリクエスト/レスポンスの型を定義します。
// JSONのフィールド名はダッシュボード(React)側の型定義に合わせています。
package api

import "time"

// ErrorResponse はエラー時の共通レスポンスです。
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse は処理結果メッセージのレスポンスです。
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse は /health のレスポンスです。
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// QuoteResponse は株価スナップショットです。US・EUどちらの上場でも同じ形です。
type QuoteResponse struct {
	Symbol        string    `json:"symbol"`
	Price         float64   `json:"price"`
	Currency      string    `json:"currency"`
	Change        float64   `json:"change"`
	ChangePercent float64   `json:"changePercent"`
	PreviousClose float64   `json:"previousClose"`
	Open          float64   `json:"open"`
	DayHigh       float64   `json:"dayHigh"`
	DayLow        float64   `json:"dayLow"`
	Volume        int64     `json:"volume"`
	AvgVolume30d  int64     `json:"avgVolume30d"`
	Timestamp     time.Time `json:"timestamp"`
	Exchange      string    `json:"exchange"`
	MarketState   string    `json:"marketState"`
}

// EUNotFoundResponse is returned when no German listing could be verified.
type EUNotFoundResponse struct {
	NotFound bool     `json:"notFound"`
	Tried    []string `json:"tried"`
	Error    string   `json:"error"`
}

// SearchResultResponse は検索結果の1件です。
type SearchResultResponse struct {
	Symbol          string `json:"symbol"`
	Name            string `json:"name"`
	Exchange        string `json:"exchange"`
	ExchangeDisplay string `json:"exchangeDisplay"`
	Type            string `json:"type"`
	Currency        string `json:"currency"`
	Region          string `json:"region"`
}

// CompanyInfoResponse は企業プロフィールです。
type CompanyInfoResponse struct {
	Name     string  `json:"name"`
	Symbol   string  `json:"symbol"`
	ISIN     *string `json:"isin"`
	Sector   string  `json:"sector"`
	Industry string  `json:"industry"`
	Exchange string  `json:"exchange"`
	Currency string  `json:"currency"`
	Country  string  `json:"country"`
}

// FundamentalsResponse はバリュエーション指標です。取得できない値は null になります。
type FundamentalsResponse struct {
	MarketCap        *float64 `json:"marketCap"`
	PERatioTTM       *float64 `json:"peRatioTTM"`
	DividendYield    *float64 `json:"dividendYield"`
	RevenueGrowthYoY *float64 `json:"revenueGrowthYoY"`
	Beta             *float64 `json:"beta"`
}

// TechnicalSignalsResponse は移動平均線と出来高のシグナルです。
type TechnicalSignalsResponse struct {
	SMA50                   float64 `json:"sma50"`
	SMA200                  float64 `json:"sma200"`
	CurrentPrice            float64 `json:"currentPrice"`
	DistanceToSMA50Percent  float64 `json:"distanceToSma50Percent"`
	DistanceToSMA200Percent float64 `json:"distanceToSma200Percent"`
	VolumeChangePercent     float64 `json:"volumeChangePercent"`
	AvgVolume30dHistorical  float64 `json:"avgVolume30dHistorical"`
}

// HistoricalPointResponse は日足の1点です。
type HistoricalPointResponse struct {
	Date   string  `json:"date"`   // 日付 (YYYY-MM-DD)
	Close  float64 `json:"close"`  // 終値
	Volume int64   `json:"volume"` // 出来高
}

// FxRateResponse は為替レートです。
type FxRateResponse struct {
	Rate      float64   `json:"rate"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Timestamp time.Time `json:"timestamp"`
}

// DualQuoteResponse はUS株価・EU株価・為替レートをまとめたレスポンスです。
type DualQuoteResponse struct {
	US      QuoteResponse  `json:"us"`
	EU      *QuoteResponse `json:"eu"`
	EUTried []string       `json:"euTried,omitempty"`
	FxRate  FxRateResponse `json:"fxRate"`
}

// MarketStatusResponse は取引所の開閉状態です。
type MarketStatusResponse struct {
	Exchange     string `json:"exchange"`
	State        string `json:"state"`
	IsOpen       bool   `json:"isOpen"`
	NextEvent    string `json:"nextEvent,omitempty"`
	MinutesUntil int    `json:"minutesUntil,omitempty"`
	Countdown    string `json:"countdown,omitempty"`
}

// PopularStockResponse は人気銘柄リストの1件です。
type PopularStockResponse struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Exchange string `json:"exchange"`
	Category string `json:"category"`
}

// LoginRequest は管理者ログインのリクエストです。
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// TokenResponse は発行したJWTのレスポンスです。
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// MappingResponse is one row of the EU mapping table.
type MappingResponse struct {
	USSymbol   string   `json:"usSymbol"`
	Candidates []string `json:"candidates"`
}

// PurgeResponse reports how many cache entries were removed.
type PurgeResponse struct {
	Prefix  string `json:"prefix"`
	Deleted int64  `json:"deleted"`
}
