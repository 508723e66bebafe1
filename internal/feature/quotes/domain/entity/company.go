package entity

// Summary is the subset of the provider's quote summary used by the dashboard.
// Pointer fields are nil when the provider omitted them.
type Summary struct {
	ShortName    string
	LongName     string
	ExchangeName string
	Currency     string
	Sector       string
	Industry     string
	Country      string

	MarketCap     *float64
	TrailingPE    *float64
	DividendYield *float64 // fraction, e.g. 0.0051
	Beta          *float64
	RevenueGrowth *float64 // fraction, e.g. 0.06
}

// CompanyInfo describes the company behind a ticker.
type CompanyInfo struct {
	Name     string
	Symbol   string
	ISIN     *string
	Sector   string
	Industry string
	Exchange string
	Currency string
	Country  string
}

// Fundamentals holds valuation figures. Nil means not available.
type Fundamentals struct {
	MarketCap        *float64
	PERatioTTM       *float64
	DividendYield    *float64 // percent
	RevenueGrowthYoY *float64 // percent
	Beta             *float64
}

// TechnicalSignals compares the current price and volume with their recent averages.
type TechnicalSignals struct {
	SMA50                   float64
	SMA200                  float64
	CurrentPrice            float64
	DistanceToSMA50Percent  float64
	DistanceToSMA200Percent float64
	VolumeChangePercent     float64
	AvgVolume30dHistorical  float64
}
