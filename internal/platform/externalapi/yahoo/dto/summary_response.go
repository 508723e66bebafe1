package dto

// RawValue is Yahoo's formatted number wrapper ({"raw": 1.23, "fmt": "1.23"}).
type RawValue struct {
	Raw *float64 `json:"raw"`
	Fmt string   `json:"fmt,omitempty"`
}

// SummaryModules are the quote summary modules the dashboard reads.
type SummaryModules struct {
	Price *struct {
		ShortName    string `json:"shortName"`
		LongName     string `json:"longName"`
		ExchangeName string `json:"exchangeName"`
		Currency     string `json:"currency"`
	} `json:"price"`
	AssetProfile *struct {
		Sector   string `json:"sector"`
		Industry string `json:"industry"`
		Country  string `json:"country"`
	} `json:"assetProfile"`
	SummaryProfile *struct {
		Sector   string `json:"sector"`
		Industry string `json:"industry"`
		Country  string `json:"country"`
	} `json:"summaryProfile"`
	SummaryDetail *struct {
		MarketCap     RawValue `json:"marketCap"`
		TrailingPE    RawValue `json:"trailingPE"`
		DividendYield RawValue `json:"dividendYield"`
		Beta          RawValue `json:"beta"`
	} `json:"summaryDetail"`
	DefaultKeyStatistics *struct {
		Beta RawValue `json:"beta"`
	} `json:"defaultKeyStatistics"`
	FinancialData *struct {
		RevenueGrowth RawValue `json:"revenueGrowth"`
	} `json:"financialData"`
}

// SummaryResponse represents the JSON response from the stock/v2/get-summary endpoint.
// Depending on the API revision the modules are either top-level or nested under quoteSummary.
type SummaryResponse struct {
	SummaryModules
	QuoteSummary struct {
		Result []SummaryModules `json:"result"`
		Error  *APIError        `json:"error"`
	} `json:"quoteSummary"`
}
