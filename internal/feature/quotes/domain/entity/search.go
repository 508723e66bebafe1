package entity

// SearchHit is one raw result of the provider's free-text search.
type SearchHit struct {
	Symbol          string
	ShortName       string
	LongName        string
	Exchange        string // Free-form exchange code (e.g. "NMS", "GER")
	ExchangeDisplay string
	QuoteType       string // "EQUITY", "ETF", "INDEX", ...
}

// Region classifies a search result by listing market.
type Region string

const (
	RegionUS    Region = "US"
	RegionEU    Region = "EU"
	RegionOther Region = "OTHER"
)

// SearchResult is a search hit normalised for the dashboard.
type SearchResult struct {
	Symbol          string
	Name            string
	Exchange        string
	ExchangeDisplay string
	Type            string // lowercase quote type: "equity" or "etf"
	Currency        string
	Region          Region
}
