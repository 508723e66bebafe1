package dto

// QuoteResponse represents the JSON response from the market/v2/get-quotes endpoint.
type QuoteResponse struct {
	QuoteResponse struct {
		Result []QuoteResult `json:"result"`
		Error  *APIError     `json:"error"`
	} `json:"quoteResponse"`
}

// QuoteResult is one quote in a QuoteResponse.
type QuoteResult struct {
	Symbol                      string  `json:"symbol"`
	ShortName                   string  `json:"shortName"`
	LongName                    string  `json:"longName"`
	Currency                    string  `json:"currency"`
	RegularMarketPrice          float64 `json:"regularMarketPrice"`
	RegularMarketChange         float64 `json:"regularMarketChange"`
	RegularMarketChangePercent  float64 `json:"regularMarketChangePercent"`
	RegularMarketPreviousClose  float64 `json:"regularMarketPreviousClose"`
	RegularMarketOpen           float64 `json:"regularMarketOpen"`
	RegularMarketDayHigh        float64 `json:"regularMarketDayHigh"`
	RegularMarketDayLow         float64 `json:"regularMarketDayLow"`
	RegularMarketVolume         int64   `json:"regularMarketVolume"`
	AverageDailyVolume3Month    int64   `json:"averageDailyVolume3Month"`
	RegularMarketTime           int64   `json:"regularMarketTime"`
	FullExchangeName            string  `json:"fullExchangeName"`
	Exchange                    string  `json:"exchange"`
	MarketState                 string  `json:"marketState"`
	MarketCap                   float64 `json:"marketCap"`
	TrailingPE                  float64 `json:"trailingPE"`
	TrailingAnnualDividendYield float64 `json:"trailingAnnualDividendYield"`
	Beta                        float64 `json:"beta"`
}

// SearchResponse represents the JSON response from the auto-complete endpoint.
type SearchResponse struct {
	Quotes []struct {
		Symbol    string `json:"symbol"`
		ShortName string `json:"shortname"`
		LongName  string `json:"longname"`
		Exchange  string `json:"exchange"`
		ExchDisp  string `json:"exchDisp"`
		QuoteType string `json:"quoteType"`
	} `json:"quotes"`
}
