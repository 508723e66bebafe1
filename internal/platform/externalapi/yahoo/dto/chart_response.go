// Package dto defines data transfer objects for the Yahoo Finance API responses.
package dto

// ChartResponse represents the JSON response from the stock/v3/get-chart endpoint.
type ChartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close  []*float64 `json:"close"`
					Volume []*int64   `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *APIError `json:"error"`
	} `json:"chart"`
}

// APIError is the error object some endpoints embed in a 200 response.
type APIError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}
