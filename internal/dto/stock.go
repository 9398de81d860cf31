package dto

// StockSnapshot is the market-data projection handed to the frontend and, on
// watchlist add, embedded into the user document. Prices and Dates are
// parallel arrays.
type StockSnapshot struct {
	CompanyName  string    `json:"companyName"`
	CurrentPrice float64   `json:"currentPrice"`
	Prices       []float64 `json:"prices"`
	Dates        []string  `json:"dates"`
}

// Yahoo Finance chart API response
type YahooFinanceResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol             string  `json:"symbol"`
				ShortName          string  `json:"shortName"`
				LongName           string  `json:"longName"`
				RegularMarketPrice float64 `json:"regularMarketPrice"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []float64 `json:"open"`
					High   []float64 `json:"high"`
					Low    []float64 `json:"low"`
					Close  []float64 `json:"close"`
					Volume []int64   `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error interface{} `json:"error"`
	} `json:"chart"`
}
