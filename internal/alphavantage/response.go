package alphavantage

import "time"

// dailyResponse mirrors the JSON of TIME_SERIES_DAILY(_ADJUSTED).
//
//	{
//	  "Meta Data": {"1. Information": "...", "2. Symbol": "IBM", ...},
//	  "Time Series (Daily)": {
//	    "2023-01-04": {"1. open": "105.0", "4. close": "103.0", "6. volume": "1200", ...}
//	  }
//	}
type dailyResponse struct {
	MetaData     map[string]string            `json:"Meta Data"`
	TimeSeries   map[string]map[string]string `json:"Time Series (Daily)"`
	ErrorMessage string                       `json:"Error Message"`
	Note         string                       `json:"Note"`
	Information  string                       `json:"Information"`
}

const (
	metaSymbol     = "2. Symbol"
	fieldOpen      = "1. open"
	fieldClose     = "4. close"
	fieldAdjVolume = "6. volume"
	fieldVolume    = "5. volume"
)

// providerError returns the provider's error text, if the payload is one.
func (r dailyResponse) providerError() string {
	if r.ErrorMessage != "" {
		return r.ErrorMessage
	}
	if r.TimeSeries == nil {
		if r.Note != "" {
			return r.Note
		}
		if r.Information != "" {
			return r.Information
		}
		return "response has no daily time series"
	}
	return ""
}

// Series is a parsed daily series, newest day first.
type Series struct {
	Symbol string
	Days   []Day
}

// Day is one trading day of a Series.
//
// Prices and volume are kept as the provider's decimal strings so no
// precision is lost before they are parsed into domain types.
type Day struct {
	Date   time.Time
	Open   string
	Close  string
	Volume string
}
