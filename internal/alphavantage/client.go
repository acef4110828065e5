// Package alphavantage is a minimal client for the Alpha Vantage daily
// time-series endpoint.
package alphavantage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/guttosm/findata/internal/logger"
)

// FunctionDailyAdjusted is the Alpha Vantage function used for ingestion.
const FunctionDailyAdjusted = "TIME_SERIES_DAILY_ADJUSTED"

// ErrProvider wraps error payloads returned by Alpha Vantage with HTTP 200
// ("Error Message", "Note" or "Information" without a time series).
var ErrProvider = errors.New("alphavantage")

// ErrSymbolMismatch is returned when the series belongs to another symbol
// than the one requested.
var ErrSymbolMismatch = errors.New("alphavantage: symbol mismatch")

// Config holds configuration for the Alpha Vantage client.
type Config struct {
	APIKey  string        // API key sent as the apikey query parameter
	BaseURL string        // e.g. "https://www.alphavantage.co"
	Timeout time.Duration // whole-request timeout
}

// Client fetches daily series from Alpha Vantage.
type Client struct {
	cfg    Config
	client *http.Client
}

// NewClient builds a Client. A nil httpClient gets one from NewHTTPClient.
func NewClient(cfg Config, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = NewHTTPClient(cfg.Timeout)
	}
	return &Client{cfg: cfg, client: httpClient}
}

// NewHTTPClient returns an http.Client with explicit dial, TLS and overall
// timeouts; http.DefaultClient has none.
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}

// DailyAdjusted fetches the compact daily adjusted series of symbol.
//
// The returned series is ordered newest day first. The symbol reported by the
// provider is returned as-is in Series.Symbol; callers decide what a mismatch means.
func (c *Client) DailyAdjusted(ctx context.Context, symbol string) (*Series, error) {
	q := url.Values{}
	q.Set("function", FunctionDailyAdjusted)
	q.Set("symbol", symbol)
	q.Set("apikey", c.cfg.APIKey)

	u := fmt.Sprintf("%s/query?%s", c.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			logger.L().Warn().Err(err).Msg("failed to close response body")
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("%w: http %d", ErrProvider, res.StatusCode)
	}

	var body dailyResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", symbol, err)
	}
	if msg := body.providerError(); msg != "" {
		return nil, fmt.Errorf("%w: %s", ErrProvider, msg)
	}

	return parseDaily(body)
}
