// Package finnhub fetches stock quotes from the Finnhub API
// (https://finnhub.io/docs/api).
package finnhub

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/goalfolio/goalfolio"
)

const defaultBaseURL = "https://finnhub.io/api/v1"

// Client calls the Finnhub REST API.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// New returns a client using the daily caching http client.
func New(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    goalfolio.NewCachingClient(),
	}
}

// NewWithClient returns a client with a custom base URL and http client,
// for tests against a local server.
func NewWithClient(apiKey, baseURL string, httpClient *http.Client) *Client {
	return &Client{apiKey: apiKey, baseURL: baseURL, http: httpClient}
}

// Quote fetches the current quote for a symbol.
//
// The response payload uses single-letter fields:
//
//	{"c": 261.74, "h": 263.31, "l": 260.68, "o": 261.07, "pc": 259.45}
func (c *Client) Quote(ctx context.Context, symbol string) (goalfolio.Quote, error) {
	params := url.Values{}
	params.Set("symbol", symbol)
	params.Set("token", c.apiKey)
	addr := fmt.Sprintf("%s/quote?%s", c.baseURL, params.Encode())

	var payload struct {
		C  float64 `json:"c"`  // current price
		H  float64 `json:"h"`  // high price of the day
		L  float64 `json:"l"`  // low price of the day
		O  float64 `json:"o"`  // open price of the day
		Pc float64 `json:"pc"` // previous close price
	}
	if err := goalfolio.FetchJSON(ctx, c.http, addr, &payload); err != nil {
		return goalfolio.Quote{}, fmt.Errorf("cannot fetch quote for %q: %w", symbol, err)
	}
	return goalfolio.Quote{
		Current:       payload.C,
		High:          payload.H,
		Low:           payload.L,
		Open:          payload.O,
		PreviousClose: payload.Pc,
	}, nil
}

var _ goalfolio.QuoteProvider = (*Client)(nil)
